package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/logit-ml/logit/metrics"
)

func TestSaveROCPlot(t *testing.T) {
	yTrue := mat.NewVecDense(6, []float64{0, 0, 0, 1, 1, 1})
	yProb := mat.NewVecDense(6, []float64{0.1, 0.2, 0.3, 0.7, 0.8, 0.9})

	curve, err := metrics.ROC(yTrue, yProb)
	if err != nil {
		t.Fatalf("ROC failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "roc.png")
	if err := SaveROCPlot(curve, "ROC", path); err != nil {
		t.Fatalf("SaveROCPlot failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestSaveROCPlot_EmptyCurve(t *testing.T) {
	if err := SaveROCPlot(nil, "ROC", "unused.png"); err == nil {
		t.Error("expected SaveROCPlot to fail for a nil curve")
	}
	if err := SaveROCPlot(&metrics.ROCCurve{}, "ROC", "unused.png"); err == nil {
		t.Error("expected SaveROCPlot to fail for an empty curve")
	}
}

func TestSaveLossCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loss.png")
	losses := []float64{1.5, 1.1, 0.8, 0.6, 0.55}

	if err := SaveLossCurve(losses, "Training loss", path); err != nil {
		t.Fatalf("SaveLossCurve failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("plot file missing: %v", err)
	}

	if err := SaveLossCurve(nil, "Training loss", path); err == nil {
		t.Error("expected SaveLossCurve to fail for empty input")
	}
}
