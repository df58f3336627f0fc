package metrics

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestROC_SeparableScores(t *testing.T) {
	yTrue := vec([]float64{0, 0, 0, 1, 1, 1})
	yProb := vec([]float64{0.05, 0.1, 0.2, 0.8, 0.9, 0.95})

	curve, err := ROC(yTrue, yProb)
	if err != nil {
		t.Fatalf("ROC failed: %v", err)
	}

	if curve.Len() != 100 {
		t.Errorf("curve has %d points, want 100", curve.Len())
	}
	if curve.Thresholds[0] != 0 || curve.Thresholds[99] != 1 {
		t.Errorf("threshold endpoints = %v, %v, want 0, 1",
			curve.Thresholds[0], curve.Thresholds[99])
	}

	// at threshold 0 nothing is predicted as label 0
	if x, y := curve.Point(0); x != 0 || y != 0 {
		t.Errorf("first point = (%v, %v), want (0, 0)", x, y)
	}
	// at threshold 1 everything is predicted as label 0
	if x, y := curve.Point(99); x != 1 || y != 1 {
		t.Errorf("last point = (%v, %v), want (1, 1)", x, y)
	}

	for i := 0; i < curve.Len(); i++ {
		x, y := curve.Point(i)
		if x < 0 || x > 1 || y < 0 || y > 1 {
			t.Errorf("point %d = (%v, %v), out of unit square", i, x, y)
		}
	}

	if curve.AUC < 0.95 {
		t.Errorf("AUC = %v on perfectly separated scores, want near 1", curve.AUC)
	}
}

func TestROC_RandomScoresGiveHalfAUC(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 2000

	yTrue := mat.NewVecDense(n, nil)
	yProb := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			yTrue.SetVec(i, 1)
		}
		yProb.SetVec(i, rng.Float64())
	}

	curve, err := ROC(yTrue, yProb)
	if err != nil {
		t.Fatalf("ROC failed: %v", err)
	}

	if math.Abs(curve.AUC-0.5) > 0.05 {
		t.Errorf("AUC = %v for label-independent scores, want ~0.5", curve.AUC)
	}
}

func TestROC_Validation(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yProb []float64
	}{
		{
			name:  "only one class present",
			yTrue: []float64{1, 1, 1},
			yProb: []float64{0.2, 0.5, 0.8},
		},
		{
			name:  "non-binary labels",
			yTrue: []float64{0, 1, 2},
			yProb: []float64{0.2, 0.5, 0.8},
		},
		{
			name:  "length mismatch",
			yTrue: []float64{0, 1},
			yProb: []float64{0.5},
		},
		{
			name:  "empty vectors",
			yTrue: []float64{},
			yProb: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ROC(vec(tt.yTrue), vec(tt.yProb)); err == nil {
				t.Error("expected ROC to fail")
			}
		})
	}
}

func BenchmarkROC(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	n := 1000

	yTrue := mat.NewVecDense(n, nil)
	yProb := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		if i >= n/2 {
			yTrue.SetVec(i, 1)
		}
		yProb.SetVec(i, rng.Float64())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ROC(yTrue, yProb)
	}
}
