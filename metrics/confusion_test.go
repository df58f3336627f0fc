package metrics

import (
	"math"
	"testing"

	"github.com/logit-ml/logit/pkg/errors"
)

func TestConfusionMatrix(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    ConfusionCounts
		wantErr bool
	}{
		{
			// label 0 is the positive class: true 0 predicted 0 is a TP
			name:  "one sample in each bucket",
			yTrue: []float64{0, 0, 1, 1},
			yPred: []float64{0, 1, 1, 0},
			want:  ConfusionCounts{TP: 1, FN: 1, FP: 1, TN: 1},
		},
		{
			name:  "perfect predictions",
			yTrue: []float64{0, 0, 1, 1},
			yPred: []float64{0, 0, 1, 1},
			want:  ConfusionCounts{TP: 2, FN: 0, FP: 0, TN: 2},
		},
		{
			name:  "everything predicted as label 0",
			yTrue: []float64{0, 1, 1, 1},
			yPred: []float64{0, 0, 0, 0},
			want:  ConfusionCounts{TP: 1, FN: 0, FP: 3, TN: 0},
		},
		{
			name:    "non-binary true labels",
			yTrue:   []float64{0, 2},
			yPred:   []float64{0, 1},
			wantErr: true,
		},
		{
			name:    "non-binary predictions",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0, 0.5},
			wantErr: true,
		},
		{
			name:    "length mismatch",
			yTrue:   []float64{0, 1, 0},
			yPred:   []float64{0, 1},
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfusionMatrix(vec(tt.yTrue), vec(tt.yPred))
			if (err != nil) != tt.wantErr {
				t.Errorf("ConfusionMatrix() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if *got != tt.want {
				t.Errorf("ConfusionMatrix() = %+v, want %+v", *got, tt.want)
			}
			if got.Total() != len(tt.yTrue) {
				t.Errorf("counts sum to %d, want %d", got.Total(), len(tt.yTrue))
			}
		})
	}
}

func TestConfusionCounts_Matrix(t *testing.T) {
	counts := &ConfusionCounts{TP: 1, FN: 2, FP: 3, TN: 4}
	got := counts.Matrix()
	want := [2][2]int{{1, 2}, {3, 4}}
	if got != want {
		t.Errorf("Matrix() = %v, want %v", got, want)
	}
}

func TestConfusionCounts_Report(t *testing.T) {
	tests := []struct {
		name   string
		counts ConfusionCounts
		want   ClassificationReport
	}{
		{
			name:   "balanced mistakes",
			counts: ConfusionCounts{TP: 1, FN: 1, FP: 1, TN: 1},
			want: ClassificationReport{
				Class0:   ClassMetrics{Recall: 0.5, Precision: 0.5, F1: 0.5},
				Class1:   ClassMetrics{Recall: 0.5, Precision: 0.5, F1: 0.5},
				Accuracy: 0.5,
			},
		},
		{
			name:   "perfect classifier",
			counts: ConfusionCounts{TP: 3, FN: 0, FP: 0, TN: 2},
			want: ClassificationReport{
				Class0:   ClassMetrics{Recall: 1, Precision: 1, F1: 1},
				Class1:   ClassMetrics{Recall: 1, Precision: 1, F1: 1},
				Accuracy: 1,
			},
		},
		{
			name:   "asymmetric errors",
			counts: ConfusionCounts{TP: 6, FN: 2, FP: 1, TN: 1},
			want: ClassificationReport{
				Class0:   ClassMetrics{Recall: 0.75, Precision: 6.0 / 7.0, F1: 0.8},
				Class1:   ClassMetrics{Recall: 0.5, Precision: 1.0 / 3.0, F1: 1.0 / 2.5},
				Accuracy: 0.7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.counts.Report()
			checks := []struct {
				label string
				got   float64
				want  float64
			}{
				{"class0 recall", got.Class0.Recall, tt.want.Class0.Recall},
				{"class0 precision", got.Class0.Precision, tt.want.Class0.Precision},
				{"class0 f1", got.Class0.F1, tt.want.Class0.F1},
				{"class1 recall", got.Class1.Recall, tt.want.Class1.Recall},
				{"class1 precision", got.Class1.Precision, tt.want.Class1.Precision},
				{"class1 f1", got.Class1.F1, tt.want.Class1.F1},
				{"accuracy", got.Accuracy, tt.want.Accuracy},
			}
			for _, c := range checks {
				if math.Abs(c.got-c.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", c.label, c.got, c.want)
				}
			}
		})
	}
}

func TestConfusionCounts_ReportDegenerate(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) {
		warnings = append(warnings, w)
	})
	defer errors.SetWarningHandler(nil)

	// no label-0 samples at all: recall and precision of class 0 are undefined
	counts := &ConfusionCounts{TP: 0, FN: 0, FP: 0, TN: 4}
	report := counts.Report()

	if !math.IsNaN(report.Class0.Recall) {
		t.Errorf("class0 recall = %v, want NaN", report.Class0.Recall)
	}
	if !math.IsNaN(report.Class0.Precision) {
		t.Errorf("class0 precision = %v, want NaN", report.Class0.Precision)
	}
	if report.Class1.Recall != 1 {
		t.Errorf("class1 recall = %v, want 1", report.Class1.Recall)
	}
	if report.Accuracy != 1 {
		t.Errorf("accuracy = %v, want 1", report.Accuracy)
	}

	foundUndefined := false
	for _, w := range warnings {
		var um *errors.UndefinedMetricWarning
		if errors.As(w, &um) {
			foundUndefined = true
		}
	}
	if !foundUndefined {
		t.Error("expected UndefinedMetricWarning for zero denominators")
	}
}
