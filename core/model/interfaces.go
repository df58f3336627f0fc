package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Scorer is the interface for models that can compute an evaluation score.
type Scorer interface {
	// Score returns the mean accuracy on the given test data and labels.
	Score(X, y mat.Matrix) (float64, error)
}

// BinaryClassifier combines the interfaces of a trainable two-class model.
type BinaryClassifier interface {
	Fitter
	Predictor
	Scorer

	// PredictProba returns the probability of the positive-valued label (1)
	// for each sample.
	PredictProba(X mat.Matrix) (*mat.VecDense, error)
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}

// WeightExporter is the interface for models whose fitted weights can be
// round-tripped through ModelWeights.
type WeightExporter interface {
	ExportWeights() (*ModelWeights, error)
	ImportWeights(weights *ModelWeights) error
}
