// Package log defines standard attribute keys for machine learning operations.
//
// Using these keys consistently enables structured log analysis and filtering
// across training, inference and evaluation. The keys follow a hierarchical
// naming convention (e.g. "model.name", "data.samples").
package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of machine learning model.
	// Example: "LogisticRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the machine learning operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "metrics", "preprocessing"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Training progress and metrics.
const (
	// IterationKey records the current iteration of an iterative optimizer.
	IterationKey = "training.iteration"

	// LossKey records the loss value during training or evaluation.
	LossKey = "metrics.loss"

	// LossDeltaKey records the change in loss between successive iterations.
	LossDeltaKey = "metrics.loss_delta"

	// AccuracyKey records classification accuracy, in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// AUCKey records the area under the ROC curve.
	AUCKey = "metrics.auc"

	// LearningRateKey records the learning rate of a gradient-based optimizer.
	LearningRateKey = "hyperparams.learning_rate"

	// ThresholdKey records the decision threshold used for classification.
	ThresholdKey = "preds.threshold"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute value constants for common operations.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
)
