// Package logit implements binary logistic regression with full-batch
// gradient descent, together with the evaluation tooling that normally
// accompanies a classifier: confusion matrix, precision/recall/F1,
// accuracy and ROC/AUC.
//
// The packages are organized as follows:
//
//   - linear: the LogisticRegression model (fit, predict, probabilities)
//   - metrics: confusion matrix, classification report, log loss, ROC/AUC
//   - preprocessing: stratified train/test splitting
//   - dataset: CSV loading for labeled tabular data
//   - plotting: ROC and loss curve rendering via gonum/plot
//   - core/model: shared fitted-state management and weight serialization
//   - pkg/errors, pkg/log: typed errors, warnings and structured logging
//
// A word of caution on conventions: the confusion matrix in the metrics
// package treats label value 0 as the positive class. See the metrics
// package documentation for details.
//
// Basic usage:
//
//	clf := linear.NewLogisticRegression(
//		linear.WithLearningRate(0.01),
//		linear.WithRandomState(42),
//	)
//	if err := clf.Fit(XTrain, yTrain); err != nil {
//		return err
//	}
//	probs, err := clf.PredictProba(XTest)
//	if err != nil {
//		return err
//	}
//	curve, err := metrics.ROC(yTest, probs)
package logit
