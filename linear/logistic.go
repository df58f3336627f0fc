// Package linear provides linear models for classification.
package linear

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/logit-ml/logit/core/model"
	"github.com/logit-ml/logit/core/parallel"
	"github.com/logit-ml/logit/pkg/errors"
	"github.com/logit-ml/logit/pkg/log"
)

// rows below this count are processed sequentially
const parallelThreshold = 1000

var (
	_ model.BinaryClassifier = (*LogisticRegression)(nil)
	_ model.ParameterGetter  = (*LogisticRegression)(nil)
	_ model.ParameterSetter  = (*LogisticRegression)(nil)
	_ model.WeightExporter   = (*LogisticRegression)(nil)
)

// LogisticRegression implements binary logistic regression trained with
// full-batch gradient descent on the summed cross-entropy loss.
//
// The optimizer uses a fixed learning rate and an unnormalized gradient
// (not scaled by the sample count). The stopping rule compares the signed
// loss delta of successive iterations against Tol, so a transient loss
// increase also ends the loop.
type LogisticRegression struct {
	state *model.StateManager // State management (composition)

	// Hyperparameters
	maxIter      int     // Iteration cap
	learningRate float64 // Fixed gradient step size
	tol          float64 // Threshold on the signed loss delta
	show         bool    // Emit progress logs (no effect on the result)
	randomState  int64   // Random seed, -1 for ambient seeding

	// Model parameters
	// weights has length nFeatures_+1; index 0 is the intercept.
	weights    *mat.VecDense
	nFeatures_ int
	nIter_     int
	lossCurve_ []float64 // cross-entropy per iteration, index 0 is the initial loss

	// Internal state
	rand *rand.Rand
}

// NewLogisticRegression creates a new LogisticRegression classifier.
func NewLogisticRegression(opts ...Option) *LogisticRegression {
	lr := &LogisticRegression{
		state:        model.NewStateManager(),
		maxIter:      1000,
		learningRate: 0.01,
		tol:          1e-7,
		show:         false,
		randomState:  -1,
	}

	for _, opt := range opts {
		opt(lr)
	}

	if lr.randomState >= 0 {
		lr.rand = rand.New(rand.NewSource(lr.randomState))
	} else {
		lr.rand = rand.New(rand.NewSource(rand.Int63()))
	}

	return lr
}

// Fit trains the model on feature matrix X (n_samples x n_features) and
// binary label column vector y. Labels must be exactly 0 or 1.
//
// The weight vector is initialized from a small random normal perturbation
// (scale 0.01) drawn from the injected random source, so runs with the same
// random state are reproducible.
func (lr *LogisticRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LogisticRegression.Fit")

	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("LogisticRegression.Fit", "empty data", errors.ErrEmptyData)
	}

	yRows, yCols := y.Dims()
	if yCols != 1 {
		return errors.NewValueError("LogisticRegression.Fit", "y must be a column vector")
	}
	if yRows != nSamples {
		return errors.NewDimensionError("LogisticRegression.Fit", nSamples, yRows, 0)
	}

	yVec, err := binaryLabelVector("LogisticRegression.Fit", y)
	if err != nil {
		return err
	}

	xAug := augmentWithIntercept(X)

	// initialize weights from 0.01 * N(0, 1)
	w := mat.NewVecDense(nFeatures+1, nil)
	for j := 0; j < w.Len(); j++ {
		w.SetVec(j, lr.rand.NormFloat64()*0.01)
	}

	yProb := logisticResponse(xAug, w)
	ePrev := crossEntropy(yVec, yProb)
	lr.lossCurve_ = append(lr.lossCurve_[:0], ePrev)

	var logger log.Logger
	if lr.show {
		logger = log.GetLoggerWithName("linear.logistic")
		logger.Info("starting gradient descent",
			log.OperationKey, log.OperationFit,
			log.SamplesKey, nSamples,
			log.FeaturesKey, nFeatures,
			log.LearningRateKey, lr.learningRate,
			log.LossKey, ePrev,
		)
	}

	// e starts above any sensible tol so the first iteration always runs.
	e := 1.0
	iter := 1

	for iter < lr.maxIter && e > lr.tol {
		// w += a * X_aug^T (y - yProb); full-batch, not scaled by n
		var resid mat.VecDense
		resid.SubVec(yVec, yProb)

		var grad mat.VecDense
		grad.MulVec(xAug.T(), &resid)
		w.AddScaledVec(w, lr.learningRate, &grad)

		yProb = logisticResponse(xAug, w)
		eNew := crossEntropy(yVec, yProb)

		if err := errors.CheckScalar("loss_calculation", eNew, iter); err != nil {
			return err
		}

		if lr.show && iter%20 == 0 {
			logger.Debug("gradient descent progress",
				log.IterationKey, iter,
				log.LossKey, eNew,
				log.LossDeltaKey, ePrev-eNew,
			)
		}

		e = ePrev - eNew
		ePrev = eNew
		lr.lossCurve_ = append(lr.lossCurve_, eNew)
		iter++
	}

	if e > lr.tol {
		errors.Warn(errors.NewConvergenceWarning("LogisticRegression", iter,
			"loss delta did not reach tol before the iteration cap"))
	}

	lr.weights = w
	lr.nFeatures_ = nFeatures
	lr.nIter_ = iter
	lr.state.SetDimensions(nFeatures, nSamples)
	lr.state.SetFitted()

	if lr.show {
		logger.Info("gradient descent finished",
			log.IterationKey, iter,
			log.LossKey, ePrev,
		)
	}

	return nil
}

// PredictProba returns the predicted probability of label 1 for each row of X.
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (*mat.VecDense, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "PredictProba")
	}

	_, nFeatures := X.Dims()
	if nFeatures != lr.nFeatures_ {
		return nil, errors.NewDimensionError("LogisticRegression.PredictProba", lr.nFeatures_, nFeatures, 1)
	}

	return logisticResponse(augmentWithIntercept(X), lr.weights), nil
}

// Predict returns binary labels for each row of X at the default 0.5 threshold.
func (lr *LogisticRegression) Predict(X mat.Matrix) (*mat.VecDense, error) {
	return lr.PredictAtThreshold(X, 0.5)
}

// PredictAtThreshold returns binary labels for each row of X, mapping
// probability < threshold to 0 and everything else to 1.
func (lr *LogisticRegression) PredictAtThreshold(X mat.Matrix, threshold float64) (*mat.VecDense, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "Predict")
	}
	if threshold < 0 || threshold > 1 {
		return nil, errors.NewValidationError("threshold", "must be in [0, 1]", threshold)
	}

	probs, err := lr.PredictProba(X)
	if err != nil {
		return nil, err
	}

	labels := mat.NewVecDense(probs.Len(), nil)
	for i := 0; i < probs.Len(); i++ {
		if probs.AtVec(i) < threshold {
			labels.SetVec(i, 0)
		} else {
			labels.SetVec(i, 1)
		}
	}
	return labels, nil
}

// Score returns the mean accuracy of Predict against the given labels.
func (lr *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.state.IsFitted() {
		return 0, errors.NewNotFittedError("LogisticRegression", "Score")
	}

	predictions, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	yRows, yCols := y.Dims()
	if yCols != 1 {
		return 0, errors.NewValueError("LogisticRegression.Score", "y must be a column vector")
	}
	if yRows != predictions.Len() {
		return 0, errors.NewDimensionError("LogisticRegression.Score", predictions.Len(), yRows, 0)
	}

	correct := 0
	for i := 0; i < yRows; i++ {
		if predictions.AtVec(i) == y.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(yRows), nil
}

// Coef returns a copy of the fitted feature weights (without the intercept).
func (lr *LogisticRegression) Coef() ([]float64, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "Coef")
	}

	coef := make([]float64, lr.nFeatures_)
	for j := 0; j < lr.nFeatures_; j++ {
		coef[j] = lr.weights.AtVec(j + 1)
	}
	return coef, nil
}

// Intercept returns the fitted intercept term.
func (lr *LogisticRegression) Intercept() (float64, error) {
	if !lr.state.IsFitted() {
		return 0, errors.NewNotFittedError("LogisticRegression", "Intercept")
	}
	return lr.weights.AtVec(0), nil
}

// NIter returns the number of gradient descent iterations performed,
// or 0 if the model has not been fitted.
func (lr *LogisticRegression) NIter() int {
	return lr.nIter_
}

// LossCurve returns a copy of the training cross-entropy per iteration.
// Index 0 holds the loss of the randomly initialized weights.
func (lr *LogisticRegression) LossCurve() ([]float64, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "LossCurve")
	}
	curve := make([]float64, len(lr.lossCurve_))
	copy(curve, lr.lossCurve_)
	return curve, nil
}

// GetParams returns the model hyperparameters.
func (lr *LogisticRegression) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"max_iter":      lr.maxIter,
		"learning_rate": lr.learningRate,
		"tol":           lr.tol,
		"show":          lr.show,
		"random_state":  lr.randomState,
	}
}

// SetParams sets the model hyperparameters.
func (lr *LogisticRegression) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "max_iter":
			lr.maxIter = value.(int)
		case "learning_rate":
			lr.learningRate = value.(float64)
		case "tol":
			lr.tol = value.(float64)
		case "show":
			lr.show = value.(bool)
		case "random_state":
			lr.randomState = value.(int64)
			if lr.randomState >= 0 {
				lr.rand = rand.New(rand.NewSource(lr.randomState))
			}
		default:
			return errors.Newf("unknown parameter: %s", key)
		}
	}
	return nil
}

// ExportWeights returns the fitted weights in serializable form.
func (lr *LogisticRegression) ExportWeights() (*model.ModelWeights, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "ExportWeights")
	}

	coef, err := lr.Coef()
	if err != nil {
		return nil, err
	}
	intercept, err := lr.Intercept()
	if err != nil {
		return nil, err
	}

	return &model.ModelWeights{
		ModelType:       "LogisticRegression",
		Version:         "1.0.0",
		Coefficients:    coef,
		Intercept:       intercept,
		Hyperparameters: lr.GetParams(),
		IsFitted:        true,
	}, nil
}

// ImportWeights restores a fitted model from serialized weights.
func (lr *LogisticRegression) ImportWeights(weights *model.ModelWeights) error {
	if weights == nil {
		return errors.NewValueError("LogisticRegression.ImportWeights", "weights must not be nil")
	}
	if err := weights.Validate(); err != nil {
		return errors.Wrap(err, "invalid model weights")
	}
	if weights.ModelType != "LogisticRegression" {
		return errors.Newf("model type mismatch: expected LogisticRegression, got %s", weights.ModelType)
	}

	nFeatures := len(weights.Coefficients)
	w := mat.NewVecDense(nFeatures+1, nil)
	w.SetVec(0, weights.Intercept)
	for j, c := range weights.Coefficients {
		w.SetVec(j+1, c)
	}

	lr.weights = w
	lr.nFeatures_ = nFeatures
	lr.state.SetDimensions(nFeatures, 0)
	lr.state.SetFitted()
	return nil
}

// augmentWithIntercept prepends a column of ones to X so the intercept can
// be carried inside the weight vector.
func augmentWithIntercept(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	xAug := mat.NewDense(r, c+1, nil)

	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			xAug.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				xAug.Set(i, j+1, X.At(i, j))
			}
		}
	})

	return xAug
}

// binaryLabelVector copies the label column into a VecDense, rejecting
// anything that is not exactly 0 or 1.
func binaryLabelVector(op string, y mat.Matrix) (*mat.VecDense, error) {
	rows, _ := y.Dims()
	vec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		v := y.At(i, 0)
		if v != 0 && v != 1 {
			return nil, errors.NewValueError(op, "labels must be binary (0 or 1)")
		}
		vec.SetVec(i, v)
	}
	return vec, nil
}
