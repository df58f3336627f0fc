package linear

// Option configures a LogisticRegression.
type Option func(*LogisticRegression)

// WithMaxIter sets the cap on gradient descent iterations (default 1000).
func WithMaxIter(n int) Option {
	return func(lr *LogisticRegression) {
		lr.maxIter = n
	}
}

// WithLearningRate sets the fixed gradient step size (default 0.01).
func WithLearningRate(a float64) Option {
	return func(lr *LogisticRegression) {
		lr.learningRate = a
	}
}

// WithTol sets the signed loss-delta threshold that stops training
// (default 1e-7). Training stops once loss(prev) - loss(new) <= tol,
// so a loss increase also stops the loop.
func WithTol(tol float64) Option {
	return func(lr *LogisticRegression) {
		lr.tol = tol
	}
}

// WithShowProgress enables periodic progress logging during Fit.
func WithShowProgress(show bool) Option {
	return func(lr *LogisticRegression) {
		lr.show = show
	}
}

// WithRandomState seeds weight initialization for reproducible runs.
// A negative seed selects an arbitrary source.
func WithRandomState(seed int64) Option {
	return func(lr *LogisticRegression) {
		lr.randomState = seed
	}
}
