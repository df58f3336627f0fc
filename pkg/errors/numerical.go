package errors

import (
	"math"
)

// Epsilon is the clamp bound used when probabilities are passed to a logarithm.
// Predicted probabilities are clipped to [Epsilon, 1-Epsilon] so that
// cross-entropy style losses stay finite when a model saturates at 0 or 1.
const Epsilon = 1e-15

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// ClipValue clips a value to the range [min, max].
func ClipValue(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClipProbability clips a probability to [Epsilon, 1-Epsilon].
func ClipProbability(p float64) float64 {
	return ClipValue(p, Epsilon, 1-Epsilon)
}
