package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/logit-ml/logit/pkg/errors"
)

// sigmoid computes 1 / (1 + exp(-z)) with a branch that avoids overflow
// for large negative inputs.
func sigmoid(z float64) float64 {
	if z < 0 {
		e := math.Exp(z)
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(-z))
}

// logisticResponse computes sigmoid(xAug w) for every row of xAug.
func logisticResponse(xAug *mat.Dense, w *mat.VecDense) *mat.VecDense {
	r, _ := xAug.Dims()
	var z mat.VecDense
	z.MulVec(xAug, w)

	probs := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		probs.SetVec(i, sigmoid(z.AtVec(i)))
	}
	return probs
}

// crossEntropy returns the summed (not averaged) binary cross-entropy
// of predicted probabilities p against targets t. Probabilities are
// clipped away from 0 and 1 before taking logarithms.
func crossEntropy(t, p *mat.VecDense) float64 {
	sum := 0.0
	for i := 0; i < t.Len(); i++ {
		ti := t.AtVec(i)
		pi := errors.ClipProbability(p.AtVec(i))
		sum += -ti*math.Log(pi) - (1-ti)*math.Log(1-pi)
	}
	return sum
}
