// Package preprocessing はデータ分割などの前処理ユーティリティを提供する
package preprocessing

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/logit-ml/logit/pkg/errors"
)

// SplitResult は訓練セットとテストセットへの分割結果を表す
type SplitResult struct {
	XTrain *mat.Dense
	XTest  *mat.Dense
	YTrain *mat.VecDense
	YTest  *mat.VecDense
}

// TrainTestSplit は特徴量行列とラベルベクトルをラベルで層化して
// 訓練セットとテストセットに分割する
//
// testSizeはテストセットの割合で(0, 1)の範囲でなければならない。
// 層化は各ラベル値ごとに行うため、クラス比率は両セットでほぼ保たれる。
// seedが非負の場合、シャッフルは再現可能になる
func TrainTestSplit(X mat.Matrix, y *mat.VecDense, testSize float64, seed int64) (*SplitResult, error) {
	if X == nil || y == nil {
		return nil, errors.NewValueError("TrainTestSplit", "nil input")
	}

	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return nil, errors.NewValueError("TrainTestSplit", "empty matrix")
	}
	if y.Len() != nSamples {
		return nil, errors.NewDimensionError("TrainTestSplit", nSamples, y.Len(), 0)
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, errors.NewValidationError("testSize", "must be in (0, 1)", testSize)
	}

	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	// ラベル値ごとにインデックスを集めてシャッフルする
	byLabel := make(map[float64][]int)
	var labels []float64
	for i := 0; i < nSamples; i++ {
		v := y.AtVec(i)
		if _, seen := byLabel[v]; !seen {
			labels = append(labels, v)
		}
		byLabel[v] = append(byLabel[v], i)
	}

	var trainIdx, testIdx []int
	for _, label := range labels {
		idx := byLabel[label]
		rng.Shuffle(len(idx), func(a, b int) {
			idx[a], idx[b] = idx[b], idx[a]
		})

		nTest := int(float64(len(idx)) * testSize)
		if nTest == 0 && len(idx) > 1 {
			nTest = 1
		}
		testIdx = append(testIdx, idx[:nTest]...)
		trainIdx = append(trainIdx, idx[nTest:]...)
	}

	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return nil, errors.NewValueError("TrainTestSplit", "split produced an empty partition")
	}

	return &SplitResult{
		XTrain: gatherRows(X, trainIdx, nFeatures),
		XTest:  gatherRows(X, testIdx, nFeatures),
		YTrain: gatherVec(y, trainIdx),
		YTest:  gatherVec(y, testIdx),
	}, nil
}

func gatherRows(X mat.Matrix, idx []int, nFeatures int) *mat.Dense {
	out := mat.NewDense(len(idx), nFeatures, nil)
	for i, src := range idx {
		for j := 0; j < nFeatures; j++ {
			out.Set(i, j, X.At(src, j))
		}
	}
	return out
}

func gatherVec(y *mat.VecDense, idx []int) *mat.VecDense {
	out := mat.NewVecDense(len(idx), nil)
	for i, src := range idx {
		out.SetVec(i, y.AtVec(src))
	}
	return out
}
