package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/logit-ml/logit/pkg/errors"
)

// rocSteps はROC曲線のしきい値スイープの分割数
const rocSteps = 100

// ROCCurve はしきい値スイープで得られたROC曲線を表す
//
// 各点はスイープ順（しきい値の昇順）に格納される。
// X は偽陽性率（1 - 特異度）、Y は再現率（真陽性率）。
// AUC はスイープ順のまま台形則で積分した値
type ROCCurve struct {
	Thresholds []float64
	X          []float64
	Y          []float64
	AUC        float64
}

// Len は曲線上の点の数を返す
func (c *ROCCurve) Len() int {
	return len(c.X)
}

// Point はi番目の (偽陽性率, 再現率) を返す
func (c *ROCCurve) Point(i int) (x, y float64) {
	return c.X[i], c.Y[i]
}

// ROC は予測確率をしきい値スイープしてROC曲線とAUCを計算する
//
// しきい値は[0, 1]を100等分した値を昇順に使い、各しきい値で
// 確率 < p をラベル0（陽性）、それ以外をラベル1として混同行列を取る。
// 真値に片方のクラスしか存在しない場合、再現率または偽陽性率の
// 分母が全しきい値で0になるためエラーを返す
func ROC(yTrue, yProb *mat.VecDense) (*ROCCurve, error) {
	// 入力検証
	if yTrue == nil || yTrue.Len() == 0 {
		return nil, errors.NewValueError("ROC", "empty vector")
	}

	n := yTrue.Len()
	if yProb == nil || yProb.Len() != n {
		got := 0
		if yProb != nil {
			got = yProb.Len()
		}
		return nil, errors.NewDimensionError("ROC", n, got, 0)
	}

	nZero, nOne := 0, 0
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 0:
			nZero++
		case 1:
			nOne++
		default:
			return nil, errors.NewValueError("ROC", "labels must be binary (0 or 1)")
		}
	}
	if nZero == 0 || nOne == 0 {
		return nil, errors.NewValueError("ROC", "both classes must be present")
	}

	curve := &ROCCurve{
		Thresholds: make([]float64, rocSteps),
		X:          make([]float64, rocSteps),
		Y:          make([]float64, rocSteps),
	}

	pred := mat.NewVecDense(n, nil)
	for step := 0; step < rocSteps; step++ {
		p := float64(step) / float64(rocSteps-1)

		for i := 0; i < n; i++ {
			if yProb.AtVec(i) < p {
				pred.SetVec(i, 0)
			} else {
				pred.SetVec(i, 1)
			}
		}

		counts, err := ConfusionMatrix(yTrue, pred)
		if err != nil {
			return nil, err
		}

		curve.Thresholds[step] = p
		curve.Y[step] = float64(counts.TP) / float64(counts.TP+counts.FN)
		curve.X[step] = 1 - float64(counts.TN)/float64(counts.TN+counts.FP)
	}

	// スイープ順のまま台形則で積分する（xでソートしない）
	for i := 0; i < rocSteps-1; i++ {
		curve.AUC += 0.5 * (curve.Y[i] + curve.Y[i+1]) * (curve.X[i+1] - curve.X[i])
	}

	return curve, nil
}
