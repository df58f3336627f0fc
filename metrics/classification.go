package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/logit-ml/logit/pkg/errors"
)

// Accuracy は正解率（一致したラベルの割合）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	errRate, err := ClassificationError(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - errRate, nil
}

// ClassificationError は誤分類率（不一致ラベルの割合）を計算する
func ClassificationError(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, errors.NewValueError("ClassificationError", "empty vector")
	}

	n := yTrue.Len()
	if yPred == nil || yPred.Len() != n {
		got := 0
		if yPred != nil {
			got = yPred.Len()
		}
		return 0, errors.NewDimensionError("ClassificationError", n, got, 0)
	}

	wrong := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) != yPred.AtVec(i) {
			wrong++
		}
	}

	return float64(wrong) / float64(n), nil
}

// BinaryLogLoss は二値分類の対数損失（平均クロスエントロピー）を計算する
//
// 予測確率はlog(0)を避けるためepsilonでクリッピングされる
func BinaryLogLoss(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, errors.NewValueError("BinaryLogLoss", "empty vector")
	}

	n := yTrue.Len()
	if yPred == nil || yPred.Len() != n {
		got := 0
		if yPred != nil {
			got = yPred.Len()
		}
		return 0, errors.NewDimensionError("BinaryLogLoss", n, got, 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		t := yTrue.AtVec(i)
		if t != 0 && t != 1 {
			return 0, errors.NewValueError("BinaryLogLoss", "labels must be binary (0 or 1)")
		}

		p := errors.ClipProbability(yPred.AtVec(i))
		sum += -t*math.Log(p) - (1-t)*math.Log(1-p)
	}

	return sum / float64(n), nil
}

// AUC はランク統計（Mann-Whitney U）によるROC曲線下面積を計算する
//
// 正例と負例の全ペアについて、正例のスコアが高いペアの割合を返す。
// スコアが同値のペアは0.5として数える。
// 片方のクラスしか存在しない場合、AUCは未定義のため警告を発して0.5を返す
func AUC(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, errors.NewValueError("AUC", "empty vector")
	}

	n := yTrue.Len()
	if yPred == nil || yPred.Len() != n {
		got := 0
		if yPred != nil {
			got = yPred.Len()
		}
		return 0, errors.NewDimensionError("AUC", n, got, 0)
	}

	nPos, nNeg := 0, 0
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 1:
			nPos++
		case 0:
			nNeg++
		default:
			return 0, errors.NewValueError("AUC", "labels must be binary (0 or 1)")
		}
	}

	if nPos == 0 || nNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("AUC", "only one class present", 0.5))
		return 0.5, nil
	}

	// スコアで昇順ソートし、同値グループには平均順位を割り当てる
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return yPred.AtVec(idx[a]) < yPred.AtVec(idx[b])
	})

	var rankSumPos float64
	i := 0
	for i < n {
		j := i
		for j < n && yPred.AtVec(idx[j]) == yPred.AtVec(idx[i]) {
			j++
		}
		// 1始まりの順位 i+1..j の平均
		avgRank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			if yTrue.AtVec(idx[k]) == 1 {
				rankSumPos += avgRank
			}
		}
		i = j
	}

	u := rankSumPos - float64(nPos)*float64(nPos+1)/2.0
	return u / (float64(nPos) * float64(nNeg)), nil
}

// AUCMatrix は行列形式の入力に対してAUCを計算する（最初の列のみ使用）
func AUCMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	// 入力検証
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("AUCMatrix", "nil matrix")
	}

	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 || rPred == 0 || cPred == 0 {
		return 0, errors.NewValueError("AUCMatrix", "empty matrix")
	}

	if rTrue != rPred {
		return 0, errors.NewDimensionError("AUCMatrix", rTrue, rPred, 0)
	}

	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)
	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return AUC(yTrueVec, yPredVec)
}
