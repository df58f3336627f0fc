package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/logit-ml/logit/pkg/errors"
)

// ConfusionCounts は1つの分類しきい値に対する混同行列の4つのカウントを表す
//
// 注意: このパッケージではラベル値0を「陽性」クラスとして扱う。
// 通常の「1が陽性」の慣習とは逆なので、TP/FNはラベル0側、
// TN/FPはラベル1側のカウントになる
type ConfusionCounts struct {
	TP int // 真値0・予測0
	FN int // 真値0・予測1
	FP int // 真値1・予測0
	TN int // 真値1・予測1
}

// Total はカウントの合計（サンプル数）を返す
func (c *ConfusionCounts) Total() int {
	return c.TP + c.FN + c.FP + c.TN
}

// Matrix は2×2配列 [[TP, FN], [FP, TN]] を返す
func (c *ConfusionCounts) Matrix() [2][2]int {
	return [2][2]int{
		{c.TP, c.FN},
		{c.FP, c.TN},
	}
}

// ConfusionMatrix は真値ラベルと予測ラベルから混同行列カウントを計算する
//
// ラベルは0または1でなければならない。ラベル0が陽性クラスとして数えられる
func ConfusionMatrix(yTrue, yPred *mat.VecDense) (*ConfusionCounts, error) {
	// 入力検証
	if yTrue == nil || yTrue.Len() == 0 {
		return nil, errors.NewValueError("ConfusionMatrix", "empty vector")
	}

	n := yTrue.Len()
	if yPred == nil || yPred.Len() != n {
		got := 0
		if yPred != nil {
			got = yPred.Len()
		}
		return nil, errors.NewDimensionError("ConfusionMatrix", n, got, 0)
	}

	counts := &ConfusionCounts{}
	for i := 0; i < n; i++ {
		t := yTrue.AtVec(i)
		p := yPred.AtVec(i)
		if (t != 0 && t != 1) || (p != 0 && p != 1) {
			return nil, errors.NewValueError("ConfusionMatrix", "labels must be binary (0 or 1)")
		}

		switch {
		case t == 0 && p == 0:
			counts.TP++
		case t == 0 && p == 1:
			counts.FN++
		case t == 1 && p == 0:
			counts.FP++
		default:
			counts.TN++
		}
	}

	return counts, nil
}

// ClassMetrics は1クラス分の再現率・適合率・F1スコアを表す
type ClassMetrics struct {
	Recall    float64
	Precision float64
	F1        float64
}

// ClassificationReport は2クラス分のクラス別指標と全体の正解率を表す
//
// Class0 はラベル0（陽性扱い）側、Class1 はラベル1側の指標。
// 分母が0になる指標はNaNとなり、UndefinedMetricWarning が発行される
type ClassificationReport struct {
	Class0   ClassMetrics
	Class1   ClassMetrics
	Accuracy float64
}

// Report は混同行列カウントから分類指標レポートを導出する
func (c *ConfusionCounts) Report() *ClassificationReport {
	tp := float64(c.TP)
	fn := float64(c.FN)
	fp := float64(c.FP)
	tn := float64(c.TN)

	report := &ClassificationReport{
		Class0: ClassMetrics{
			Recall:    safeRatio("recall(class 0)", tp, tp+fn),
			Precision: safeRatio("precision(class 0)", tp, tp+fp),
			F1:        safeRatio("f1(class 0)", tp, tp+0.5*(fp+fn)),
		},
		Class1: ClassMetrics{
			Recall:    safeRatio("recall(class 1)", tn, tn+fp),
			Precision: safeRatio("precision(class 1)", tn, tn+fn),
			F1:        safeRatio("f1(class 1)", tn, tn+0.5*(fn+fp)),
		},
		Accuracy: safeRatio("accuracy", tp+tn, tp+tn+fp+fn),
	}

	return report
}

// safeRatio は分母0のとき警告を発してNaNを返す
func safeRatio(metric string, num, denom float64) float64 {
	if denom == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(metric, "zero denominator", math.NaN()))
		return math.NaN()
	}
	return num / denom
}
