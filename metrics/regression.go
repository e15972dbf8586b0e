package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

func checkPair(op string, yTrue, yPred []float64) error {
	n := len(yTrue)
	if n == 0 {
		return errors.NewValueError(op, "empty vector")
	}
	if len(yPred) != n {
		return errors.NewDimensionError(op, n, len(yPred), 0)
	}
	return nil
}

// SSE は二乗誤差の総和（Sum of Squared Errors）を計算する
func SSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("SSE", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i, t := range yTrue {
		diff := t - yPred[i]
		sum += diff * diff
	}
	return sum, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred []float64) (float64, error) {
	sse, err := SSE(yTrue, yPred)
	if err != nil {
		return 0, errors.Wrap(err, "MSE")
	}
	return sse / float64(len(yTrue)), nil
}

// MSEMatrix は n×1 行列形式の入力に対してMSEを計算する。
// コンバイナーや基底モデルの Predict の戻り値をそのまま渡せる。
func MSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("MSEMatrix", "empty matrix")
	}
	if rTrue != rPred {
		return 0, errors.NewDimensionError("MSEMatrix", rTrue, rPred, 0)
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError("MSEMatrix", "must be a column vector (n×1 matrix)")
	}

	return MSE(mat.Col(nil, 0, yTrue), mat.Col(nil, 0, yPred))
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("MAE", yTrue, yPred); err != nil {
		return 0, err
	}
	// L1 距離 / n
	return floats.Distance(yTrue, yPred, 1) / float64(len(yTrue)), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("R2Score", yTrue, yPred); err != nil {
		return 0, err
	}

	yMean := stat.Mean(yTrue, nil)
	var tss, rss float64
	for i, t := range yTrue {
		tss += (t - yMean) * (t - yMean)
		rss += (t - yPred[i]) * (t - yPred[i])
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}
	return 1 - rss/tss, nil
}

// ExplainedVarianceScore は説明分散スコアを計算する
func ExplainedVarianceScore(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("ExplainedVarianceScore", yTrue, yPred); err != nil {
		return 0, err
	}

	diff := make([]float64, len(yTrue))
	floats.SubTo(diff, yTrue, yPred)

	_, varYTrue := stat.PopMeanVariance(yTrue, nil)
	_, varDiff := stat.PopMeanVariance(diff, nil)
	if varYTrue == 0 {
		return 0, errors.Newf("ExplainedVarianceScore: no variance in yTrue")
	}

	// 説明分散スコア = 1 - Var(yTrue - yPred) / Var(yTrue)
	return 1 - varDiff/varYTrue, nil
}
