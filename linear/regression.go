package linear

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/core/parallel"
	"github.com/YuminosukeSato/scigo-combine/metrics"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// LinearRegression は最小二乗法による線形回帰モデル。
// 結合実験では基底予測器の一つとして使う。
type LinearRegression struct {
	state *model.StateManager

	fitIntercept bool
	tol          float64

	coef      []float64 // 重み（係数）
	intercept float64   // 切片
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		state:        model.NewStateManager("LinearRegression"),
		fitIntercept: true,
		tol:          DefaultTolerance,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit はモデルを訓練データで学習させる。
// 切片列を付けた計画行列を SolveLeastSquares で解く。
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	if err := lr.state.RequireUnfitted(); err != nil {
		return err
	}

	r, c := X.Dims()
	ry, cy := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	offset := 0
	if lr.fitIntercept {
		offset = 1
	}

	// 切片項は最後の列ではなく先頭に置く: A = [1, X]
	A := mat.NewDense(r, c+offset, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			if offset == 1 {
				A.Set(i, 0, 1.0)
			}
			for j := 0; j < c; j++ {
				A.Set(i, j+offset, X.At(i, j))
			}
		}
	})

	target := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		target.SetVec(i, y.At(i, 0))
	}

	w, err := SolveLeastSquares(A, target, lr.tol)
	if err != nil {
		return errors.Wrap(err, "LinearRegression.Fit")
	}

	raw := w.RawVector().Data
	if offset == 1 {
		lr.intercept = raw[0]
	}
	lr.coef = append([]float64(nil), raw[offset:offset+c]...)

	return lr.state.MarkFitted(c, r)
}

// PredictOne は1ケースの予測値を返す
func (lr *LinearRegression) PredictOne(x []float64) (float64, error) {
	if err := lr.state.RequireFitted("PredictOne"); err != nil {
		return 0, err
	}
	if err := lr.state.RequireInputDim("LinearRegression.PredictOne", len(x)); err != nil {
		return 0, err
	}
	return lr.intercept + floats.Dot(lr.coef, x), nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := lr.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}
	return model.PredictRows(lr, X)
}

// Coef は学習された重み（係数）のコピーを返す
func (lr *LinearRegression) Coef() []float64 {
	if !lr.state.IsFitted() {
		return nil
	}
	return append([]float64(nil), lr.coef...)
}

// Intercept は学習された切片を返す
func (lr *LinearRegression) Intercept() float64 {
	return lr.intercept
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	pred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	r, _ := y.Dims()
	yTrue := make([]float64, r)
	mat.Col(yTrue, 0, y)
	return metrics.R2Score(yTrue, mat.Col(nil, 0, pred))
}
