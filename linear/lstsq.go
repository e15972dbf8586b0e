package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// DefaultTolerance は特異値の打ち切り比率の既定値
const DefaultTolerance = 1e-6

// SolveLeastSquares は ||A x - b||² を最小にする x を特異値分解で求める。
// 最大特異値の tol 倍以下の特異値は 0 とみなして捨てるため、
// 列が線形従属でも最小ノルム解が返る。
func SolveLeastSquares(A mat.Matrix, b mat.Vector, tol float64) (*mat.VecDense, error) {
	r, c := A.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("SolveLeastSquares", "empty data", errors.ErrEmptyData)
	}
	if b.Len() != r {
		return nil, errors.NewDimensionError("SolveLeastSquares", r, b.Len(), 0)
	}
	if tol < 0 || tol >= 1 {
		return nil, errors.NewValidationError("tol", "must be in [0, 1)", tol)
	}

	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDThin) {
		return nil, errors.NewModelError("SolveLeastSquares", "svd did not converge", errors.ErrSingularMatrix)
	}

	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 {
		return nil, errors.NewModelError("SolveLeastSquares", "singular matrix", errors.ErrSingularMatrix)
	}
	limit := tol * values[0]
	rank := 0
	for _, v := range values {
		if v > limit {
			rank++
		}
	}

	x := mat.NewVecDense(c, nil)
	svd.SolveVecTo(x, b, rank)
	if err := errors.CheckNumericalStability("SolveLeastSquares", x.RawVector().Data, 0); err != nil {
		return nil, err
	}
	return x, nil
}
