package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// DesignMatrix holds every predictor's output on every training case.
// P[i][j] is predictor j on case i and T[i] is the target of case i.
type DesignMatrix struct {
	P *mat.Dense
	T *mat.VecDense
}

// Dims returns the number of cases and predictors.
func (d *DesignMatrix) Dims() (cases, predictors int) {
	return d.P.Dims()
}

// BuildDesignMatrix queries each predictor on each row of X. Predictors are
// only read. The first predictor error is returned with its case and
// predictor index.
func BuildDesignMatrix(X, y mat.Matrix, preds model.PredictorSet) (*DesignMatrix, error) {
	if err := preds.Validate(); err != nil {
		return nil, err
	}
	n, nin, err := checkTrainingSet("BuildDesignMatrix", X, y)
	if err != nil {
		return nil, err
	}

	m := len(preds)
	P := mat.NewDense(n, m, nil)
	T := mat.NewVecDense(n, nil)
	x := make([]float64, nin)
	for i := 0; i < n; i++ {
		mat.Row(x, i, X)
		if _, err := preds.Outputs(x, P.RawRowView(i)); err != nil {
			return nil, errors.Wrapf(err, "case %d", i)
		}
		T.SetVec(i, y.At(i, 0))
	}
	return &DesignMatrix{P: P, T: T}, nil
}

// checkTrainingSet validates X (n×nin) and y (n×1).
func checkTrainingSet(op string, X, y mat.Matrix) (n, nin int, err error) {
	if X == nil || y == nil {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	n, nin = X.Dims()
	if n == 0 || nin == 0 {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	ry, cy := y.Dims()
	if ry != n {
		return 0, 0, errors.NewDimensionError(op, n, ry, 0)
	}
	if cy != 1 {
		return 0, 0, errors.NewDimensionError(op, 1, cy, 1)
	}
	return n, nin, nil
}
