package ensemble

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/linear"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Unconstrained fits ordinary least-squares weights and an intercept on the
// predictor outputs. Weights may take any sign or magnitude.
type Unconstrained struct {
	base
	coefs []float64 // m weights, then the intercept
}

// NewUnconstrained returns an unfitted Unconstrained over preds.
func NewUnconstrained(preds model.PredictorSet, opts ...Option) (*Unconstrained, error) {
	b, err := newBase("Unconstrained", preds, opts)
	if err != nil {
		return nil, err
	}
	return &Unconstrained{base: b}, nil
}

// Fit solves [P | 1] c = T in the least-squares sense.
func (u *Unconstrained) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Unconstrained.Fit")

	dm, err := u.design(X, y)
	if err != nil {
		return err
	}
	n, m := dm.Dims()

	A := mat.NewDense(n, m+1, nil)
	A.Slice(0, n, 0, m).(*mat.Dense).Copy(dm.P)
	for i := 0; i < n; i++ {
		A.Set(i, m, 1)
	}

	c, err := linear.SolveLeastSquares(A, dm.T, u.cfg.rankTolerance)
	if err != nil {
		return errors.Wrap(err, "Unconstrained.Fit")
	}
	u.coefs = append([]float64(nil), c.RawVector().Data...)

	return u.finish(X, log.WeightsKey, u.coefs)
}

// PredictOne implements model.Predictor.
func (u *Unconstrained) PredictOne(x []float64) (float64, error) {
	out, err := u.outputs("PredictOne", x)
	if err != nil {
		return 0, err
	}
	m := len(out)
	return u.coefs[m] + floats.Dot(out, u.coefs[:m]), nil
}

// Predict implements model.BatchPredictor.
func (u *Unconstrained) Predict(X mat.Matrix) (mat.Matrix, error) {
	return u.predictRows(u, X)
}

// Weights returns a copy of the fitted predictor weights.
func (u *Unconstrained) Weights() []float64 {
	if len(u.coefs) == 0 {
		return nil
	}
	return append([]float64(nil), u.coefs[:len(u.coefs)-1]...)
}

// Intercept returns the fitted intercept.
func (u *Unconstrained) Intercept() float64 {
	if len(u.coefs) == 0 {
		return 0
	}
	return u.coefs[len(u.coefs)-1]
}
