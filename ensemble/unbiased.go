package ensemble

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Unbiased fits a convex combination: nonnegative weights summing to one,
// no intercept. Nonnegativity is enforced by a penalty, so a fitted weight
// may be negative by up to the optimizer tolerance.
type Unbiased struct {
	base
	weights []float64
	diag    Diagnostics
}

// NewUnbiased returns an unfitted Unbiased over preds.
func NewUnbiased(preds model.PredictorSet, opts ...Option) (*Unbiased, error) {
	b, err := newBase("Unbiased", preds, opts)
	if err != nil {
		return nil, err
	}
	return &Unbiased{base: b}, nil
}

// Fit minimizes the penalized squared error from equal weights and
// normalizes the result.
func (u *Unbiased) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Unbiased.Fit")

	dm, err := u.design(X, y)
	if err != nil {
		return err
	}
	_, m := dm.Dims()

	x0 := make([]float64, m)
	for j := range x0 {
		x0[j] = 1 / float64(m)
	}
	w, diag, err := u.optimize(unbiasedObjective(dm), x0)
	if err != nil {
		return err
	}

	u.weights = normalizeWeights(w, w)
	u.diag = diag
	return u.finish(X, append(diag.fields(), log.WeightsKey, u.weights)...)
}

// PredictOne implements model.Predictor.
func (u *Unbiased) PredictOne(x []float64) (float64, error) {
	out, err := u.outputs("PredictOne", x)
	if err != nil {
		return 0, err
	}
	return floats.Dot(out, u.weights), nil
}

// Predict implements model.BatchPredictor.
func (u *Unbiased) Predict(X mat.Matrix) (mat.Matrix, error) {
	return u.predictRows(u, X)
}

// Weights returns a copy of the fitted weights.
func (u *Unbiased) Weights() []float64 {
	return append([]float64(nil), u.weights...)
}

// Diagnostics returns the optimizer record of the fit.
func (u *Unbiased) Diagnostics() Diagnostics {
	return u.diag
}
