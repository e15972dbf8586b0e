package ensemble

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Biased fits nonnegative weights plus a free intercept. The weights are not
// normalized.
type Biased struct {
	base
	coefs []float64 // m weights, then the intercept
	diag  Diagnostics
}

// NewBiased returns an unfitted Biased over preds.
func NewBiased(preds model.PredictorSet, opts ...Option) (*Biased, error) {
	b, err := newBase("Biased", preds, opts)
	if err != nil {
		return nil, err
	}
	return &Biased{base: b}, nil
}

// Fit minimizes the penalized squared error from equal weights and a zero
// intercept.
func (b *Biased) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Biased.Fit")

	dm, err := b.design(X, y)
	if err != nil {
		return err
	}
	_, m := dm.Dims()

	x0 := make([]float64, m+1)
	for j := 0; j < m; j++ {
		x0[j] = 1 / float64(m)
	}
	w, diag, err := b.optimize(biasedObjective(dm), x0)
	if err != nil {
		return err
	}

	b.coefs = w
	b.diag = diag
	return b.finish(X, append(diag.fields(), log.WeightsKey, b.coefs)...)
}

// PredictOne implements model.Predictor.
func (b *Biased) PredictOne(x []float64) (float64, error) {
	out, err := b.outputs("PredictOne", x)
	if err != nil {
		return 0, err
	}
	m := len(out)
	return b.coefs[m] + floats.Dot(out, b.coefs[:m]), nil
}

// Predict implements model.BatchPredictor.
func (b *Biased) Predict(X mat.Matrix) (mat.Matrix, error) {
	return b.predictRows(b, X)
}

// Weights returns a copy of the fitted predictor weights.
func (b *Biased) Weights() []float64 {
	if len(b.coefs) == 0 {
		return nil
	}
	return append([]float64(nil), b.coefs[:len(b.coefs)-1]...)
}

// Intercept returns the fitted intercept.
func (b *Biased) Intercept() float64 {
	if len(b.coefs) == 0 {
		return 0
	}
	return b.coefs[len(b.coefs)-1]
}

// Diagnostics returns the optimizer record of the fit.
func (b *Biased) Diagnostics() Diagnostics {
	return b.diag
}
