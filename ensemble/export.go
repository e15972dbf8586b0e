package ensemble

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/scigo-combine/core/model"
)

// exportWeights packages fitted linear combination coefficients.
func (b *base) exportWeights(coefs []float64, intercept float64, metadata map[string]interface{}) (*model.Weights, error) {
	if err := b.state.RequireFitted("ExportWeights"); err != nil {
		return nil, err
	}
	return &model.Weights{
		ModelType:    b.name,
		Version:      model.WeightsVersion,
		Coefficients: append([]float64(nil), coefs...),
		Intercept:    intercept,
		Hyperparameters: map[string]interface{}{
			"minimizer":      b.cfg.minimizer.Name(),
			"max_iterations": b.cfg.settings.MaxIterations,
			"tolerance":      b.cfg.settings.Tolerance,
		},
		Metadata: metadata,
		IsFitted: true,
	}, nil
}

func (d Diagnostics) metadata() map[string]interface{} {
	return map[string]interface{}{
		"iterations": d.Iterations,
		"loss":       d.Loss,
		"converged":  d.Converged,
	}
}

// ExportWeights returns the equal weights 1/m.
func (a *Average) ExportWeights() (*model.Weights, error) {
	w := make([]float64, len(a.preds))
	floats.AddConst(1/float64(len(w)), w)
	return a.exportWeights(w, 0, nil)
}

// ExportWeights implements model.WeightExporter.
func (u *Unconstrained) ExportWeights() (*model.Weights, error) {
	return u.exportWeights(u.Weights(), u.Intercept(), nil)
}

// ExportWeights implements model.WeightExporter.
func (u *Unbiased) ExportWeights() (*model.Weights, error) {
	return u.exportWeights(u.weights, 0, u.diag.metadata())
}

// ExportWeights implements model.WeightExporter.
func (b *Biased) ExportWeights() (*model.Weights, error) {
	return b.exportWeights(b.Weights(), b.Intercept(), b.diag.metadata())
}

// ExportWeights implements model.WeightExporter.
func (w *Weighted) ExportWeights() (*model.Weights, error) {
	return w.exportWeights(w.weights, 0, nil)
}

var (
	_ model.WeightExporter = (*Average)(nil)
	_ model.WeightExporter = (*Bagged)(nil)
	_ model.WeightExporter = (*Unconstrained)(nil)
	_ model.WeightExporter = (*Unbiased)(nil)
	_ model.WeightExporter = (*Biased)(nil)
	_ model.WeightExporter = (*Weighted)(nil)
)
