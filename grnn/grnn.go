// Package grnn implements a general regression neural network: a
// Nadaraya-Watson kernel regressor with a Gaussian kernel and one smoothing
// width per input.
//
// Inputs are standardized before training. Train first picks a common width
// by a log-spaced search of the leave-one-out error, then refines the
// per-input widths with a derivative-free search over their logarithms.
package grnn

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/minimize"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
	"github.com/YuminosukeSato/scigo-combine/preprocessing"
)

// log widths are confined to [-maxLogSigma, maxLogSigma]
const maxLogSigma = 10.0

// GRNN is a kernel regressor. Cases are added one at a time, then Train is
// called once. A trained GRNN is read-only and safe for concurrent
// PredictOne calls.
type GRNN struct {
	nin int
	cfg config

	inputs  [][]float64 // raw inputs until Train, standardized after
	targets []float64

	scaler  *preprocessing.StandardScaler
	sigma   []float64
	looMSE  float64
	trained bool
}

// New returns an empty GRNN for nin inputs.
func New(nin int, opts ...Option) *GRNN {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLoggerWithName("grnn")
	}
	return &GRNN{nin: nin, cfg: cfg}
}

// AddCase appends a training case of nin inputs followed by the target.
func (g *GRNN) AddCase(c []float64) error {
	if g.trained {
		return errors.WithStack(errors.ErrAlreadyFitted)
	}
	if len(c) != g.nin+1 {
		return errors.NewDimensionError("GRNN.AddCase", g.nin+1, len(c), 1)
	}
	if err := errors.CheckNumericalStability("GRNN.AddCase", c, len(g.targets)); err != nil {
		return err
	}
	g.inputs = append(g.inputs, append([]float64(nil), c[:g.nin]...))
	g.targets = append(g.targets, c[g.nin])
	return nil
}

// Len returns the number of training cases.
func (g *GRNN) Len() int {
	return len(g.targets)
}

// Train standardizes the inputs and selects the kernel widths.
func (g *GRNN) Train() error {
	if g.trained {
		return errors.WithStack(errors.ErrAlreadyFitted)
	}
	if err := g.cfg.validate(); err != nil {
		return err
	}
	if g.nin <= 0 {
		return errors.NewValidationError("nin", "must be positive", g.nin)
	}
	n := len(g.targets)
	if n < 2 {
		return errors.NewModelError("GRNN.Train", "at least two cases are required", errors.ErrEmptyData)
	}

	X := mat.NewDense(n, g.nin, nil)
	for i, row := range g.inputs {
		X.SetRow(i, row)
	}
	g.scaler = preprocessing.NewStandardScalerDefault()
	Z, err := g.scaler.FitTransform(X)
	if err != nil {
		return errors.Wrap(err, "GRNN.Train")
	}
	for i := range g.inputs {
		mat.Row(g.inputs[i], i, Z)
	}

	logSigma, loss := g.coarseSearch()
	g.cfg.logger.Debug("common sigma selected",
		"sigma", math.Exp(logSigma),
		log.LossKey, loss,
		log.SamplesKey, n,
	)

	theta := make([]float64, g.nin)
	for j := range theta {
		theta[j] = logSigma
	}
	if g.cfg.refineIterations > 0 {
		theta, loss = g.refine(theta, loss)
	}

	g.sigma = make([]float64, g.nin)
	for j, t := range theta {
		g.sigma[j] = math.Exp(t)
	}
	g.looMSE = loss
	g.trained = true
	return nil
}

// coarseSearch evaluates the leave-one-out error at log-spaced common widths
// and returns the best log width.
func (g *GRNN) coarseSearch() (bestLog, bestLoss float64) {
	lo, hi := math.Log(g.cfg.minSigma), math.Log(g.cfg.maxSigma)
	theta := make([]float64, g.nin)
	bestLoss = math.Inf(1)
	for k := 0; k < g.cfg.searchPoints; k++ {
		t := lo + (hi-lo)*float64(k)/float64(g.cfg.searchPoints-1)
		for j := range theta {
			theta[j] = t
		}
		if loss := g.looError(theta); loss < bestLoss {
			bestLoss, bestLog = loss, t
		}
	}
	return bestLog, bestLoss
}

// refine searches per-input log widths. A failed search keeps the start.
func (g *GRNN) refine(theta []float64, loss float64) ([]float64, float64) {
	s := minimize.Settings{
		MaxIterations: g.cfg.refineIterations,
		Tolerance:     g.cfg.tolerance,
		CritLimit:     0,
	}
	res, err := g.cfg.minimizer.Minimize(g.looError, theta, s)
	if err != nil {
		errors.Warn(errors.NewConvergenceWarning(g.cfg.minimizer.Name(), 0,
			"sigma refinement failed: "+err.Error()))
		return theta, loss
	}
	if res.F >= loss {
		return theta, loss
	}
	for j := range res.X {
		res.X[j] = errors.ClipValue(res.X[j], -maxLogSigma, maxLogSigma)
	}
	g.cfg.logger.Debug("sigma refined",
		log.AlgorithmKey, g.cfg.minimizer.Name(),
		log.IterationKey, res.Iterations,
		log.LossKey, res.F,
		log.ConvergedKey, res.Converged,
	)
	return res.X, g.looError(res.X)
}

// looError is the leave-one-out mean squared error for log widths theta.
func (g *GRNN) looError(theta []float64) float64 {
	inv := make([]float64, len(theta))
	for j, t := range theta {
		s := math.Exp(errors.ClipValue(t, -maxLogSigma, maxLogSigma))
		inv[j] = 1 / (s * s)
	}

	n := len(g.targets)
	dist := make([]float64, n)
	var sse float64
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			dist[k] = sqDist(g.inputs[i], g.inputs[k], inv)
		}
		dist[i] = math.Inf(1)
		diff := kernelAverage(dist, g.targets) - g.targets[i]
		sse += diff * diff
	}
	return sse / float64(n)
}

// PredictOne returns the kernel-weighted average of the training targets.
func (g *GRNN) PredictOne(x []float64) (float64, error) {
	if !g.trained {
		return 0, errors.NewNotFittedError("GRNN", "PredictOne")
	}
	z, err := g.scaler.TransformVec(nil, x)
	if err != nil {
		return 0, err
	}

	inv := make([]float64, g.nin)
	for j, s := range g.sigma {
		inv[j] = 1 / (s * s)
	}
	dist := make([]float64, len(g.targets))
	for k, row := range g.inputs {
		dist[k] = sqDist(z, row, inv)
	}
	return kernelAverage(dist, g.targets), nil
}

// Sigma returns the fitted per-input widths in standardized units.
func (g *GRNN) Sigma() []float64 {
	return append([]float64(nil), g.sigma...)
}

// LOOError returns the leave-one-out mean squared error of the fitted widths.
func (g *GRNN) LOOError() float64 {
	return g.looMSE
}

func sqDist(a, b, inv []float64) float64 {
	var d float64
	for j := range a {
		diff := a[j] - b[j]
		d += diff * diff * inv[j]
	}
	return d
}

// kernelAverage returns Σ exp(-d_k) t_k / Σ exp(-d_k). Exponents are shifted
// by the smallest finite distance so the largest weight is exactly one.
func kernelAverage(dist, targets []float64) float64 {
	dmin := math.Inf(1)
	for _, d := range dist {
		if d < dmin {
			dmin = d
		}
	}
	if math.IsInf(dmin, 1) {
		return 0
	}
	var num, den float64
	for k, d := range dist {
		if math.IsInf(d, 1) {
			continue
		}
		w := math.Exp(dmin - d)
		num += w * targets[k]
		den += w
	}
	return num / den
}
