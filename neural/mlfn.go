// Package neural provides a small multilayer feedforward network used as a
// base predictor in combination experiments.
package neural

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// MLFN is a one-hidden-layer network with tanh hidden units and a linear
// output, trained by L-BFGS on the mean squared error.
//
// Parameters are stored flat: hidden weights (h×nin, row-major), hidden
// biases (h), output weights (h), output bias.
type MLFN struct {
	state *model.StateManager
	cfg   config

	nin    int
	params []float64
	loss   float64
}

// NewMLFN returns an untrained network.
func NewMLFN(opts ...Option) *MLFN {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLoggerWithName("neural")
	}
	return &MLFN{
		state: model.NewStateManager("MLFN"),
		cfg:   cfg,
	}
}

// Fit trains the network on X (n×nin) and y (n×1).
func (m *MLFN) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "MLFN.Fit")

	if err := m.state.RequireUnfitted(); err != nil {
		return err
	}
	if err := m.cfg.validate(); err != nil {
		return err
	}
	n, nin := X.Dims()
	if n == 0 || nin == 0 {
		return errors.NewModelError("MLFN.Fit", "empty data", errors.ErrEmptyData)
	}
	ry, cy := y.Dims()
	if ry != n {
		return errors.NewDimensionError("MLFN.Fit", n, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("MLFN.Fit", "y must be a column vector")
	}
	m.nin = nin

	xs := mat.DenseCopyOf(X)
	ys := mat.Col(nil, 0, y)

	rng := rand.New(rand.NewPCG(m.cfg.seed, m.cfg.seed^0x9e3779b97f4a7c15))
	dist := distuv.Normal{Mu: 0, Sigma: m.cfg.initScale, Src: rng}
	x0 := make([]float64, m.numParams())
	for i := range x0 {
		x0[i] = dist.Rand()
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			return m.lossGrad(p, nil, xs, ys)
		},
		Grad: func(grad, p []float64) {
			m.lossGrad(p, grad, xs, ys)
		},
	}
	settings := &optimize.Settings{
		MajorIterations: m.cfg.maxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Relative:   1e-9,
			Iterations: 10,
		},
	}
	res, optErr := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if res == nil {
		return errors.Wrap(optErr, "MLFN.Fit")
	}
	if optErr != nil && res.Status != optimize.IterationLimit {
		m.cfg.logger.Debug("training stopped early", "status", res.Status.String(), log.LossKey, res.F)
	}
	if err := errors.CheckNumericalStability("MLFN.Fit", res.X, res.MajorIterations); err != nil {
		return err
	}

	m.params = append([]float64(nil), res.X...)
	m.loss = res.F
	m.cfg.logger.Debug("training complete",
		log.OperationKey, log.OperationTrain,
		log.SamplesKey, n,
		log.FeaturesKey, nin,
		log.RandomSeedKey, m.cfg.seed,
		log.IterationKey, res.MajorIterations,
		log.LossKey, res.F,
	)
	return m.state.MarkFitted(nin, n)
}

func (m *MLFN) numParams() int {
	h := m.cfg.hidden
	return h*m.nin + 2*h + 1
}

// split returns views of the flat parameter vector.
func (m *MLFN) split(p []float64) (w1, b1, w2 []float64, b2 float64) {
	h, nin := m.cfg.hidden, m.nin
	w1 = p[:h*nin]
	b1 = p[h*nin : h*nin+h]
	w2 = p[h*nin+h : h*nin+2*h]
	return w1, b1, w2, p[h*nin+2*h]
}

// forward fills act with the hidden activations and returns the output.
func (m *MLFN) forward(p, x, act []float64) float64 {
	w1, b1, w2, b2 := m.split(p)
	nin := m.nin
	for k := range act {
		act[k] = math.Tanh(b1[k] + floats.Dot(w1[k*nin:(k+1)*nin], x))
	}
	return b2 + floats.Dot(w2, act)
}

// lossGrad returns the mean squared error of p and, when grad is non-nil,
// writes its gradient.
func (m *MLFN) lossGrad(p, grad []float64, X *mat.Dense, y []float64) float64 {
	n := len(y)
	h, nin := m.cfg.hidden, m.nin
	act := make([]float64, h)
	if grad != nil {
		for i := range grad {
			grad[i] = 0
		}
	}
	_, _, w2, _ := m.split(p)

	var sse float64
	for i := 0; i < n; i++ {
		x := X.RawRowView(i)
		diff := m.forward(p, x, act) - y[i]
		sse += diff * diff
		if grad == nil {
			continue
		}
		gw1, gb1, gw2, _ := m.split(grad)
		e := 2 * diff / float64(n)
		for k := 0; k < h; k++ {
			gw2[k] += e * act[k]
			da := e * w2[k] * (1 - act[k]*act[k])
			gb1[k] += da
			floats.AddScaled(gw1[k*nin:(k+1)*nin], da, x)
		}
		grad[len(grad)-1] += e
	}
	return sse / float64(n)
}

// PredictOne implements model.Predictor.
func (m *MLFN) PredictOne(x []float64) (float64, error) {
	if err := m.state.RequireFitted("PredictOne"); err != nil {
		return 0, err
	}
	if err := m.state.RequireInputDim("MLFN.PredictOne", len(x)); err != nil {
		return 0, err
	}
	return m.forward(m.params, x, make([]float64, m.cfg.hidden)), nil
}

// Predict implements model.BatchPredictor.
func (m *MLFN) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := m.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}
	return model.PredictRows(m, X)
}

// TrainingLoss returns the final training mean squared error.
func (m *MLFN) TrainingLoss() float64 {
	return m.loss
}

var _ model.Regressor = (*MLFN)(nil)
