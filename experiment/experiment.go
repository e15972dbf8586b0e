package experiment

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/core/parallel"
	"github.com/YuminosukeSato/scigo-combine/ensemble"
	"github.com/YuminosukeSato/scigo-combine/metrics"
	"github.com/YuminosukeSato/scigo-combine/neural"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

const (
	testMultiplier = 10
	// Zero-based positions of the deliberately flawed base models.
	worthlessModel = 3
	biasedModel    = 4
)

// Runner executes the tries of one experiment.
type Runner struct {
	cfg    Config
	logger log.Logger
	rng    *rand.Rand
	normal distuv.Normal
}

// NewRunner validates cfg and returns a Runner logging to logger, or to the
// "experiment" logger when logger is nil.
func NewRunner(cfg Config, logger log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.GetLoggerWithName("experiment")
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1))
	return &Runner{
		cfg:    cfg,
		logger: logger,
		rng:    rng,
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: rng},
	}, nil
}

// tryResult holds the test MSEs of one try.
type tryResult struct {
	raw     []float64 // per base model
	methods []float64 // per ensemble.Kinds() entry
}

// Run performs every try and returns the accumulated report. It stops early
// when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	kinds := ensemble.Kinds()
	report := newReport(r.cfg.Models, kinds)

	for try := 1; try <= r.cfg.Tries; try++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		start := time.Now()
		res, err := r.runTry(ctx, kinds)
		if err != nil {
			return report, errors.Wrapf(err, "try %d", try)
		}
		report.add(res)

		r.logger.Info("try complete",
			"try", try,
			log.DurationMsKey, time.Since(start).Milliseconds(),
			"mean_raw_error", report.MeanRawError(),
		)
	}
	return report, nil
}

func (r *Runner) runTry(ctx context.Context, kinds []ensemble.Kind) (tryResult, error) {
	std := math.Sqrt(r.cfg.Variance)
	train := generate(r.cfg.Samples, std, r.normal)
	test := generate(testMultiplier*r.cfg.Samples, std, r.normal)

	pure, err := r.trainPure(ctx, train)
	if err != nil {
		return tryResult{}, err
	}
	bagged, err := ensemble.TrainBootstrapSet(train.X, train.Y, r.cfg.Models, r.trainer(), r.rng)
	if err != nil {
		return tryResult{}, err
	}

	res := tryResult{
		raw:     make([]float64, len(pure)),
		methods: make([]float64, len(kinds)),
	}
	for i, p := range pure {
		if res.raw[i], err = testError(p, test); err != nil {
			return tryResult{}, errors.Wrapf(err, "model %d", i)
		}
	}

	opts := []ensemble.Option{
		ensemble.WithMaxIterations(r.cfg.CombinerIterations),
		ensemble.WithLogger(r.logger),
	}
	err = parallel.ForEach(ctx, len(kinds), func(ctx context.Context, i int) error {
		preds := pure
		if kinds[i] == ensemble.KindBagged {
			preds = bagged
		}
		c, err := ensemble.FitCombiner(kinds[i], train.X, train.Y, preds, opts...)
		if err != nil {
			return err
		}
		if exp, ok := c.(model.WeightExporter); ok {
			if w, err := exp.ExportWeights(); err == nil {
				r.logger.Debug("combiner weights",
					log.ModelNameKey, w.ModelType,
					log.WeightsKey, w.Coefficients,
					"intercept", w.Intercept,
				)
			}
		}
		res.methods[i], err = testError(c, test)
		return err
	})
	if err != nil {
		return tryResult{}, err
	}
	return res, nil
}

// trainPure trains the base networks concurrently. Seeds are drawn up front
// so the result does not depend on scheduling.
func (r *Runner) trainPure(ctx context.Context, train Dataset) (model.PredictorSet, error) {
	sets := make([]Dataset, r.cfg.Models)
	seeds := make([]uint64, r.cfg.Models)
	for i := range sets {
		switch i {
		case worthlessModel:
			sets[i] = train.withTarget(func(int, float64) float64 { return r.normal.Rand() })
		case biasedModel:
			sets[i] = train.withTarget(func(_ int, y float64) float64 { return y + 1 })
		default:
			sets[i] = train
		}
		seeds[i] = r.rng.Uint64()
	}

	pure := make(model.PredictorSet, r.cfg.Models)
	err := parallel.ForEach(ctx, len(sets), func(_ context.Context, i int) error {
		net := r.network(seeds[i])
		if err := net.Fit(sets[i].X, sets[i].Y); err != nil {
			return errors.Wrapf(err, "model %d", i)
		}
		pure[i] = net
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pure, nil
}

func (r *Runner) network(seed uint64) *neural.MLFN {
	return neural.NewMLFN(
		neural.WithHidden(r.cfg.Hidden),
		neural.WithMaxIterations(r.cfg.TrainIterations),
		neural.WithSeed(seed),
		neural.WithLogger(r.logger),
	)
}

// trainer fits bagged networks. It runs on the caller's goroutine, so
// drawing seeds from r.rng is safe.
func (r *Runner) trainer() ensemble.Trainer {
	return func(X, y mat.Matrix) (model.Predictor, error) {
		net := r.network(r.rng.Uint64())
		if err := net.Fit(X, y); err != nil {
			return nil, err
		}
		return net, nil
	}
}

// testError returns the MSE of p on d.
func testError(p model.Predictor, d Dataset) (float64, error) {
	pred, err := model.PredictRows(p, d.X)
	if err != nil {
		return 0, err
	}
	return metrics.MSEMatrix(d.Y, pred)
}
