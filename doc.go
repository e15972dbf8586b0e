// Package combine provides multiple-predictor combination for Go: given
// several already trained models that each map an input vector to a scalar,
// it learns a rule that merges their outputs into one better prediction.
//
// The library follows the scigo conventions: gonum matrices, functional
// options, typed errors from pkg/errors and structured logging from pkg/log.
//
// # Features
//
//   - Seven combiners behind one contract: Average, Unconstrained, Unbiased,
//     Biased, Weighted, Bagged and GenReg
//   - Derivative-free optimizers (Powell direction set, Nelder-Mead) for the
//     constrained weight fits
//   - A general regression neural network as the GenReg engine
//   - Bootstrap utilities for bagging and bias/variance estimation
//   - Fit diagnostics with convergence warnings instead of hard failures
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/scigo-combine/core/model"
//	    "github.com/YuminosukeSato/scigo-combine/ensemble"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    preds := model.PredictorSet{netA, netB, netC} // any model.Predictor
//
//	    c, err := ensemble.FitCombiner(ensemble.KindUnbiased, X, y, preds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    v, err := c.PredictOne([]float64{0.5, -1.2})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Combined prediction:", v)
//	}
//
// # Packages
//
//   - ensemble: the combiners, design matrix and bootstrap predictor sets
//   - minimize: Powell and Nelder-Mead minimizers behind one interface
//   - linear: SVD least squares and a LinearRegression base model
//   - grnn: general regression neural network with automatic sigma
//   - neural: small feedforward network used as a base model
//   - bootstrap: resampling, bias and variance estimation
//   - interp: bilinear and quadratic interpolation on a 2-D table
//   - metrics: MSE, RMSE, MAE, R²
//   - preprocessing: StandardScaler
//   - experiment: the synthetic comparison behind examples/multpred
//   - core/model: Predictor interfaces, predictor sets, fitted state
//   - core/parallel: parallel loops
//
// # Lifecycle
//
// A combiner is built over a fixed predictor set, fitted exactly once and
// immutable afterwards. Calling Fit again returns errors.ErrAlreadyFitted;
// predicting before Fit returns an *errors.NotFittedError.
//
// # License
//
// Released under the MIT License.
package combine
