package minimize

import (
	"math"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// Powell is a direction-set minimizer. Each iteration line-minimizes along
// every direction in the set, then may replace the direction of largest
// decrease with the average displacement of the sweep.
type Powell struct{}

// NewPowell returns a Powell minimizer.
func NewPowell() *Powell {
	return &Powell{}
}

// Name implements Minimizer.
func (*Powell) Name() string { return "powell" }

// Minimize implements Minimizer.
func (*Powell) Minimize(f Func, x0 []float64, s Settings) (res *Result, err error) {
	defer errors.Recover(&err, "Powell.Minimize")
	if err := checkStart("Powell.Minimize", f, x0, s); err != nil {
		return nil, err
	}

	n := len(x0)
	cf := &counted{f: f}

	p := append([]float64(nil), x0...)
	pt := append([]float64(nil), x0...)
	ptt := make([]float64, n)
	xit := make([]float64, n)
	dirs := make([][]float64, n)
	for i := range dirs {
		dirs[i] = make([]float64, n)
		dirs[i][i] = 1
	}

	fret := cf.eval(p)
	res = &Result{X: p}
	if fret < s.CritLimit {
		res.F, res.Evaluations, res.Converged = fret, cf.evals, true
		return res, nil
	}

	for iter := 1; ; iter++ {
		fp := fret
		ibig := 0
		del := 0.0
		for i := 0; i < n; i++ {
			copy(xit, dirs[i])
			fptt := fret
			fret = lineMinimize(cf.eval, p, xit)
			copy(dirs[i], xit)
			if fptt-fret > del {
				del = fptt - fret
				ibig = i
			}
		}

		res.Iterations = iter
		if 2*(fp-fret) <= s.Tolerance*(math.Abs(fp)+math.Abs(fret))+tiny || fret < s.CritLimit {
			res.Converged = true
			break
		}
		if iter >= s.MaxIterations {
			break
		}

		for j := 0; j < n; j++ {
			ptt[j] = 2*p[j] - pt[j]
			xit[j] = p[j] - pt[j]
			pt[j] = p[j]
		}
		fptt := cf.eval(ptt)
		if fptt < fp {
			t := 2*(fp-2*fret+fptt)*sq(fp-fret-del) - del*sq(fp-fptt)
			if t < 0 {
				fret = lineMinimize(cf.eval, p, xit)
				copy(dirs[ibig], dirs[n-1])
				copy(dirs[n-1], xit)
			}
		}
	}

	res.F = fret
	res.Evaluations = cf.evals
	if err := errors.CheckScalar("Powell.Minimize", res.F, res.Iterations); err != nil {
		return res, err
	}
	return res, nil
}

func sq(x float64) float64 { return x * x }
