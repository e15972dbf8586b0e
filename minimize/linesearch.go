package minimize

import (
	"math"
)

const (
	goldenRatio      = 1.618034
	goldenSection    = 0.3819660
	parabolicLimit   = 100.0
	tiny             = 1e-20
	brentZeps        = 1e-10
	brentMaxIter     = 100
	maxBracketSteps  = 200
	lineSearchRelTol = 3.0e-8
)

// line restricts f to the ray p + t*d.
type line struct {
	f   func([]float64) float64
	p   []float64
	d   []float64
	buf []float64
}

func (l *line) at(t float64) float64 {
	for i := range l.p {
		l.buf[i] = l.p[i] + t*l.d[i]
	}
	return l.f(l.buf)
}

// bracket returns a < b < c (or c < b < a) with g(b) <= g(a), g(b) <= g(c),
// starting from the points a and b. The expansion stops after
// maxBracketSteps when g keeps decreasing.
func bracket(g func(float64) float64, a, b float64) (ax, bx, cx, fa, fb, fc float64) {
	fa, fb = g(a), g(b)
	if fb > fa {
		a, b = b, a
		fa, fb = fb, fa
	}
	c := b + goldenRatio*(b-a)
	fc = g(c)

	for step := 0; fb > fc && step < maxBracketSteps; step++ {
		r := (b - a) * (fb - fc)
		q := (b - c) * (fb - fa)
		denom := q - r
		if math.Abs(denom) < tiny {
			denom = math.Copysign(tiny, denom)
		}
		u := b - ((b-c)*q-(b-a)*r)/(2*denom)
		ulim := b + parabolicLimit*(c-b)

		var fu float64
		switch {
		case (b-u)*(u-c) > 0:
			fu = g(u)
			if fu < fc {
				return b, u, c, fb, fu, fc
			} else if fu > fb {
				return a, b, u, fa, fb, fu
			}
			u = c + goldenRatio*(c-b)
			fu = g(u)
		case (c-u)*(u-ulim) > 0:
			fu = g(u)
			if fu < fc {
				b, c = c, u
				fb, fc = fc, fu
				u = c + goldenRatio*(c-b)
				fu = g(u)
			}
		case (u-ulim)*(ulim-c) >= 0:
			u = ulim
			fu = g(u)
		default:
			u = c + goldenRatio*(c-b)
			fu = g(u)
		}
		a, b, c = b, c, u
		fa, fb, fc = fb, fc, fu
	}
	return a, b, c, fa, fb, fc
}

// brent locates a minimum of g inside the bracket (ax, bx, cx) to relative
// precision tol. fbx is g(bx).
func brent(g func(float64) float64, ax, bx, cx, fbx, tol float64) (xmin, fmin float64) {
	a, b := math.Min(ax, cx), math.Max(ax, cx)
	x, w, v := bx, bx, bx
	fx, fw, fv := fbx, fbx, fbx
	var d, e float64

	for iter := 0; iter < brentMaxIter; iter++ {
		xm := 0.5 * (a + b)
		tol1 := tol*math.Abs(x) + brentZeps
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return x, fx
		}

		if math.Abs(e) > tol1 {
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etemp := e
			e = d
			if math.Abs(p) >= math.Abs(0.5*q*etemp) || p <= q*(a-x) || p >= q*(b-x) {
				e = goldenStep(x, xm, a, b)
				d = goldenSection * e
			} else {
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
			}
		} else {
			e = goldenStep(x, xm, a, b)
			d = goldenSection * e
		}

		u := x + math.Copysign(math.Max(math.Abs(d), tol1), d)
		fu := g(u)

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
			continue
		}
		if u < x {
			a = u
		} else {
			b = u
		}
		if fu <= fw || w == x {
			v, w = w, u
			fv, fw = fw, fu
		} else if fu <= fv || v == x || v == w {
			v = u
			fv = fu
		}
	}
	return x, fx
}

func goldenStep(x, xm, a, b float64) float64 {
	if x >= xm {
		return a - x
	}
	return b - x
}

// lineMinimize moves p to the minimum of f along d and scales d to the
// actual displacement. It returns the objective value at the new p.
func lineMinimize(f func([]float64) float64, p, d []float64) float64 {
	l := &line{f: f, p: p, d: d, buf: make([]float64, len(p))}
	ax, bx, cx, _, fb, _ := bracket(l.at, 0, 1)
	xmin, fmin := brent(l.at, ax, bx, cx, fb, lineSearchRelTol)
	for i := range d {
		d[i] *= xmin
		p[i] += d[i]
	}
	return fmin
}
