package bezier

import (
	"math"
)

// itpK1 is the truncation constant of the ITP method, relative to the width
// of the initial bracket.
const itpK1 = 0.2

// itp finds a zero crossing of f in [a, b] to within epsilon, using the ITP
// method (interpolate, truncate, project). It requires ya = f(a) < 0 and
// yb = f(b) > 0.
//
// ITP needs at most one more evaluation of f than bisection, but converges
// superlinearly on well-behaved functions such as the length model of a
// parameterization segment.
//
// See Oliveira and Takahashi, "An Enhancement of the Bisection Method Average
// Performance Preserving Minmax Optimality", ACM TOMS 47(1), 2020.
func itp(f func(float64) float64, a, b, ya, yb, epsilon float64) float64 {
	k1 := itpK1 / (b - a)
	nmax := max(math.Ceil(math.Log2((b-a)/(2*epsilon))), 0) + 1
	radius := epsilon * math.Exp2(nmax)
	for b-a > 2*epsilon {
		mid := 0.5 * (a + b)
		if mid == a || mid == b {
			break
		}
		r := radius - 0.5*(b-a)

		// Interpolate: regula falsi.
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		// Truncate: move towards the midpoint by k1·(b−a)².
		delta := k1 * (b - a) * (b - a)
		xt := mid
		if delta <= math.Abs(sigma) {
			xt = xf + math.Copysign(delta, sigma)
		}
		// Project onto the minmax interval around the midpoint.
		x := xt
		if math.Abs(xt-mid) > r {
			x = mid - math.Copysign(r, sigma)
		}

		switch y := f(x); {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		radius *= 0.5
	}
	return 0.5 * (a + b)
}
