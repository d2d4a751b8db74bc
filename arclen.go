package bezier

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// maxArclenDepth limits the subdivision of [Bezier.Arclen].
const maxArclenDepth = 20

// Arclen returns the arc length of the curve.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature of
// the curve's speed. Intervals are bisected until the 8-point and 16-point
// rules agree to within the interval's share of the accuracy.
//
// Arclen computes the length directly. To compute many lengths along the same
// curve, or to solve for parameters given lengths, build a [Parameterization]
// instead.
func (b Bezier[V]) Arclen(accuracy float64) float64 {
	return b.arclen(0, 1, accuracy, 0)
}

func (b Bezier[V]) arclen(t0, t1, accuracy float64, depth int) float64 {
	est8 := b.gaussLegendre(legendre8, t0, t1)
	est16 := b.gaussLegendre(legendre16, t0, t1)
	if math.Abs(est16-est8) < accuracy || depth >= maxArclenDepth {
		return est16
	}
	tm := 0.5 * (t0 + t1)
	return b.arclen(t0, tm, accuracy*0.5, depth+1) + b.arclen(tm, t1, accuracy*0.5, depth+1)
}

// gaussLegendre integrates the speed over [t0, t1] using a Legendre-Gauss rule.
func (b Bezier[V]) gaussLegendre(r *legendreRule, t0, t1 float64) float64 {
	half := 0.5 * (t1 - t0)
	mid := 0.5 * (t0 + t1)
	var sum float64
	for i, x := range r.x {
		sum += r.w[i] * b.Speed(mid+half*x)
	}
	return sum * half
}

// SolveForArclen solves for the parameter that has the given arc length from
// the start of the curve.
//
// Lengths outside the curve are clamped, returning 0 or 1. The result is
// accurate to the given accuracy in arc length. SolveForArclen panics if
// accuracy isn't a positive, finite number.
//
// SolveForArclen builds a [Parameterization] with the given accuracy for each
// call. For repeated queries on the same curve, build it once with
// [Bezier.Parameterize] and use [Parameterization.ArclenToParam].
func (b Bezier[V]) SolveForArclen(arclen float64, accuracy float64) float64 {
	if !(arclen > 0) {
		return 0
	}
	p := b.Parameterize(accuracy)
	if arclen >= p.Total() {
		return 1
	}
	t, _ := p.ArclenToParam(arclen)
	return t
}

// legendreRule holds the nodes and weights of a Legendre-Gauss quadrature rule
// on [-1, 1].
type legendreRule struct {
	x, w []float64
}

func newLegendreRule(n int) *legendreRule {
	r := &legendreRule{
		x: make([]float64, n),
		w: make([]float64, n),
	}
	quad.Legendre{}.FixedLocations(r.x, r.w, -1, 1)
	return r
}

var (
	legendre8  = newLegendreRule(8)
	legendre16 = newLegendreRule(16)
)
