package bezier

import (
	"iter"
)

// Split splits the curve at t into two curves of the same degree, using de
// Casteljau's algorithm.
//
// The first curve covers the parameter range [0, t] of the original curve, the
// second one [t, 1]. The end point of the first curve and the start point of
// the second curve are the same value, b.Eval(t).
//
// The result is only meaningful for t ∈ [0, 1], but any t produces two curves
// that join at b.Eval(t).
func (b Bezier[V]) Split(t float64) (Bezier[V], Bezier[V]) {
	// Each row of the de Casteljau triangle contributes its first point to the
	// left curve and its last point to the right curve.
	n := b.n
	q := b.p
	left := Bezier[V]{n: n}
	right := Bezier[V]{n: n}
	left.p[0] = q[0]
	right.p[n-1] = q[n-1]
	for k := 1; k < n; k++ {
		for i := range n - k {
			q[i] = lerp(q[i], q[i+1], t)
		}
		left.p[k] = q[0]
		right.p[n-1-k] = q[n-1-k]
	}
	return left, right
}

// Subdivide splits the curve into halves, using de Casteljau.
func (b Bezier[V]) Subdivide() (Bezier[V], Bezier[V]) {
	return b.Split(0.5)
}

// Subsegment returns the part of the curve between t0 and t1.
//
// The control points are computed as blossoms of the curve, which is exact
// for any t0 and t1, including t0 > t1, in which case the subsegment runs
// backwards.
func (b Bezier[V]) Subsegment(t0, t1 float64) Bezier[V] {
	out := Bezier[V]{n: b.n}
	deg := b.Degree()
	for i := range b.n {
		out.p[i] = b.blossom(t0, t1, deg-i)
	}
	return out
}

// blossom evaluates the curve's blossom with n0 arguments equal to t0 and the
// remaining ones equal to t1.
func (b Bezier[V]) blossom(t0, t1 float64, n0 int) V {
	q := b.p
	deg := b.Degree()
	for k := deg; k > 0; k-- {
		t := t1
		if deg-k < n0 {
			t = t0
		}
		for i := range k {
			q[i] = lerp(q[i], q[i+1], t)
		}
	}
	return q[0]
}

// SplitN splits the curve underlying a parameterization into n curves of
// identical arc length, up to the parameterization's accuracy.
//
// Consecutive curves share their end and start points.
func SplitN[V Vector](p *Parameterization[Bezier[V]], n int) iter.Seq[Bezier[V]] {
	b := p.Source()
	return func(yield func(Bezier[V]) bool) {
		first := true
		var prev float64
		for t := range p.Divide(n) {
			if first {
				first = false
				prev = t
				continue
			}
			if !yield(b.Subsegment(prev, t)) {
				return
			}
			prev = t
		}
	}
}

// SplitArclen splits the curve underlying a parameterization into segments of
// arc length l. The last segment holds the remainder and may be shorter.
func SplitArclen[V Vector](p *Parameterization[Bezier[V]], l float64) iter.Seq[Bezier[V]] {
	b := p.Source()
	return func(yield func(Bezier[V]) bool) {
		first := true
		var prev float64
		for t := range p.Step(l) {
			if first {
				first = false
				prev = t
				continue
			}
			if !yield(b.Subsegment(prev, t)) {
				return
			}
			prev = t
		}
		if !first && prev < 1 {
			yield(b.Subsegment(prev, 1))
		}
	}
}
