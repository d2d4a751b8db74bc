package bezier

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
)

// maxParamDepth limits the bisection depth when building a
// [Parameterization]. A table has at most 2^(maxParamDepth+1) segments.
const maxParamDepth = 18

// maxNewtonIter limits the refinement steps of
// [Parameterization.ArclenToParam].
const maxNewtonIter = 32

// SpeedSource describes a curve, as seen by the arc length parameterization:
// its speed at any parameter, and a bound on how quickly the speed can change.
type SpeedSource interface {
	// SpeedAt returns the magnitude of the first derivative at t ∈ [0, 1].
	// It must not be negative.
	SpeedAt(t float64) float64
	// AccelBound returns an upper bound on the magnitude of the second
	// derivative over [0, 1].
	AccelBound() float64
}

// SpeedFunc adapts a speed function and an acceleration bound to
// [SpeedSource].
type SpeedFunc struct {
	Speed    func(t float64) float64
	MaxAccel float64
}

// SpeedAt implements [SpeedSource].
func (f SpeedFunc) SpeedAt(t float64) float64 { return f.Speed(t) }

// AccelBound implements [SpeedSource].
func (f SpeedFunc) AccelBound() float64 { return f.MaxAccel }

// knot is a segment boundary of a parameterization.
type knot struct {
	t      float64
	speed  float64
	length float64 // arc length from 0 to t
}

// Parameterization is a precomputed, invertible mapping between the parameter
// of a curve and the arc length along it.
//
// The mapping consists of segments partitioning [0, 1]. Within a segment, the
// speed is modeled as varying linearly between the speeds at its ends, and the
// arc length is the integral of that model. Segment boundaries increase
// strictly in parameter and monotonically in arc length.
//
// A Parameterization is immutable and safe for concurrent use.
type Parameterization[S SpeedSource] struct {
	src      S
	maxError float64
	knots    []knot
}

// NewParameterization builds an arc length parameterization of src, such that
// the computed lengths are accurate to maxError.
//
// The parameter range is bisected until, for every interval of width h, the
// error bound of the trapezoid rule derived from src.AccelBound, as well as
// the observed difference between the trapezoid rule on the interval and on
// its two halves, are at most maxError·h. The bounds of all intervals thus sum
// to at most maxError. The depth of bisection is limited, which may limit the
// accuracy for curves with huge acceleration bounds.
//
// NewParameterization panics if maxError isn't a positive, finite number, or
// if src's acceleration bound is negative or NaN.
func NewParameterization[S SpeedSource](src S, maxError float64) *Parameterization[S] {
	if !(maxError > 0) || math.IsInf(maxError, 1) {
		panic(fmt.Sprintf("invalid maximum error %g", maxError))
	}
	accel := src.AccelBound()
	if !(accel >= 0) {
		panic(fmt.Sprintf("invalid acceleration bound %g", accel))
	}
	p := &Parameterization[S]{
		src:      src,
		maxError: maxError,
	}
	s0 := src.SpeedAt(0)
	s1 := src.SpeedAt(1)
	p.knots = append(p.knots, knot{t: 0, speed: s0})
	p.build(0, 1, s0, s1, accel, 0)
	return p
}

func (p *Parameterization[S]) build(a, b, sa, sb, accel float64, depth int) {
	h := b - a
	m := 0.5 * (a + b)
	sm := p.src.SpeedAt(m)

	whole := 0.5 * h * (sa + sb)
	halves := 0.25 * h * (sa + 2*sm + sb)
	bound := p.maxError * h
	if depth < maxParamDepth && (accel*h*h*h/12 > bound || math.Abs(whole-halves) > bound) {
		p.build(a, m, sa, sm, accel, depth+1)
		p.build(m, b, sm, sb, accel, depth+1)
		return
	}
	p.push(m, sm)
	p.push(b, sb)
}

// push appends a knot at t, accumulating the trapezoid estimate of the segment
// it ends.
func (p *Parameterization[S]) push(t, speed float64) {
	last := p.knots[len(p.knots)-1]
	l := last.length + 0.5*(t-last.t)*(last.speed+speed)
	p.knots = append(p.knots, knot{t: t, speed: speed, length: l})
}

// Source returns the speed source the parameterization was built from, such as
// a [Bezier].
func (p *Parameterization[S]) Source() S {
	return p.src
}

// MaxError returns the accuracy the parameterization was built for.
func (p *Parameterization[S]) MaxError() float64 {
	return p.maxError
}

// Len returns the number of segments.
func (p *Parameterization[S]) Len() int {
	return len(p.knots) - 1
}

// Total returns the total arc length of the curve.
func (p *Parameterization[S]) Total() float64 {
	return p.knots[len(p.knots)-1].length
}

// ParamToArclen returns the arc length from the start of the curve to t.
//
// It returns false if t is outside [0, 1]. Parameters aren't clamped.
func (p *Parameterization[S]) ParamToArclen(t float64) (float64, bool) {
	if !(t >= 0 && t <= 1) {
		return 0, false
	}
	i, ok := slices.BinarySearchFunc(p.knots, t, func(k knot, t float64) int {
		return cmp.Compare(k.t, t)
	})
	if ok {
		return p.knots[i].length, true
	}
	return p.lengthAt(i-1, t), true
}

// lengthAt returns the modeled arc length at t, which must lie in segment i.
func (p *Parameterization[S]) lengthAt(i int, t float64) float64 {
	k0, k1 := p.knots[i], p.knots[i+1]
	x := t - k0.t
	slope := (k1.speed - k0.speed) / (k1.t - k0.t)
	l := k0.length + x*(k0.speed+0.5*x*slope)
	return min(max(l, k0.length), k1.length)
}

// ArclenToParam returns the parameter at which the arc length from the start
// of the curve is s.
//
// It returns false if s is outside [0, p.Total()]. Lengths aren't clamped. An
// arc length of 0 always maps to 0, even for curves of zero length. Where the
// curve doesn't advance over a range of parameters, the smallest parameter is
// returned.
//
// The result inverts the tabulated length model, which
// [Parameterization.ParamToArclen] also uses, not the exact integral of the
// speed. The two round-trip to within rounding, while either may differ from
// the exact arc length by up to p.MaxError().
func (p *Parameterization[S]) ArclenToParam(s float64) (float64, bool) {
	if !(s >= 0 && s <= p.Total()) {
		return 0, false
	}
	if s == 0 {
		return 0, true
	}
	j, ok := slices.BinarySearchFunc(p.knots, s, func(k knot, s float64) int {
		return cmp.Compare(k.length, s)
	})
	if ok {
		return p.knots[j].t, true
	}
	// knots[0].length is 0 and s > 0, so j > 0.
	return p.solve(j-1, s), true
}

// solve finds the parameter in segment i at which the modeled arc length is s.
// The segment's lengths must bracket s.
func (p *Parameterization[S]) solve(i int, s float64) float64 {
	k0, k1 := p.knots[i], p.knots[i+1]
	w := k1.t - k0.t
	slope := (k1.speed - k0.speed) / w
	r := s - k0.length
	// f is the modeled length from the start of the segment, minus r.
	f := func(x float64) float64 {
		return x*(k0.speed+0.5*x*slope) - r
	}

	// The root of the quadratic model, in a form without cancellation. Newton's
	// method polishes it against rounding.
	x := 2 * r / (k0.speed + math.Sqrt(max(k0.speed*k0.speed+2*slope*r, 0)))
	lo, hi := 0.0, w
	eps := p.maxError * 1e-6
	for range maxNewtonIter {
		if !(x > lo && x < hi) {
			break
		}
		y := f(x)
		if math.Abs(y) <= eps {
			return k0.t + x
		}
		if y < 0 {
			lo = x
		} else {
			hi = x
		}
		dy := k0.speed + x*slope
		if !(dy > 0) {
			break
		}
		next := x - y/dy
		if next == x {
			return k0.t + x
		}
		x = next
	}

	// Newton left the bracket or stalled at zero speed.
	ylo, yhi := f(lo), f(hi)
	if ylo >= 0 {
		return k0.t + lo
	}
	if yhi <= 0 {
		return k0.t + hi
	}
	return k0.t + itp(f, lo, hi, ylo, yhi, w*0x1p-40)
}

// Divide returns n+1 parameters that divide the curve into n pieces of equal
// arc length. The first parameter is 0 and the last one is 1.
func (p *Parameterization[S]) Divide(n int) iter.Seq[float64] {
	n = max(n, 1)
	return func(yield func(float64) bool) {
		total := p.Total()
		for i := 0; i <= n; i++ {
			var t float64
			switch i {
			case 0:
				t = 0
			case n:
				t = 1
			default:
				t, _ = p.ArclenToParam(total * float64(i) / float64(n))
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Step returns the parameters at arc lengths 0, l, 2l, and so on, up to the
// total length of the curve. If l isn't positive, only 0 is produced.
func (p *Parameterization[S]) Step(l float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(0) || !(l > 0) {
			return
		}
		for i := 1; ; i++ {
			t, ok := p.ArclenToParam(float64(i) * l)
			if !ok || !yield(t) {
				return
			}
		}
	}
}
