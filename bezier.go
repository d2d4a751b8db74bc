package bezier

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

var (
	// ErrControlPoints is returned when constructing a curve from a number of
	// control points that doesn't correspond to a supported degree.
	ErrControlPoints = errors.New("wrong number of control points")
	// ErrDegree is returned by [Bezier.Raise] for curves that are already
	// cubic.
	ErrDegree = errors.New("degree cannot be raised")
)

var _ SpeedSource = Bezier[vec2.T]{}
var _ SpeedSource = Bezier[vec3.T]{}

// Bezier is a quadratic or cubic Bézier curve with control points of type V.
//
// Bezier values are immutable; methods that transform a curve return a new
// one. Two curves are equal (==) if they have the same control points.
//
// The zero value is not a valid curve. Use [NewBezier], [Quad], [Cubic], or
// [CubicFromTangents] to construct curves.
type Bezier[V Vector] struct {
	p [4]V
	// number of control points in p, either 3 or 4
	n int
}

// NewBezier returns the Bézier curve with the given control points. Three
// points describe a quadratic curve, four points a cubic one. Any other number
// of points results in an error wrapping [ErrControlPoints].
func NewBezier[V Vector](pts ...V) (Bezier[V], error) {
	if len(pts) != 3 && len(pts) != 4 {
		return Bezier[V]{}, fmt.Errorf("%w: got %d, want 3 or 4", ErrControlPoints, len(pts))
	}
	var b Bezier[V]
	b.n = copy(b.p[:], pts)
	return b, nil
}

// Quad returns the quadratic Bézier curve with control points p0, p1, and p2.
func Quad[V Vector](p0, p1, p2 V) Bezier[V] {
	return Bezier[V]{p: [4]V{p0, p1, p2}, n: 3}
}

// Cubic returns the cubic Bézier curve with control points p0, p1, p2, and p3.
func Cubic[V Vector](p0, p1, p2, p3 V) Bezier[V] {
	return Bezier[V]{p: [4]V{p0, p1, p2, p3}, n: 4}
}

// CubicFromTangents returns the cubic Bézier curve that starts at p0 with
// derivative d0 and ends at p1 with derivative d1.
//
// This is the Bézier form of a cubic Hermite segment.
func CubicFromTangents[V Vector](p0, d0, p1, d1 V) Bezier[V] {
	return Cubic(
		p0,
		add(p0, scale(d0, 1.0/3.0)),
		sub(p1, scale(d1, 1.0/3.0)),
		p1,
	)
}

// Raise raises the degree of a quadratic curve by one.
//
// It returns a cubic Bézier curve that exactly represents the quadratic. Cubic
// curves cannot be raised further and result in [ErrDegree].
func (b Bezier[V]) Raise() (Bezier[V], error) {
	if b.n != 3 {
		return Bezier[V]{}, fmt.Errorf("%w: curve has degree %d", ErrDegree, b.Degree())
	}
	p0, p1, p2 := b.p[0], b.p[1], b.p[2]
	return Cubic(
		p0,
		add(p0, scale(sub(p1, p0), 2.0/3.0)),
		add(p2, scale(sub(p1, p2), 2.0/3.0)),
		p2,
	), nil
}

// Degree returns the degree of the curve, 2 for quadratic and 3 for cubic
// curves.
func (b Bezier[V]) Degree() int {
	return b.n - 1
}

// ControlPoints returns a copy of the curve's control points.
func (b Bezier[V]) ControlPoints() []V {
	return slices.Clone(b.p[:b.n])
}

// ControlPoint returns the i-th control point. It panics if i is out of range.
func (b Bezier[V]) ControlPoint(i int) V {
	return b.p[:b.n][i]
}

// Start returns the first control point, where the curve starts.
func (b Bezier[V]) Start() V {
	return b.p[0]
}

// End returns the last control point, where the curve ends.
func (b Bezier[V]) End() V {
	return b.p[b.n-1]
}

// Reverse returns the curve traversed in the opposite direction.
func (b Bezier[V]) Reverse() Bezier[V] {
	out := b
	for i := range b.n {
		out.p[i] = b.p[b.n-1-i]
	}
	return out
}

// IsInf reports whether any coordinate of any control point is infinite.
func (b Bezier[V]) IsInf() bool {
	for _, p := range b.p[:b.n] {
		if isInf(p) {
			return true
		}
	}
	return false
}

// IsNaN reports whether any coordinate of any control point is NaN.
func (b Bezier[V]) IsNaN() bool {
	for _, p := range b.p[:b.n] {
		if isNaN(p) {
			return true
		}
	}
	return false
}

// String formats the curve as its degree followed by its control points, such
// as "Quad((0, 0), (1, 2), (3, 4))".
func (b Bezier[V]) String() string {
	sb := &strings.Builder{}
	switch b.n {
	case 3:
		sb.WriteString("Quad(")
	case 4:
		sb.WriteString("Cubic(")
	default:
		sb.WriteString("Bezier(")
	}
	for i, p := range b.p[:b.n] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j := 0; j < len(p); j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%g", p[j])
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

// Eval evaluates the curve at parameter t, using de Casteljau's algorithm.
//
// Generally, t is in the range [0, 1]. Values outside that range extrapolate
// the curve's polynomial. Eval(0) and Eval(1) return the first and last
// control points exactly.
func (b Bezier[V]) Eval(t float64) V {
	q := b.p
	for k := b.n - 1; k > 0; k-- {
		for i := range k {
			q[i] = lerp(q[i], q[i+1], t)
		}
	}
	return q[0]
}

// Sample evaluates the curve and its first derivative at t.
//
// Both values come from the same de Casteljau triangle: the derivative is the
// scaled difference of the two points of the second to last row.
func (b Bezier[V]) Sample(t float64) (V, V) {
	q := b.p
	deg := b.Degree()
	var d V
	for k := deg; k > 0; k-- {
		if k == 1 {
			d = scale(sub(q[1], q[0]), float64(deg))
		}
		for i := range k {
			q[i] = lerp(q[i], q[i+1], t)
		}
	}
	return q[0], d
}

// diffs returns the differences between consecutive control points. Only the
// first Degree() elements are meaningful.
func (b Bezier[V]) diffs() [3]V {
	var d [3]V
	for i := range b.n - 1 {
		d[i] = sub(b.p[i+1], b.p[i])
	}
	return d
}

// Deriv evaluates the first derivative of the curve at t.
//
// The derivative is computed by running de Casteljau's algorithm on the
// differences of the control points, which avoids computing the position.
func (b Bezier[V]) Deriv(t float64) V {
	d := b.diffs()
	deg := b.Degree()
	for k := deg - 1; k > 0; k-- {
		for i := range k {
			d[i] = lerp(d[i], d[i+1], t)
		}
	}
	return scale(d[0], float64(deg))
}

// Speed returns the magnitude of the first derivative at t.
//
// It computes the same value as the length of [Bezier.Deriv], one coordinate
// at a time, without constructing intermediate vectors.
func (b Bezier[V]) Speed(t float64) float64 {
	deg := b.Degree()
	var sum float64
	for c := 0; c < len(b.p[0]); c++ {
		var d [3]float64
		for i := range deg {
			d[i] = b.p[i+1][c] - b.p[i][c]
		}
		for k := deg - 1; k > 0; k-- {
			for i := range k {
				d[i] = lerpf(d[i], d[i+1], t)
			}
		}
		sum += d[0] * d[0]
	}
	return float64(deg) * math.Sqrt(sum)
}

// Deriv2 evaluates the second derivative of the curve at t.
//
// The second derivative of a quadratic curve is constant. For cubic curves it
// is a linear interpolation between the two second differences of the control
// points.
func (b Bezier[V]) Deriv2(t float64) V {
	deg := b.Degree()
	if deg < 2 {
		var zero V
		return zero
	}
	d := b.diffs()
	dd0 := sub(d[1], d[0])
	f := float64(deg * (deg - 1))
	if deg == 2 {
		return scale(dd0, f)
	}
	dd1 := sub(d[2], d[1])
	return scale(lerp(dd0, dd1, t), f)
}

// Deriv2Bound returns an upper bound on the magnitude of the second derivative
// over the whole curve.
//
// Because the second derivative of a cubic curve linearly interpolates
// between two vectors, and the norm is convex, its magnitude never exceeds
// that of the larger one. For quadratic curves, the bound is exact.
func (b Bezier[V]) Deriv2Bound() float64 {
	deg := b.Degree()
	if deg < 2 {
		return 0
	}
	d := b.diffs()
	var m float64
	for i := range deg - 1 {
		m = max(m, hypot(sub(d[i+1], d[i])))
	}
	return float64(deg*(deg-1)) * m
}

// SpeedAt implements [SpeedSource].
func (b Bezier[V]) SpeedAt(t float64) float64 {
	return b.Speed(t)
}

// AccelBound implements [SpeedSource].
func (b Bezier[V]) AccelBound() float64 {
	return b.Deriv2Bound()
}

// Parameterize builds an arc length parameterization of the curve, accurate
// to maxError. See [NewParameterization].
func (b Bezier[V]) Parameterize(maxError float64) *Parameterization[Bezier[V]] {
	return NewParameterization(b, maxError)
}

// EvalSeq evaluates the curve at each parameter in ts.
func (b Bezier[V]) EvalSeq(ts iter.Seq[float64]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for t := range ts {
			if !yield(b.Eval(t)) {
				return
			}
		}
	}
}

// DerivSeq evaluates the first derivative at each parameter in ts.
func (b Bezier[V]) DerivSeq(ts iter.Seq[float64]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for t := range ts {
			if !yield(b.Deriv(t)) {
				return
			}
		}
	}
}

// SampleSeq evaluates the curve and its first derivative at each parameter in
// ts.
func (b Bezier[V]) SampleSeq(ts iter.Seq[float64]) iter.Seq2[V, V] {
	return func(yield func(V, V) bool) {
		for t := range ts {
			if !yield(b.Sample(t)) {
				return
			}
		}
	}
}

// SpeedSeq computes the speed at each parameter in ts.
func (b Bezier[V]) SpeedSeq(ts iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for t := range ts {
			if !yield(b.Speed(t)) {
				return
			}
		}
	}
}
