package bezier

import (
	"math"
	"slices"
	"testing"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestBezierSubdivideExample(t *testing.T) {
	c := Cubic(vec3.T{1, 1, 1}, vec3.T{3, 1, 1}, vec3.T{3, 3, 1}, vec3.T{3, 3, 3})
	left, right := c.Subdivide()
	diff(t, []vec3.T{{1, 1, 1}, {2, 1, 1}, {2.5, 1.5, 1}, {2.75, 2, 1.25}}, left.ControlPoints())
	diff(t, []vec3.T{{2.75, 2, 1.25}, {3, 2.5, 1.5}, {3, 3, 2}, {3, 3, 3}}, right.ControlPoints())

	l, r := c.Split(0.5)
	if l != left || r != right {
		t.Errorf("Subdivide and Split(0.5) disagree")
	}
}

func TestBezierSplit(t *testing.T) {
	check := func(c Bezier[vec3.T]) {
		t.Helper()
		for _, ts := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			left, right := c.Split(ts)
			if left.Degree() != c.Degree() || right.Degree() != c.Degree() {
				t.Fatalf("%v: split changed degree", c)
			}
			pt := c.Eval(ts)
			if left.End() != pt || right.Start() != pt {
				t.Errorf("%v: halves split at %g don't meet at %v: %v and %v", c, ts, pt, left.End(), right.Start())
			}
			if left.Start() != c.Start() || right.End() != c.End() {
				t.Errorf("%v: halves split at %g don't keep the end points", c, ts)
			}
			for i := range 11 {
				u := float64(i) / 10
				assertNear(t, c.Eval(ts*u), left.Eval(u), 1e-12)
				assertNear(t, c.Eval(ts+(1-ts)*u), right.Eval(u), 1e-12)
			}
		}
	}
	for _, c := range testCurves3() {
		check(c)
	}
}

func TestBezierSplitArclen(t *testing.T) {
	for _, c := range testCurves2() {
		want := c.Arclen(1e-10)
		for _, ts := range []float64{0.2, 0.5, 0.75} {
			left, right := c.Split(ts)
			got := left.Arclen(1e-10) + right.Arclen(1e-10)
			if math.Abs(got-want) > 1e-8 {
				t.Errorf("%v: halves split at %g have length %g, want %g", c, ts, got, want)
			}
		}
	}
}

func TestBezierSubsegment(t *testing.T) {
	q := Quad(vec2.T{3.1, 4.1}, vec2.T{5.9, 2.6}, vec2.T{5.3, 5.8})
	c := Cubic(vec2.T{20, 40}, vec2.T{40, 80}, vec2.T{-40, 40}, vec2.T{42, 62})
	for _, b := range []Bezier[vec2.T]{q, c} {
		for _, r := range [][2]float64{{0.1, 0.8}, {0, 1}, {0.5, 0.25}, {0.3, 0.3}} {
			t0, t1 := r[0], r[1]
			s := b.Subsegment(t0, t1)
			if s.Start() != b.Eval(t0) || s.End() != b.Eval(t1) {
				t.Errorf("%v: subsegment [%g, %g] has wrong end points", b, t0, t1)
			}
			const n = 10
			for i := range n + 1 {
				tt := float64(i) / float64(n)
				ts := t0 + tt*(t1-t0)
				assertNear(t, b.Eval(ts), s.Eval(tt), 1e-11)
			}
		}
		diff(t, b.ControlPoints(), b.Subsegment(0, 1).ControlPoints())
	}
}

func TestSplitN(t *testing.T) {
	for _, c := range testCurves3() {
		p := c.Parameterize(1e-7)
		pieces := slices.Collect(SplitN(p, 5))
		if len(pieces) != 5 {
			t.Fatalf("%v: got %d pieces, want 5", c, len(pieces))
		}
		diff(t, c.Start(), pieces[0].Start())
		diff(t, c.End(), pieces[4].End())
		want := p.Total() / 5
		for i, piece := range pieces {
			if i > 0 && pieces[i-1].End() != piece.Start() {
				t.Errorf("%v: piece %d doesn't start where piece %d ends", c, i, i-1)
			}
			if got := piece.Arclen(1e-10); math.Abs(got-want) > 1e-6 {
				t.Errorf("%v: piece %d has length %g, want %g", c, i, got, want)
			}
		}
	}
}

func TestSplitArclen(t *testing.T) {
	c := Cubic(vec2.T{0, -10}, vec2.T{10, 20}, vec2.T{20, -20}, vec2.T{30, 10})
	p := c.Parameterize(1e-7)
	l := p.Total() / 3.5
	pieces := slices.Collect(SplitArclen(p, l))
	if len(pieces) != 4 {
		t.Fatalf("got %d pieces, want 4", len(pieces))
	}
	for i, piece := range pieces[:3] {
		if got := piece.Arclen(1e-10); math.Abs(got-l) > 1e-6 {
			t.Errorf("piece %d has length %g, want %g", i, got, l)
		}
	}
	if got, want := pieces[3].Arclen(1e-10), l/2; math.Abs(got-want) > 1e-6 {
		t.Errorf("last piece has length %g, want %g", got, want)
	}
	diff(t, c.End(), pieces[3].End())
}
