package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/integrate/quad"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear[V Vector](t *testing.T, want, got V, epsilon float64) {
	t.Helper()
	if d := hypot(sub(want, got)); d > epsilon {
		t.Errorf("got %v, want %v (distance %g > %g)", got, want, d, epsilon)
	}
}

// referenceArclen integrates speed over [t0, t1] with fixed-order
// Legendre-Gauss quadrature on many pieces, independently of this package's
// integration code.
func referenceArclen(speed func(float64) float64, t0, t1 float64) float64 {
	const pieces = 256
	var sum float64
	for i := range pieces {
		a := t0 + (t1-t0)*float64(i)/pieces
		b := t0 + (t1-t0)*float64(i+1)/pieces
		sum += quad.Fixed(speed, a, b, 16, nil, 0)
	}
	return sum
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
