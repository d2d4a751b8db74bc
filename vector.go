package bezier

import (
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Vector is the set of coordinate types curves can be built from. Points and
// vectors share a representation; whether a value is a position or a
// direction depends on the operation that produced it.
type Vector interface {
	vec2.T | vec3.T
}

// Arithmetic is delegated to go3d by switching on the concrete type. Helpers
// that go3d has no counterpart for only use indexing and len, which are valid
// for every type in Vector's type set. Their indices are never constant, as a
// constant index of 2 would be out of range for vec2.T.

// lerp linearly interpolates between a and b.
func lerp[V Vector](a, b V, t float64) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = lerpf(a[i], b[i], t)
	}
	return out
}

// lerpf linearly interpolates between two scalars.
//
// For t > 0.5 the interpolation is computed from b with u = 1−t, so that
// lerpf(a, b, 1) is exactly b and rounding error stays proportional to the
// distance from the nearer endpoint.
func lerpf(a, b, t float64) float64 {
	if t <= 0.5 {
		return a + t*(b-a)
	}
	return b + (1.0-t)*(a-b)
}

// sub computes a−b.
func sub[V Vector](a, b V) (out V) {
	switch o := any(&out).(type) {
	case *vec2.T:
		*o = vec2.Sub(any(&a).(*vec2.T), any(&b).(*vec2.T))
	case *vec3.T:
		*o = vec3.Sub(any(&a).(*vec3.T), any(&b).(*vec3.T))
	}
	return out
}

func add[V Vector](a, b V) (out V) {
	switch o := any(&out).(type) {
	case *vec2.T:
		*o = vec2.Add(any(&a).(*vec2.T), any(&b).(*vec2.T))
	case *vec3.T:
		*o = vec3.Add(any(&a).(*vec3.T), any(&b).(*vec3.T))
	}
	return out
}

func scale[V Vector](v V, f float64) (out V) {
	switch o := any(&out).(type) {
	case *vec2.T:
		*o = any(&v).(*vec2.T).Scaled(f)
	case *vec3.T:
		*o = any(&v).(*vec3.T).Scaled(f)
	}
	return out
}

// hypot returns the euclidean length of v.
func hypot[V Vector](v V) float64 {
	switch v := any(&v).(type) {
	case *vec2.T:
		return v.Length()
	case *vec3.T:
		return v.Length()
	}
	panic("unreachable")
}

func isNaN[V Vector](v V) bool {
	for i := 0; i < len(v); i++ {
		if math.IsNaN(v[i]) {
			return true
		}
	}
	return false
}

func isInf[V Vector](v V) bool {
	for i := 0; i < len(v); i++ {
		if math.IsInf(v[i], 0) {
			return true
		}
	}
	return false
}
