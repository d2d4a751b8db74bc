// Package bezier provides evaluation, subdivision, and arc length
// parameterization of quadratic and cubic Bézier curves in 2D and 3D.
//
// # Curves
//
// [Bezier] is a quadratic or cubic Bézier curve whose control points are
// [vec2.T] or [vec3.T] values from the go3d module. Curves are immutable values
// that can be compared with ==, and every operation that transforms a curve
// returns a new one. Curves are constructed with [Quad], [Cubic],
// [CubicFromTangents], or, from a slice of points of unknown length,
// [NewBezier].
//
// Curves can be evaluated at any parameter t. The range [0, 1] covers the
// curve between its first and last control points; other parameters
// extrapolate the curve's polynomial. Evaluation uses de Casteljau's algorithm,
// interpolating from whichever end of each span is nearer to t. As a result,
// the curve's end points are reproduced exactly at t=0 and t=1.
//
// # Arc length
//
// There are two ways of computing arc lengths. [Bezier.Arclen] and
// [Bezier.SolveForArclen] compute lengths directly, using adaptive quadrature
// of the curve's speed. This is suitable for one-off queries.
//
// [Parameterization] instead precomputes a table that maps between the curve's
// parameter and arc length, to a given accuracy, after which both directions
// of the mapping are cheap. The mapping is monotonic and invertible.
// Parameterizations can be built for any [SpeedSource], not just for Béziers;
// see [SpeedFunc].
//
// [SplitN] and [SplitArclen] use a parameterization to split a curve into
// pieces of equal length.
//
// # Iterators
//
// Functions that produce sequences of values, such as [Parameterization.Divide]
// or [Bezier.EvalSeq], return iterators, to avoid having to allocate slices.
// You can use [slices.Collect] to turn iterators into slices, and
// [slices.Values] to turn slices into iterators.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [Legendre-Gauss quadrature]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Legendre-Gauss quadrature]: https://pomax.github.io/bezierinfo/legendre-gauss.html
// [vec2.T]: https://pkg.go.dev/github.com/ungerik/go3d/float64/vec2#T
// [vec3.T]: https://pkg.go.dev/github.com/ungerik/go3d/float64/vec3#T
package bezier
