package bezier_test

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"honnef.co/go/bezier"
)

func ExampleBezier_Sample() {
	c := bezier.Cubic(vec3.T{1, 1, 1}, vec3.T{3, 1, 1}, vec3.T{3, 3, 1}, vec3.T{3, 3, 3})
	pt, d := c.Sample(0.5)
	fmt.Println(pt[0], pt[1], pt[2])
	fmt.Println(d[0], d[1], d[2])
	// Output:
	// 2.75 2 1.25
	// 1.5 3 1.5
}

func ExampleBezier_Subdivide() {
	c := bezier.Cubic(vec3.T{1, 1, 1}, vec3.T{3, 1, 1}, vec3.T{3, 3, 1}, vec3.T{3, 3, 3})
	left, right := c.Subdivide()
	fmt.Println(left)
	fmt.Println(right)
	// Output:
	// Cubic((1, 1, 1), (2, 1, 1), (2.5, 1.5, 1), (2.75, 2, 1.25))
	// Cubic((2.75, 2, 1.25), (3, 2.5, 1.5), (3, 3, 2), (3, 3, 3))
}

func ExampleNewBezier() {
	_, err := bezier.NewBezier(vec2.T{0, 0}, vec2.T{1, 1})
	fmt.Println(err)
	// Output:
	// wrong number of control points: got 2, want 3 or 4
}

func ExampleParameterization_Divide() {
	c := bezier.Cubic(vec2.T{0, 0}, vec2.T{1, 0}, vec2.T{2, 0}, vec2.T{3, 0})
	p := c.Parameterize(bezier.DefaultAccuracy)
	fmt.Printf("length: %.4f\n", p.Total())
	for t := range p.Divide(3) {
		fmt.Printf("%.4f\n", t)
	}
	// Output:
	// length: 3.0000
	// 0.0000
	// 0.3333
	// 0.6667
	// 1.0000
}

func ExampleSplitArclen() {
	c := bezier.Quad(vec2.T{0, 0}, vec2.T{2, 0}, vec2.T{4, 0})
	p := c.Parameterize(bezier.DefaultAccuracy)
	for piece := range bezier.SplitArclen(p, 1.5) {
		fmt.Printf("%.2f → %.2f\n", piece.Start()[0], piece.End()[0])
	}
	// Output:
	// 0.00 → 1.50
	// 1.50 → 3.00
	// 3.00 → 4.00
}
