package multipath_test

import (
	"fmt"

	"github.com/katalvlaran/textgrid/costfield"
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/multipath"
)

// ExampleRoute routes two overlapping requests jointly, cheapest first,
// and returns results aligned to input order.
func ExampleRoute() {
	requests := []multipath.Request{
		{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 5, Y: 0}},
		{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 3, Y: 0}},
	}
	bbox := geom.BoundingBox{Left: -2, Right: 8, Bottom: -3, Top: 3}
	field := costfield.Build(nil, nil, geom.Point{}, geom.Point{})

	results := multipath.Route(requests, bbox, field, 0)
	fmt.Println(results[0].OK, len(results[0].Cells))
	fmt.Println(results[1].OK, len(results[1].Cells))
	// Output:
	// true 6
	// true 4
}
