package multipath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgrid/costfield"
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/multipath"
)

func emptyField() costfield.Field {
	return costfield.Build(nil, nil, geom.Point{}, geom.Point{})
}

// TestRouteOrderPreserved checks results align with input order, not
// routing order.
func TestRouteOrderPreserved(t *testing.T) {
	requests := []multipath.Request{
		{Start: geom.Point{X: 0, Y: 5}, End: geom.Point{X: 10, Y: 5}}, // far, routed last
		{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 1, Y: 0}},  // cheap, routed first
	}
	bbox := geom.BoundingBox{Left: -2, Right: 12, Bottom: -2, Top: 8}

	results := multipath.Route(requests, bbox, emptyField(), 1)
	require.Len(t, results, 2)
	assert.True(t, results[0].OK)
	assert.True(t, results[1].OK)
	assert.Equal(t, requests[0].Start, results[0].Cells[0])
	assert.Equal(t, requests[1].Start, results[1].Cells[0])
}

// TestRouteSharesFreeSet is the multipath analogue of S4: a second path
// that overlaps the first's corridor should be cheaper than routing it
// cold, since it can reuse the first path's cells for free.
func TestRouteSharesFreeSet(t *testing.T) {
	requests := []multipath.Request{
		{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 5, Y: 0}},
		{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 3, Y: 0}},
	}
	bbox := geom.BoundingBox{Left: -2, Right: 8, Bottom: -3, Top: 3}

	results := multipath.Route(requests, bbox, emptyField(), 0)
	require.True(t, results[0].OK)
	require.True(t, results[1].OK)

	free := map[geom.Point]struct{}{}
	for _, p := range results[0].Cells {
		free[p] = struct{}{}
	}
	for _, p := range results[1].Cells {
		assert.Contains(t, free, p, "second path should fully overlap the first's straight corridor")
	}
}

func TestRouteUnroutablePairDoesNotBlockOthers(t *testing.T) {
	field := costfield.Build(nil, nil, geom.Point{}, geom.Point{})
	for _, p := range []geom.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}} {
		field.Blocked[p] = struct{}{}
	}

	requests := []multipath.Request{
		{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 2, Y: 0}}, // boxed in, unroutable
		{Start: geom.Point{X: 5, Y: 5}, End: geom.Point{X: 6, Y: 5}}, // unrelated, routable
	}
	// Left edge at x=0 closes the first request's only open side.
	bbox := geom.BoundingBox{Left: 0, Right: 8, Bottom: -3, Top: 8}

	results := multipath.Route(requests, bbox, field, 1)
	assert.False(t, results[0].OK)
	assert.True(t, results[1].OK)
}
