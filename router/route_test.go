package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgrid/costfield"
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/router"
	"github.com/katalvlaran/textgrid/style"
)

func emptyField() costfield.Field {
	return costfield.Field{Blocked: map[geom.Point]struct{}{}, Penalty: map[geom.Point]style.Weight{}}
}

// TestRouteStraightLine is scenario S1.
func TestRouteStraightLine(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 3, Y: 0}
	bbox := geom.BoundingBox{Left: -2, Right: 5, Bottom: -2, Top: 2}

	path, ok := router.Route(start, end, bbox, emptyField(), router.WithBendPenalty(1))
	require.True(t, ok)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, path)
}

// TestRouteEndpointFidelity is testable property 2.
func TestRouteEndpointFidelity(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 2, Y: 2}
	bbox := geom.BoundingBox{Left: -3, Right: 5, Bottom: -3, Top: 5}

	path, ok := router.Route(start, end, bbox, emptyField(), router.WithBendPenalty(0))
	require.True(t, ok)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	// S2: only one bend is necessary for an L path of 5 cells.
	assert.Len(t, path, 5)
}

// TestRouteBarrierDetour is scenario S3: barrier at (2,0) forces a 6-step
// (7-cell) detour around y=1 or y=-1.
func TestRouteBarrierDetour(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 4, Y: 0}
	bbox := geom.BoundingBox{Left: -2, Right: 6, Bottom: -3, Top: 3}
	field := costfield.Build(nil,
		nil, start, end)
	field.Blocked[geom.Point{X: 2, Y: 0}] = struct{}{}

	path, ok := router.Route(start, end, bbox, field, router.WithBendPenalty(1))
	require.True(t, ok)
	assert.Len(t, path, 7)
	for _, p := range path {
		assert.NotEqual(t, geom.Point{X: 2, Y: 0}, p)
	}

	// Determinism: routing again gives an identical path.
	path2, ok2 := router.Route(start, end, bbox, field, router.WithBendPenalty(1))
	require.True(t, ok2)
	assert.Equal(t, path, path2)
}

// TestRouteFreeSetReuse is scenario S4: routing the same endpoints again
// with the first path's cells marked free reproduces the same path at
// bend-only cost.
func TestRouteFreeSetReuse(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 5, Y: 0}
	bbox := geom.BoundingBox{Left: -2, Right: 8, Bottom: -3, Top: 3}

	p1, ok := router.Route(start, end, bbox, emptyField(), router.WithBendPenalty(0))
	require.True(t, ok)

	free := map[geom.Point]struct{}{}
	for _, p := range p1 {
		free[p] = struct{}{}
	}

	p2, ok := router.Route(start, end, bbox, emptyField(), router.WithBendPenalty(0), router.WithFreeSet(free))
	require.True(t, ok)
	assert.Equal(t, p1, p2)
}

// TestRouteNoSolution is scenario S5: start boxed in on all four sides, by
// three barriers and the bbox's left edge.
func TestRouteNoSolution(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 2, Y: 0}
	bbox := geom.BoundingBox{Left: 0, Right: 3, Bottom: -3, Top: 3}

	field := costfield.Build(nil, nil, start, end)
	for _, p := range []geom.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}} {
		field.Blocked[p] = struct{}{}
	}

	_, ok := router.Route(start, end, bbox, field, router.WithBendPenalty(1))
	assert.False(t, ok)
}

// TestRouteBboxRespect is testable property 4.
func TestRouteBboxRespect(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 2, Y: 0}
	bbox := geom.BoundingBox{Left: 0, Right: 2, Bottom: -1, Top: 1}

	path, ok := router.Route(start, end, bbox, emptyField(), router.WithBendPenalty(1))
	require.True(t, ok)
	for _, p := range path {
		assert.True(t, bbox.Contains(p))
	}
}

// TestRouteBendPenaltyMonotonicity is testable property 6: doubling the
// bend penalty cannot increase the number of bends.
func TestRouteBendPenaltyMonotonicity(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 3, Y: 2}
	bbox := geom.BoundingBox{Left: -2, Right: 6, Bottom: -2, Top: 6}

	low, ok := router.Route(start, end, bbox, emptyField(), router.WithBendPenalty(1))
	require.True(t, ok)
	high, ok := router.Route(start, end, bbox, emptyField(), router.WithBendPenalty(2))
	require.True(t, ok)

	assert.LessOrEqual(t, bends(high), bends(low))
	assert.GreaterOrEqual(t, bends(low)+1000, bends(high))
}

func bends(path []geom.Point) int {
	count := 0
	for i := 2; i < len(path); i++ {
		d1 := path[i-1].Sub(path[i-2])
		d2 := path[i].Sub(path[i-1])
		if d1 != d2 {
			count++
		}
	}

	return count
}

func TestWithBendPenaltyPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() {
		router.WithBendPenalty(-1)
	})
}
