package textpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/glyph"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/style"
	"github.com/katalvlaran/textgrid/textpath"
)

// TestPathStraightLine is scenario S1.
func TestPathStraightLine(t *testing.T) {
	p := textpath.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 0}, textpath.WithBendPenalty(1))

	chars := p.Chars()
	require.True(t, p.LastRouteOK())
	require.Len(t, chars, 4)
	for _, c := range chars {
		assert.Equal(t, '─', c.Glyph)
		assert.Equal(t, 0, c.Point.Y)
	}
}

// TestPathMemoizesAcrossCallsToChars checks the one-shot cache contract:
// calling Chars twice returns equal, independently-owned slices.
func TestPathMemoizesAcrossCallsToChars(t *testing.T) {
	p := textpath.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}, textpath.WithBendPenalty(1))

	a := p.Chars()
	b := p.Chars()
	require.Equal(t, a, b)

	b[0].Glyph = 'X'
	assert.NotEqual(t, a[0].Glyph, b[0].Glyph, "Chars must return a fresh copy each call")
}

// TestPathUnroutableProducesNoCells is scenario S5.
func TestPathUnroutableProducesNoCells(t *testing.T) {
	barrier := object.NewGroup([]object.Object{
		object.NewPixel(' ', geom.Point{X: 1, Y: 0}, object.WithPixelWeight(style.NoWeight)),
		object.NewPixel(' ', geom.Point{X: 0, Y: 1}, object.WithPixelWeight(style.NoWeight)),
		object.NewPixel(' ', geom.Point{X: 0, Y: -1}, object.WithPixelWeight(style.NoWeight)),
	})

	var logged string
	p := textpath.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0},
		textpath.WithBarriers(barrier),
		textpath.WithBBox(geom.BoundingBox{Left: 0, Right: 3, Bottom: -3, Top: 3}),
		textpath.WithOnUnroutable(func(msg string) { logged = msg }),
	)

	assert.Empty(t, p.Chars())
	assert.False(t, p.LastRouteOK())
	assert.NotEmpty(t, logged)
}

// TestPathReusesPriorPathForFree is scenario S4 expressed through the
// object graph: a second path with the first listed in WithReusablePaths
// follows the same corridor the first routed.
func TestPathReusesPriorPathForFree(t *testing.T) {
	p1 := textpath.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, textpath.WithBendPenalty(0))
	require.True(t, p1.LastRouteOK())

	p2 := textpath.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0},
		textpath.WithBendPenalty(0),
		textpath.WithReusablePaths(p1),
	)
	require.True(t, p2.LastRouteOK())

	c1 := p1.Chars()
	c2 := p2.Chars()
	require.Len(t, c1, len(c2))
	for i := range c1 {
		assert.Equal(t, c1[i].Point, c2[i].Point)
	}
}

// TestPathOutOfBboxPanics verifies an out-of-bbox endpoint panics at
// construction rather than surfacing later as a routing failure.
func TestPathOutOfBboxPanics(t *testing.T) {
	assert.Panics(t, func() {
		textpath.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10},
			textpath.WithBBox(geom.BoundingBox{Left: 0, Right: 2, Bottom: 0, Top: 2}),
		)
	})
}

func TestWithBendPenaltyPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() {
		textpath.WithBendPenalty(-1)
	})
}

// TestPathEndpointDecoration checks start/end glyph overrides and
// end-style overlay land only on the first/last cell.
func TestPathEndpointDecoration(t *testing.T) {
	p := textpath.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 0},
		textpath.WithBendPenalty(1),
		textpath.WithStartGlyph('S'),
		textpath.WithEndGlyph('E'),
		textpath.WithEndStyle(style.Style{}.WithEffect(style.Bold)),
	)

	chars := p.Chars()
	require.Len(t, chars, 4)
	assert.Equal(t, 'S', chars[0].Glyph)
	assert.Equal(t, 'E', chars[len(chars)-1].Glyph)
	assert.True(t, chars[0].Style.HasEffect(style.Bold))
	assert.True(t, chars[len(chars)-1].Style.HasEffect(style.Bold))
	assert.False(t, chars[1].Style.HasEffect(style.Bold))
}

// TestPathHeavyLineStyle checks the line-style table wiring end to end.
func TestPathHeavyLineStyle(t *testing.T) {
	p := textpath.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0},
		textpath.WithBendPenalty(1),
		textpath.WithLineStyle(glyph.Heavy),
	)

	for _, c := range p.Chars() {
		assert.Equal(t, '━', c.Glyph)
	}
}
