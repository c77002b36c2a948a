package glyph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/glyph"
	"github.com/katalvlaran/textgrid/style"
)

// TestSelectStraightLine is scenario S1: start=(0,0), end=(3,0), thin
// line style, no barriers/environment -> four horizontal glyphs.
func TestSelectStraightLine(t *testing.T) {
	cells := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	occupied := glyph.OccupiedSetOf(cells)

	out := glyph.Select(cells, occupied, glyph.Thin, style.Style{})
	require.Len(t, out, 4)
	for _, c := range out {
		assert.Equal(t, '─', c.Glyph)
	}
}

func TestSelectVerticalLine(t *testing.T) {
	cells := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	occupied := glyph.OccupiedSetOf(cells)

	out := glyph.Select(cells, occupied, glyph.Thin, style.Style{})
	for _, c := range out {
		assert.Equal(t, '│', c.Glyph)
	}
}

func TestSelectCorner(t *testing.T) {
	// Path goes right then up: (0,0) -> (1,0) -> (1,1). The bend at (1,0)
	// has a West neighbour (0,0) and a North neighbour (1,1): signature
	// North|West -> '┘' in the thin table.
	cells := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	occupied := glyph.OccupiedSetOf(cells)

	out := glyph.Select(cells, occupied, glyph.Thin, style.Style{})
	require.Len(t, out, 3)
	assert.Equal(t, '┘', out[1].Glyph)
}

func TestSelectHeavyAndDoubleCorners(t *testing.T) {
	cells := []geom.Point{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	occupied := glyph.OccupiedSetOf(cells)

	heavy := glyph.Select(cells, occupied, glyph.Heavy, style.Style{})
	assert.Equal(t, '┗', heavy[1].Glyph)

	double := glyph.Select(cells, occupied, glyph.Double, style.Style{})
	assert.Equal(t, '╚', double[1].Glyph)
}

func TestSelectTJunctionFromSharedCorridor(t *testing.T) {
	// Two paths share the horizontal corridor y=0 and one branches north.
	corridor := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	branch := []geom.Point{{X: 1, Y: 0}, {X: 1, Y: 1}}
	occupied := glyph.OccupiedSetOf(corridor, branch)

	out := glyph.Select(corridor, occupied, glyph.Thin, style.Style{})
	// (1,0) has East, West and North neighbours occupied -> '┴'.
	assert.Equal(t, '┴', out[1].Glyph)
}

func TestSelectEndpointOverridesAndArrow(t *testing.T) {
	cells := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	occupied := glyph.OccupiedSetOf(cells)

	out := glyph.Select(cells, occupied, glyph.Thin, style.Style{},
		glyph.WithStartGlyph('S'),
		glyph.WithEndArrow(glyph.ArrowRight),
		glyph.WithArrowStyle(style.Style{}.WithEffect(style.Bold)),
	)

	assert.Equal(t, 'S', out[0].Glyph)
	assert.Equal(t, rune(glyph.ArrowRight), out[2].Glyph)
	assert.True(t, out[2].Style.HasEffect(style.Bold))
}

func TestParseLineStyleVocabulary(t *testing.T) {
	ls, ok := glyph.ParseLineStyle("thick")
	require.True(t, ok)
	assert.Equal(t, glyph.Heavy, ls)

	ls, ok = glyph.ParseLineStyle("double")
	require.True(t, ok)
	assert.Equal(t, glyph.Double, ls)

	_, ok = glyph.ParseLineStyle("bogus")
	assert.False(t, ok)
}
