package glyph

import (
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/style"
)

// Options configures Select's endpoint decoration.
type Options struct {
	StartGlyph  rune
	HasStart    bool
	EndGlyph    rune
	HasEnd      bool
	StartArrow  Arrow
	HasStartArr bool
	EndArrow    Arrow
	HasEndArr   bool
	ArrowStyle  style.Style
}

// Option configures an Options value.
type Option func(*Options)

// WithStartGlyph overrides the glyph painted at cells[0].
func WithStartGlyph(r rune) Option {
	return func(o *Options) { o.StartGlyph = r; o.HasStart = true }
}

// WithEndGlyph overrides the glyph painted at the last cell.
func WithEndGlyph(r rune) Option {
	return func(o *Options) { o.EndGlyph = r; o.HasEnd = true }
}

// WithStartArrow paints the caller-chosen arrow a at cells[0], styled
// with ArrowStyle overlaid on the path style. The arrow's facing is
// whatever a names; it is not derived from the path's own geometry.
func WithStartArrow(a Arrow) Option {
	return func(o *Options) { o.StartArrow = a; o.HasStartArr = true }
}

// WithEndArrow paints the caller-chosen arrow a at the last cell, styled
// with ArrowStyle overlaid on the path style. The arrow's facing is
// whatever a names; it is not derived from the path's own geometry.
func WithEndArrow(a Arrow) Option {
	return func(o *Options) { o.EndArrow = a; o.HasEndArr = true }
}

// WithArrowStyle sets the Style appended (via Style.Over) to whichever
// endpoint carries an arrow.
func WithArrowStyle(s style.Style) Option {
	return func(o *Options) { o.ArrowStyle = s }
}

// Select maps a routed cell sequence to box-drawing StyledChars. lineStyle
// picks the glyph family. occupied is the full set of path cells whose
// adjacency should be considered when computing each cell's 4-neighbour
// signature — normally this path's own cells unioned with every path it
// reused via a free set, so that T-junctions appear at shared corridors.
// base is the Style applied to every cell; an endpoint carrying an arrow
// has ArrowStyle overlaid on it.
//
// Select never fails: a signature with no table entry (the degenerate
// single-cell path) paints a space rather than an error.
func Select(cells []geom.Point, occupied map[geom.Point]struct{}, lineStyle LineStyle, base style.Style, opts ...Option) []style.StyledChar {
	if len(cells) == 0 {
		return nil
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]style.StyledChar, 0, len(cells))
	for i, p := range cells {
		r, ok := glyphAt(p, occupied, lineStyle)
		if !ok {
			r = ' '
		}

		sc := style.StyledChar{Glyph: r, Style: base, Point: p}

		if i == 0 && o.HasStart {
			sc.Glyph = o.StartGlyph
		}
		if i == len(cells)-1 && o.HasEnd {
			sc.Glyph = o.EndGlyph
		}
		if i == 0 && o.HasStartArr {
			sc.Glyph = rune(o.StartArrow)
			sc.Style = sc.Style.Over(o.ArrowStyle)
		}
		if i == len(cells)-1 && o.HasEndArr {
			sc.Glyph = rune(o.EndArrow)
			sc.Style = sc.Style.Over(o.ArrowStyle)
		}

		out = append(out, sc)
	}

	return out
}

// glyphAt computes the glyph for cell p from its 4-neighbourhood
// occupancy within occupied.
func glyphAt(p geom.Point, occupied map[geom.Point]struct{}, lineStyle LineStyle) (rune, bool) {
	var sig Signature
	for _, d := range geom.Directions {
		if _, ok := occupied[p.Add(d.Vector())]; ok {
			sig |= directionBit(d)
		}
	}

	return Lookup(lineStyle, sig)
}

// OccupiedSetOf builds the occupied-cell set Select expects from one or
// more routed cell slices.
func OccupiedSetOf(cellSlices ...[]geom.Point) map[geom.Point]struct{} {
	occupied := make(map[geom.Point]struct{})
	for _, cells := range cellSlices {
		for _, p := range cells {
			occupied[p] = struct{}{}
		}
	}

	return occupied
}
