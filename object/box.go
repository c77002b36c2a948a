package object

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/glyph"
	"github.com/katalvlaran/textgrid/style"
)

// Box is a label framed by box-drawing glyphs. It is a thin, minimal
// implementation — enough to participate as an Object (and as a routing
// barrier or penalty source) without taking on the full layout
// responsibilities of a general text-panel library.
type Box struct {
	lines       []string
	origin      geom.Point // interior's bottom-left corner, one cell inside the frame
	labelStyle  style.Style
	frameStyle  style.Style
	frameWeight style.Weight
	lineStyle   glyph.LineStyle
	z           int
}

// BoxOption configures a Box at construction time.
type BoxOption func(*Box)

// WithBoxLabelStyle sets the Style applied to label characters.
func WithBoxLabelStyle(s style.Style) BoxOption {
	return func(b *Box) { b.labelStyle = s }
}

// WithBoxFrameStyle sets the Style applied to the frame's glyphs.
func WithBoxFrameStyle(s style.Style) BoxOption {
	return func(b *Box) { b.frameStyle = s }
}

// WithBoxFrameWeight sets the weight carried by the frame's and the
// label's cells. Defaults to style.NoWeight: the compositor then never
// paints the Box, and as environment it adds no routing penalty. A Box
// listed among a path's barriers blocks the router whatever this weight
// is; a finite weight makes the Box visible and, listed as environment, a
// per-cell routing penalty of that weight.
func WithBoxFrameWeight(w style.Weight) BoxOption {
	return func(b *Box) { b.frameWeight = w }
}

// WithBoxLineStyle selects the frame's box-drawing glyph family.
func WithBoxLineStyle(ls glyph.LineStyle) BoxOption {
	return func(b *Box) { b.lineStyle = ls }
}

// WithBoxZ sets the Box's z-order.
func WithBoxZ(z int) BoxOption {
	return func(b *Box) { b.z = z }
}

// NewBox constructs a Box framing label (which may contain embedded
// newlines for a multi-line label) with its interior's bottom-left
// corner at origin.
func NewBox(label string, origin geom.Point, opts ...BoxOption) Box {
	b := Box{
		lines:       strings.Split(label, "\n"),
		origin:      origin,
		frameWeight: style.NoWeight,
		lineStyle:   glyph.Thin,
	}
	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// interiorSize returns the label's width (in display columns, via
// go-runewidth so wide runes count correctly) and height in lines.
func (b Box) interiorSize() (width, height int) {
	for _, line := range b.lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	return width, len(b.lines)
}

// Frame returns the bounding box of the Box's outer frame (including the
// border glyphs), in the same coordinate system as origin.
func (b Box) Frame() geom.BoundingBox {
	w, h := b.interiorSize()

	return geom.BoundingBox{
		Left:   b.origin.X - 1,
		Right:  b.origin.X + w,
		Bottom: b.origin.Y - 1,
		Top:    b.origin.Y + h,
	}
}

// Chars implements Object.
func (b Box) Chars() []style.StyledChar {
	_, h := b.interiorSize()
	frame := b.Frame()

	var out []style.StyledChar
	emit := func(glyphRune rune, p geom.Point) {
		out = append(out, style.StyledChar{Glyph: glyphRune, Style: b.frameStyle, Weight: b.frameWeight, Point: p})
	}

	corner := func(sig glyph.Signature) rune {
		r, _ := glyph.Lookup(b.lineStyle, sig)

		return r
	}

	emit(corner(glyph.North|glyph.East), geom.Point{X: frame.Left, Y: frame.Bottom})
	emit(corner(glyph.North|glyph.West), geom.Point{X: frame.Right, Y: frame.Bottom})
	emit(corner(glyph.South|glyph.East), geom.Point{X: frame.Left, Y: frame.Top})
	emit(corner(glyph.South|glyph.West), geom.Point{X: frame.Right, Y: frame.Top})

	horiz := corner(glyph.East | glyph.West)
	for x := frame.Left + 1; x < frame.Right; x++ {
		emit(horiz, geom.Point{X: x, Y: frame.Bottom})
		emit(horiz, geom.Point{X: x, Y: frame.Top})
	}

	vert := corner(glyph.North | glyph.South)
	for y := frame.Bottom + 1; y < frame.Top; y++ {
		emit(vert, geom.Point{X: frame.Left, Y: y})
		emit(vert, geom.Point{X: frame.Right, Y: y})
	}

	for row, line := range b.lines {
		// Interior rows run bottom-to-top in grid space; lines[0] is the
		// label's first (topmost) line.
		y := b.origin.Y + h - 1 - row
		x := b.origin.X
		for _, r := range line {
			out = append(out, style.StyledChar{Glyph: r, Style: b.labelStyle, Weight: b.frameWeight, Point: geom.Point{X: x, Y: y}})
			x += runewidth.RuneWidth(r)
		}
	}

	return out
}

// ZOrder implements Object.
func (b Box) ZOrder() int {
	return b.z
}

// At returns a copy of b translated by delta.
func (b Box) At(delta geom.Point) Box {
	b.origin = b.origin.Add(delta)

	return b
}

// Connector returns the cell just outside the frame at the midpoint of
// the given side, a convenient TextPath endpoint the way demo.py's
// LetterBox computes c_left/c_right/c_top/c_bottom.
func (b Box) Connector(d geom.Direction) geom.Point {
	frame := b.Frame()
	midX := (frame.Left + frame.Right) / 2
	midY := (frame.Bottom + frame.Top) / 2

	switch d {
	case geom.Left:
		return geom.Point{X: frame.Left - 1, Y: midY}
	case geom.Right:
		return geom.Point{X: frame.Right + 1, Y: midY}
	case geom.Up:
		return geom.Point{X: midX, Y: frame.Top + 1}
	case geom.Down:
		return geom.Point{X: midX, Y: frame.Bottom - 1}
	default:
		return geom.Point{X: midX, Y: midY}
	}
}
