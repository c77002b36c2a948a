package object

import (
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/style"
)

// Pixel is the leaf Object: a single glyph at a single Point.
type Pixel struct {
	glyph        rune
	point        geom.Point
	style        style.Style
	weight       style.Weight
	penaltyGroup string
	z            int
}

// PixelOption configures a Pixel at construction time.
type PixelOption func(*Pixel)

// WithPixelStyle sets the Pixel's Style.
func WithPixelStyle(s style.Style) PixelOption {
	return func(p *Pixel) { p.style = s }
}

// WithPixelWeight sets the Pixel's routing weight (default 0).
func WithPixelWeight(w style.Weight) PixelOption {
	return func(p *Pixel) { p.weight = w }
}

// WithPixelPenaltyGroup tags the Pixel with a named penalty group
// consumed by costfield.GroupPenalties.
func WithPixelPenaltyGroup(tag string) PixelOption {
	return func(p *Pixel) { p.penaltyGroup = tag }
}

// WithPixelZ sets the Pixel's z-order (default 0).
func WithPixelZ(z int) PixelOption {
	return func(p *Pixel) { p.z = z }
}

// NewPixel constructs a Pixel with glyph at p, applying opts in order.
func NewPixel(glyph rune, p geom.Point, opts ...PixelOption) Pixel {
	px := Pixel{glyph: glyph, point: p}
	for _, opt := range opts {
		opt(&px)
	}

	return px
}

// Chars implements Object.
func (p Pixel) Chars() []style.StyledChar {
	return []style.StyledChar{{
		Glyph:        p.glyph,
		Style:        p.style,
		Weight:       p.weight,
		Point:        p.point,
		PenaltyGroup: p.penaltyGroup,
	}}
}

// ZOrder implements Object.
func (p Pixel) ZOrder() int {
	return p.z
}

// At returns a copy of p translated by delta.
func (p Pixel) At(delta geom.Point) Pixel {
	p.point = p.point.Add(delta)

	return p
}
