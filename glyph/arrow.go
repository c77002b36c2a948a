package glyph

import "github.com/katalvlaran/textgrid/geom"

// Arrow is an endpoint decoration glyph keyed by the incoming direction.
type Arrow rune

const (
	ArrowUp    Arrow = '▲'
	ArrowDown  Arrow = '▼'
	ArrowLeft  Arrow = '◀'
	ArrowRight Arrow = '▶'
)

// ArrowFor returns the arrow glyph pointing in direction d.
func ArrowFor(d geom.Direction) Arrow {
	switch d {
	case geom.Up:
		return ArrowUp
	case geom.Down:
		return ArrowDown
	case geom.Left:
		return ArrowLeft
	case geom.Right:
		return ArrowRight
	default:
		return ArrowRight
	}
}

// ParseArrow resolves the direction token of a two-token grammar arrow
// value ("up", "down", "left" or "right", as in "up arrow") to an Arrow.
// ok is false for unrecognised direction tokens.
func ParseArrow(directionToken string) (Arrow, bool) {
	switch directionToken {
	case "up":
		return ArrowUp, true
	case "down":
		return ArrowDown, true
	case "left":
		return ArrowLeft, true
	case "right":
		return ArrowRight, true
	default:
		return 0, false
	}
}
