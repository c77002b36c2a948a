package compositor

import (
	"strings"

	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/style"
)

// Formatter renders one painted glyph+Style into the text a terminal (or
// a test) ultimately consumes.
type Formatter func(rune, style.Style) string

// PlainText ignores s and renders the bare glyph, useful for
// deterministic, style-agnostic tests and the render-idempotence check
// (testable property 10).
func PlainText(r rune, _ style.Style) string {
	return string(r)
}

// ANSIText wraps r in s's ANSI escape codes, resetting immediately after
// so adjacent cells with different styles never bleed into each other.
func ANSIText(r rune, s style.Style) string {
	esc := s.ANSI()
	if esc == "" {
		return string(r)
	}

	return esc + string(r) + style.Reset
}

// Render composites objs (per Composite) and serializes the result with
// format, walking rows top-to-bottom and columns left-to-right, emitting
// a space for any unpainted cell: one newline between rows, no trailing
// newline, and trailing whitespace on a row trimmed. Rendering the same
// objs twice yields an identical string, since Composite's resolution and
// this walk are both pure functions of objs.
func Render(objs []object.Object, format Formatter) string {
	painted, bbox := Composite(objs)
	if len(painted) == 0 {
		return ""
	}

	rows := make([]string, 0, bbox.Height())
	for y := bbox.Top; y >= bbox.Bottom; y-- {
		var sb strings.Builder
		for x := bbox.Left; x <= bbox.Right; x++ {
			if c, ok := painted[geom.Point{X: x, Y: y}]; ok {
				sb.WriteString(format(c.Glyph, c.Style))
			} else {
				sb.WriteByte(' ')
			}
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}

	return strings.Join(rows, "\n")
}
