package object

import (
	"strings"

	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/style"
)

// Text renders a (possibly multi-line) string as a Group of Pixel
// objects, one per rune, anchored with its first line's first rune at
// origin and subsequent lines descending (since y grows upward). This is
// the "text" convenience supplemented from the original source's public
// API (the distilled spec keeps only Pixel/Group/Box/TextPath as object
// variants; Text is sugar built entirely from Pixel + Group).
func Text(s string, origin geom.Point, opts ...GroupOption) Group {
	lines := strings.Split(s, "\n")

	var pixels []Object
	for row, line := range lines {
		y := origin.Y - row
		x := origin.X
		for _, r := range line {
			if r != ' ' {
				pixels = append(pixels, NewPixel(r, geom.Point{X: x, Y: y}))
			}
			x++
		}
	}

	return NewGroup(pixels, opts...)
}
