// Command textgrid-demo renders a small composite diagram — two labelled
// boxes joined by a routed, arrow-terminated connector — and prints it to
// stdout, either as plain text or, with -ansi, styled for a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/textgrid"
	"github.com/katalvlaran/textgrid/glyph"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/style"
	"github.com/katalvlaran/textgrid/textpath"
)

func main() {
	ansi := flag.Bool("ansi", false, "render with ANSI colour/style escapes instead of plain text")
	flag.Parse()

	left := object.NewBox("Client", textgrid.Point{X: 0, Y: 0},
		object.WithBoxFrameWeight(1),
	)
	right := object.NewBox("Server", textgrid.Point{X: 14, Y: 0},
		object.WithBoxFrameWeight(1),
	)

	path := textgrid.NewTextPath(
		left.Connector(textgrid.Right),
		right.Connector(textgrid.Left),
		textpath.WithBendPenalty(1),
		textpath.WithBarriers(left, right),
		textpath.WithEndArrow(glyph.ArrowRight),
		textpath.WithArrowStyle(style.Style{}.WithForeground(style.Green)),
	)

	format := textgrid.PlainText
	if *ansi {
		format = textgrid.ANSIText
	}

	out := textgrid.Render([]textgrid.Object{left, right, path}, format)
	fmt.Fprintln(os.Stdout, out)
}
