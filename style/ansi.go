package style

import "strconv"

// Translates a Style into the terminal's own SGR escape form. Isolated in
// its own file the way internal/styleparser isolates the grammar tokenizer
// from style.Style itself — compositor.Render takes a Formatter, ANSI is
// just one of its callers' options.

// Reset is the SGR sequence that clears every attribute set by an
// earlier escape.
const Reset = "\x1b[0m"

var fgCodes = map[Color]int{
	Black: 30, Red: 31, Green: 32, Yellow: 33, Blue: 34, Magenta: 35, Cyan: 36, White: 37,
	BrightBlack: 90, BrightRed: 91, BrightGreen: 92, BrightYellow: 93,
	BrightBlue: 94, BrightMagenta: 95, BrightCyan: 96, BrightWhite: 97,
	Default: 39,
}

var bgCodes = map[Color]int{
	Black: 40, Red: 41, Green: 42, Yellow: 43, Blue: 44, Magenta: 45, Cyan: 46, White: 47,
	BrightBlack: 100, BrightRed: 101, BrightGreen: 102, BrightYellow: 103,
	BrightBlue: 104, BrightMagenta: 105, BrightCyan: 106, BrightWhite: 107,
	Default: 49,
}

var effectCodes = []struct {
	bit  Effect
	code int
}{
	{Bold, 1}, {Dim, 2}, {Italic, 3}, {Underline, 4}, {Blink, 5}, {Reverse, 7}, {Strike, 9},
}

// ANSI renders s as an SGR escape sequence ("\x1b[<codes>m"). Returns ""
// for the zero Style (no attributes to set), so callers can skip wrapping
// a glyph that carries no style at all.
func (s Style) ANSI() string {
	var codes []int

	if c, ok := s.Foreground(); ok {
		codes = append(codes, fgCodes[c])
	}
	if c, ok := s.Background(); ok {
		codes = append(codes, bgCodes[c])
	}
	for _, e := range effectCodes {
		if s.HasEffect(e.bit) {
			codes = append(codes, e.code)
		}
	}

	if len(codes) == 0 {
		return ""
	}

	out := "\x1b["
	for i, c := range codes {
		if i > 0 {
			out += ";"
		}
		out += strconv.Itoa(c)
	}
	out += "m"

	return out
}
