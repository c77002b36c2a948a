package styleparser

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/textgrid/style"
)

// ErrUnknownToken is returned when a whitespace-separated token in a style
// string is neither a colour name, an effect name, "on", nor "not".
var ErrUnknownToken = fmt.Errorf("styleparser: unknown token")

// Parse interprets a whitespace-separated style string and folds its
// tokens, left to right, into a single style.Style via Style.Over — so
// "bold not bold" resolves to no effect, and "red on blue bold" resolves
// to a red foreground, blue background, and bold.
//
// Grammar (case-sensitive, lower-case tokens only):
//
//	colour := "black" | "red" | "green" | "yellow" | "blue" | "magenta" |
//	          "cyan" | "white" | "bright_" colour-base | "default"
//	token  := colour | "on" colour | effect | "not" effect
//
// Returns ErrUnknownToken wrapping the offending token on failure.
func Parse(s string) (style.Style, error) {
	fields := strings.Fields(s)

	var result style.Style
	for i := 0; i < len(fields); i++ {
		tok := fields[i]

		switch tok {
		case "on":
			i++
			if i >= len(fields) {
				return style.Style{}, fmt.Errorf("%w: %q (\"on\" with no colour)", ErrUnknownToken, s)
			}
			c, ok := style.LookupColor(fields[i])
			if !ok {
				return style.Style{}, fmt.Errorf("%w: %q", ErrUnknownToken, fields[i])
			}
			result = result.Over(style.Style{}.WithBackground(c))

		case "not":
			i++
			if i >= len(fields) {
				return style.Style{}, fmt.Errorf("%w: %q (\"not\" with no effect)", ErrUnknownToken, s)
			}
			e, ok := style.LookupEffect(fields[i])
			if !ok {
				return style.Style{}, fmt.Errorf("%w: %q", ErrUnknownToken, fields[i])
			}
			result = result.Over(style.Style{}.WithoutEffect(e))

		default:
			if c, ok := style.LookupColor(tok); ok {
				result = result.Over(style.Style{}.WithForeground(c))

				continue
			}
			if e, ok := style.LookupEffect(tok); ok {
				result = result.Over(style.Style{}.WithEffect(e))

				continue
			}

			return style.Style{}, fmt.Errorf("%w: %q", ErrUnknownToken, tok)
		}
	}

	return result, nil
}
