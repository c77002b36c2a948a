package style

import "github.com/katalvlaran/textgrid/internal/styleparser"

// ErrInvalidStyle is the sentinel error for a malformed style string; a
// malformed string is fatal at object construction.
var ErrInvalidStyle = styleparser.ErrUnknownToken

// Parse interprets a whitespace-separated style string (colour names,
// "on <colour>", effect names, "not <effect>") and returns the composed
// Style. Errors wrap ErrInvalidStyle.
func Parse(s string) (Style, error) {
	return styleparser.Parse(s)
}

// MustParse is Parse but panics on error; intended for object constructors
// for which a malformed style string is a fatal construction-time error.
func MustParse(s string) Style {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return st
}
