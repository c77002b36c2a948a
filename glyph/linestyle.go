package glyph

// LineStyle selects the box-drawing glyph family used to render a path.
type LineStyle int

const (
	// Thin is the default box-drawing weight.
	Thin LineStyle = iota
	// Heavy renders bold box-drawing glyphs.
	Heavy
	// Double renders double-line box-drawing glyphs.
	Double
)

// String renders the line style using the grammar's own vocabulary.
func (l LineStyle) String() string {
	switch l {
	case Thin:
		return "thin"
	case Heavy:
		return "heavy"
	case Double:
		return "double"
	default:
		return "thin"
	}
}

// ParseLineStyle resolves a grammar line-style token ("thin", "thick",
// "heavy", "double") to a LineStyle. ok is false for unrecognised tokens.
func ParseLineStyle(token string) (LineStyle, bool) {
	switch token {
	case "thin", "":
		return Thin, true
	case "thick", "heavy":
		return Heavy, true
	case "double":
		return Double, true
	default:
		return Thin, false
	}
}
