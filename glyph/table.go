package glyph

// table maps a Signature to its glyph for a single LineStyle. The only
// missing entry is the all-zero signature of an isolated cell (a
// single-cell path); Select paints a space for it.
type table map[Signature]rune

var tables = map[LineStyle]table{
	Thin: {
		East | West:                 '─',
		North | South:               '│',
		North:                       '│',
		South:                       '│',
		East:                        '─',
		West:                        '─',
		North | East:                '└',
		North | West:                '┘',
		South | East:                '┌',
		South | West:                '┐',
		North | East | South:        '├',
		North | East | West:         '┴',
		North | South | West:        '┤',
		East | South | West:         '┬',
		North | East | South | West: '┼',
	},
	Heavy: {
		East | West:                 '━',
		North | South:               '┃',
		North:                       '┃',
		South:                       '┃',
		East:                        '━',
		West:                        '━',
		North | East:                '┗',
		North | West:                '┛',
		South | East:                '┏',
		South | West:                '┓',
		North | East | South:        '┣',
		North | East | West:         '┻',
		North | South | West:        '┫',
		East | South | West:         '┳',
		North | East | South | West: '╋',
	},
	Double: {
		East | West:                 '═',
		North | South:               '║',
		North:                       '║',
		South:                       '║',
		East:                        '═',
		West:                        '═',
		North | East:                '╚',
		North | West:                '╝',
		South | East:                '╔',
		South | West:                '╗',
		North | East | South:        '╠',
		North | East | West:         '╩',
		North | South | West:        '╣',
		East | South | West:         '╦',
		North | East | South | West: '╬',
	},
}

// Lookup returns the glyph for sig in the given line style. ok is false
// for the empty signature, which has no glyph; callers should fall back
// to a space.
func Lookup(ls LineStyle, sig Signature) (rune, bool) {
	t, ok := tables[ls]
	if !ok {
		t = tables[Thin]
	}
	r, ok := t[sig]

	return r, ok
}
