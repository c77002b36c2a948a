// Package style defines Style, the sum-of-slots attribute value that
// every rendered character in this module carries, and StyledChar, a
// glyph placed at a Point with a Style, a routing weight, and an
// optional penalty-group tag.
//
// Style is deliberately not a string. The string grammar consumed from
// diagram authors (colour names, "on <colour>", effect names, "not
// <effect>") is parsed at the boundary by Parse and rendered to terminal
// escapes by Style.ANSI; internally a Style is a struct with two optional colour slots
// and an effect bitset, so composition — "a.Over(b) yields every
// attribute of a except those whose slot is overridden by b" — is a
// cheap, allocation-free merge rather than string surgery.
//
// Composition is associative: (a.Over(b)).Over(c) == a.Over(b.Over(c))
// for any a, b, c, because each slot is resolved independently and effect
// bits combine by set union/difference regardless of grouping.
package style
