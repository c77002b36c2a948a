// Package glyph implements the box-drawing glyph selector: it maps a
// routed cell's 4-neighbourhood signature to a box-drawing rune in one of
// three line styles (thin, heavy, double), handles start/end overrides,
// and appends arrow decoration.
//
// The glyph tables in table.go are a fixed external contract: any renderer
// claiming compatibility with this module must emit these exact code
// points for these exact signatures.
package glyph
