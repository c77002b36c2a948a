// Package styleparser tokenizes and interprets the style-string grammar:
// whitespace-separated colour names, "on <colour>" backgrounds, effect
// names, and "not <effect>" clears.
//
// This package is intentionally isolated behind style.Parse, a small,
// doc-first surface: callers never import styleparser directly.
package styleparser
