// Package compositor implements the z-ordered, weighted painter and
// serializer: it flattens every Object's StyledChars onto one character
// grid, resolves per-cell winners by weight (ties broken by
// later-in-render-order), and walks the result into a newline-separated
// string.
//
// Composite performs paint resolution and is exposed on its own so
// callers — and tests — can inspect the resolved grid without
// serializing it. Render adds the text walk through a caller-supplied
// Formatter: PlainText and ANSIText are the two formatters this module
// ships, grounded the way graph's facade packages re-export a default
// alongside the extension point.
package compositor
