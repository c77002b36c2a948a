// Package textpath implements TextPath: the Object variant that wires
// costfield, router and glyph together into a single routed, styled
// path.
//
// A Path is built with New, configured with functional Options the way
// router.Option configures its owner, and materializes its cell-set
// lazily: the first call to Chars (or LastRouteOK) runs the cost-field
// build, the route search and the glyph selection exactly once, then
// memoizes the result. Since a Path is immutable after construction, a
// one-shot sync.Once cache is enough to guarantee it computes its routed
// cell-set only once no matter how many times it is rendered.
//
// Unroutable is not an error: if the router finds no path, Chars returns
// no cells and LastRouteOK reports false; an optional construction-time
// callback may log the event.
package textpath
