// Package textgrid renders composable 2D diagrams as styled Unicode text
// grids, with an automatic orthogonal path router as its centerpiece.
//
// 🚀 What is textgrid?
//
//	A small, dependency-light library that brings together:
//
//	  • Geometry primitives: integer points, bounding boxes, directions
//	  • An object model: pixels, groups, boxes and routed paths, all
//	    producing a common stream of styled characters
//	  • An orthogonal router: weighted shortest-path search with bend
//	    penalties and path-reuse discounts
//	  • A glyph selector: box-drawing characters chosen from local
//	    path connectivity
//	  • A compositor: a z-ordered, weighted painter that flattens every
//	    object onto one character grid
//
// ✨ Why choose textgrid?
//
//   - Deterministic   — identical inputs always render identical output
//   - Composable      — diagrams are built from small immutable objects
//   - Terminal-ready  — output is a plain string, style-escaped by the
//     caller's own formatter
//
// Under the hood, everything is organized under focused subpackages:
//
//	geom/        — Point, BoundingBox, Direction
//	style/       — Style, StyledChar, style-string grammar
//	object/      — Pixel, Group, Box, the Object capability interface
//	costfield/   — environment/barrier → penalty map, blocked set
//	router/      — the weighted orthogonal path search
//	glyph/       — box-drawing glyph selection from path connectivity
//	multipath/   — joint ordering of many (start,end) pairs
//	patharena/   — cyclic-reference rejection for path reuse graphs
//	textpath/    — the TextPath object, wiring the four packages above
//	compositor/  — the final paint-and-serialize pass
//
// This package re-exports the pieces most callers need so that a diagram
// can usually be built importing only "github.com/katalvlaran/textgrid".
//
//	go get github.com/katalvlaran/textgrid
package textgrid
