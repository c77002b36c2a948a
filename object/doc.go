// Package object defines the diagram object model: the Object capability
// interface every diagram element implements, and the leaf/group/box
// variants built directly on it. TextPath, the fourth variant, lives in
// package textpath because it additionally depends on costfield, router
// and glyph.
//
// An Object is deliberately small: it can enumerate its own styled
// characters and report a z-order. Everything else — bounding boxes,
// style overlays, penalty-group tagging, translation — is built as a
// combinator on top of that one capability, rather than special-casing
// each variant's storage needs.
package object
