// Package geom defines the integer geometry primitives shared by every
// other package in this module: Point, BoundingBox, and Direction.
//
// Coordinates follow a math-style orientation: x grows to the right, y
// grows upward. All arithmetic is exact integer arithmetic; there is no
// floating point anywhere in this package.
//
// Complexity: every operation in this package is O(1) unless stated
// otherwise (UnionAll over n boxes is O(n)).
package geom
