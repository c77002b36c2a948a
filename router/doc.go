// Package router implements the weighted orthogonal path search: a
// best-first search over states of (Point, entry direction) that
// minimizes the sum of per-step costs, where a step costs 1 plus any
// penalty at the destination cell, plus a bend penalty on direction
// changes, discounted to a bend-only cost when the destination cell is a
// member of the caller-supplied free set (cells already painted by
// previously routed paths).
//
// The search uses a lazy-decrease-key binary heap: instead of decreasing
// an existing heap entry's key in place, a fresh, cheaper entry is pushed
// and the stale one is discarded when popped by comparing against the
// best known cost for that state. The graph is never materialized:
// states and their neighbours are generated on demand from the bounding
// box, blocked set and penalty map, because doing so for every (cell,
// direction) pair up front would cost the same O(W·H·4) memory for no
// benefit.
//
// Complexity: O(W·H·4·log(W·H)) time, O(W·H·4) memory, where W, H are the
// bounding box's dimensions.
package router
