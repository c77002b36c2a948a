// Package multipath implements the joint multi-path optimizer: given n
// aligned (start, end) pairs sharing one cost field and bounding box, it
// routes them one at a time so that every path after the first may reuse
// the cells of every path routed before it for free, and returns the n
// resulting cell sequences in the caller's original order.
//
// This is a greedy contract, not a globally optimal joint router: each
// round picks the cheapest-looking unrouted pair (Manhattan distance, the
// allowed heuristic), routes it for real against the free set accumulated
// so far, and folds its cells into that free set before the next round.
// Ties are broken by the smaller input index, mirroring the deterministic
// tie-break grounded on prim_kruskal's and tsp/approx.go's
// greedy-with-tie-break idiom.
package multipath
