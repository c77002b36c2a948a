// Package patharena models a TextPath reuse graph: a TextPath may be
// listed in another TextPath's reused-paths set, and that reuse graph may
// not be expressed directly in Go, since constructing a value that
// depends on another not-yet-constructed value is impossible with plain
// struct literals.
//
// Arena holds path descriptors keyed by a stable int index instead, each
// recording the indices of the descriptors whose routed cells it may
// reuse for free. Build runs a White/Gray/Black DFS over that depends-on
// relation to reject a cyclic reuse graph with ErrCyclicPathReference,
// then materializes every descriptor into a *textpath.Path in topological
// order, so a descriptor's dependencies are always already built by the
// time it routes.
package patharena
