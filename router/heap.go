package router

import "github.com/katalvlaran/textgrid/geom"

// searchState is a search node: the cell reached and the direction the
// search stepped to reach it (hasDir is false only for the start state,
// which was not entered by any step).
type searchState struct {
	point  geom.Point
	dir    geom.Direction
	hasDir bool
}

// item is a single priority-queue entry: a candidate cost g for reaching
// state, queued with priority f = g + h and a monotonically increasing
// seq assigned at push time so that equal-f items pop in insertion order,
// keeping routing deterministic.
type item struct {
	state searchState
	g     int
	f     int
	seq   int
}

// frontier is a min-heap of *item ordered by (f, seq), implementing a
// lazy-decrease-key priority queue: cheaper states for an already-queued
// searchState are pushed fresh rather than updated in place, and stale
// pops are detected by the caller via a best-g table, applied here to
// (point, direction) states instead of vertex IDs.
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(*item))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}
