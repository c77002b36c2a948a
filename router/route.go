package router

import (
	"container/heap"

	"github.com/katalvlaran/textgrid/costfield"
	"github.com/katalvlaran/textgrid/geom"
)

// Route computes a minimum-cost axis-aligned path from start to end
// inside bbox, avoiding field.Blocked, paying field.Penalty on entry to
// a cell, paying a bend penalty on direction changes, and discounting
// entry to a cell in the configured free set to a bend-only cost.
//
// Returns (nil, false) if no path exists. This is not an error; callers
// (normally package textpath) translate a false ok into "produce zero
// cells".
func Route(start, end geom.Point, bbox geom.BoundingBox, field costfield.Field, opts ...Option) (path []geom.Point, ok bool) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasBend {
		o.BendPenalty = bbox.Area()
	}

	if !bbox.Contains(start) || !bbox.Contains(end) {
		return nil, false
	}

	useHeuristic := len(o.FreeSet) == 0

	startState := searchState{point: start}
	bestG := map[searchState]int{startState: 0}
	cameFrom := map[searchState]searchState{}

	pq := &frontier{}
	heap.Init(pq)
	seq := 0
	push := func(st searchState, g int) {
		f := g
		if useHeuristic {
			f += st.point.Manhattan(end)
		}
		heap.Push(pq, &item{state: st, g: g, f: f, seq: seq})
		seq++
	}
	push(startState, 0)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(*item)
		cur := top.state

		if g, ok := bestG[cur]; ok && top.g > g {
			continue // stale lazy-decrease-key entry
		}

		if cur.point == end && (!o.hasEndDir || (cur.hasDir && cur.dir == o.EndDir)) {
			return reconstruct(cur, cameFrom), true
		}

		for _, d := range geom.Directions {
			if cur.point == start && !cur.hasDir && o.hasStartDir && d != o.StartDir {
				continue
			}

			next := cur.point.Add(d.Vector())
			if !bbox.Contains(next) || field.IsBlocked(next) {
				continue
			}

			nextState := searchState{point: next, dir: d, hasDir: true}

			_, isFree := o.FreeSet[next]
			step := 1 + int(field.PenaltyAt(next))
			if cur.hasDir && cur.dir != d {
				step += o.BendPenalty
			}
			if isFree {
				step = o.BendPenalty
				if !cur.hasDir || cur.dir == d {
					step = 0
				}
			}

			g := top.g + step
			if existing, seen := bestG[nextState]; seen && existing <= g {
				continue
			}
			bestG[nextState] = g
			cameFrom[nextState] = cur
			push(nextState, g)
		}
	}

	return nil, false
}

// reconstruct walks cameFrom backward from end to start and reverses the
// result into start-to-end order.
func reconstruct(end searchState, cameFrom map[searchState]searchState) []geom.Point {
	var rev []geom.Point
	cur := end
	for {
		rev = append(rev, cur.point)
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		cur = prev
	}

	path := make([]geom.Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}

	return path
}
