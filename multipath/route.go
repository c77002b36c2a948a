package multipath

import (
	"github.com/katalvlaran/textgrid/costfield"
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/router"
)

// Route solves every Request against one shared field and bbox, using a
// greedy contract:
//
//  1. free starts empty.
//  2. While unrouted pairs remain, estimate each one's cost via Manhattan
//     distance (the allowed cheap heuristic) and pick the smallest,
//     breaking ties by the smaller index.
//  3. Route that pair for real against the current free set, append its
//     cells to free, and record the result.
//
// Results are returned in the same order as requests, not in the order
// they were routed. bendPenalty and any extra router.Options are shared
// by every pair; WithFreeSet is supplied internally and must not be
// passed again in opts.
func Route(requests []Request, bbox geom.BoundingBox, field costfield.Field, bendPenalty int, opts ...router.Option) []Result {
	results := make([]Result, len(requests))
	done := make([]bool, len(requests))
	free := make(map[geom.Point]struct{})

	for remaining := len(requests); remaining > 0; remaining-- {
		next := nextCheapest(requests, done)

		req := requests[next]
		routeOpts := append([]router.Option{
			router.WithBendPenalty(bendPenalty),
			router.WithFreeSet(free),
		}, opts...)
		if req.HasStartDir {
			routeOpts = append(routeOpts, router.WithStartDirection(req.StartDir))
		}
		if req.HasEndDir {
			routeOpts = append(routeOpts, router.WithEndDirection(req.EndDir))
		}

		cells, ok := router.Route(req.Start, req.End, bbox, field, routeOpts...)
		results[next] = Result{Cells: cells, OK: ok}
		done[next] = true

		for _, c := range cells {
			free[c] = struct{}{}
		}
	}

	return results
}

// nextCheapest picks the not-yet-routed request with the smallest
// Manhattan estimate, the smaller index winning ties.
func nextCheapest(requests []Request, done []bool) int {
	best := -1
	bestCost := 0
	for i, req := range requests {
		if done[i] {
			continue
		}
		cost := req.Start.Manhattan(req.End)
		if best == -1 || cost < bestCost {
			best = i
			bestCost = cost
		}
	}

	return best
}
