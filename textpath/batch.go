package textpath

import (
	"fmt"

	"github.com/katalvlaran/textgrid/costfield"
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/glyph"
	"github.com/katalvlaran/textgrid/multipath"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/style"
)

// Pair is one (start, end) request within a Batch: NewBatch routes
// every Pair together, sharing one cost field, one bbox, and one
// growing free set, so later pairs may reuse earlier pairs' cells for
// free, then renders each with its own style/weight/endpoint decoration.
type Pair struct {
	Start, End geom.Point

	HasStartDir bool
	StartDir    geom.Direction
	HasEndDir   bool
	EndDir      geom.Direction

	Style        style.Style
	EndStyle     style.Style
	Weight       style.Weight
	PenaltyGroup string

	StartGlyph    rune
	HasStartGlyph bool
	EndGlyph      rune
	HasEndGlyph   bool
	StartArrow    glyph.Arrow
	HasStartArrow bool
	EndArrow      glyph.Arrow
	HasEndArrow   bool
	ArrowStyle    style.Style
}

// BatchOptions configures NewBatch's shared, cross-pair parameters.
type BatchOptions struct {
	LineStyle      glyph.LineStyle
	BendPenalty    int
	hasBendPenalty bool
	Environment    []object.Object
	Barriers       []object.Object
	BBox           geom.BoundingBox
	hasBBox        bool
	GroupPenalties map[string]style.Weight
	OnUnroutable   func(string)
}

// BatchOption configures a BatchOptions value.
type BatchOption func(*BatchOptions)

// WithBatchLineStyle sets the shared glyph family every pair renders with.
func WithBatchLineStyle(ls glyph.LineStyle) BatchOption {
	return func(o *BatchOptions) { o.LineStyle = ls }
}

// WithBatchBendPenalty sets the shared router bend penalty. Panics with
// ErrNegativeBendPenalty if negative.
func WithBatchBendPenalty(penalty int) BatchOption {
	if penalty < 0 {
		panic(ErrNegativeBendPenalty.Error())
	}

	return func(o *BatchOptions) { o.BendPenalty = penalty; o.hasBendPenalty = true }
}

// WithBatchEnvironment lists Objects whose cells add a routing penalty,
// shared by every pair.
func WithBatchEnvironment(objs ...object.Object) BatchOption {
	return func(o *BatchOptions) { o.Environment = append(o.Environment, objs...) }
}

// WithBatchBarriers lists Objects whose cells the router may never enter,
// shared by every pair.
func WithBatchBarriers(objs ...object.Object) BatchOption {
	return func(o *BatchOptions) { o.Barriers = append(o.Barriers, objs...) }
}

// WithBatchBBox pins the shared routing bounding box explicitly.
func WithBatchBBox(b geom.BoundingBox) BatchOption {
	return func(o *BatchOptions) { o.BBox = b; o.hasBBox = true }
}

// WithBatchGroupPenalties sets the shared named penalty-group overrides.
func WithBatchGroupPenalties(m map[string]style.Weight) BatchOption {
	return func(o *BatchOptions) { o.GroupPenalties = m }
}

// WithBatchOnUnroutable sets a callback invoked once per unroutable pair.
func WithBatchOnUnroutable(fn func(string)) BatchOption {
	return func(o *BatchOptions) { o.OnUnroutable = fn }
}

// NewBatch routes every pair via multipath.Route and renders each
// result into a fully materialized *Path (LastRouteOK already resolved;
// no further routing happens on first Chars call). Returned paths are in
// the same order as pairs.
func NewBatch(pairs []Pair, opts ...BatchOption) []*Path {
	var o BatchOptions
	o.LineStyle = glyph.Thin
	for _, opt := range opts {
		opt(&o)
	}

	bbox := o.BBox
	if !o.hasBBox {
		bbox = defaultBatchBBox(pairs, o.Environment, o.Barriers)
	}

	field := buildSharedField(o.Environment, o.Barriers, pairs, o.GroupPenalties)

	bendPenalty := bbox.Area()
	if o.hasBendPenalty {
		bendPenalty = o.BendPenalty
	}

	requests := make([]multipath.Request, len(pairs))
	for i, pr := range pairs {
		requests[i] = multipath.Request{
			Start: pr.Start, End: pr.End,
			HasStartDir: pr.HasStartDir, StartDir: pr.StartDir,
			HasEndDir: pr.HasEndDir, EndDir: pr.EndDir,
		}
	}

	results := multipath.Route(requests, bbox, field, bendPenalty)

	cellSlices := make([][]geom.Point, len(results))
	for i, r := range results {
		cellSlices[i] = r.Cells
	}
	occupied := glyph.OccupiedSetOf(cellSlices...)

	out := make([]*Path, len(pairs))
	for i, pr := range pairs {
		out[i] = fromRouted(pr, results[i], occupied, o)
	}

	return out
}

// defaultBatchBBox unions every pair's endpoints with the shared
// environment/barriers, expanded by defaultBBoxMargin, mirroring
// defaultBBox for a single Path.
func defaultBatchBBox(pairs []Pair, environment, barriers []object.Object) geom.BoundingBox {
	boxes := make([]geom.BoundingBox, 0, len(pairs)*2+1)
	for _, pr := range pairs {
		boxes = append(boxes, geom.BoxOf(pr.Start), geom.BoxOf(pr.End))
	}

	all := make([]object.Object, 0, len(environment)+len(barriers))
	all = append(all, environment...)
	all = append(all, barriers...)
	if len(all) > 0 {
		boxes = append(boxes, object.BoundsOf(all...))
	}

	return geom.UnionAll(boxes...).Expand(defaultBBoxMargin)
}

// buildSharedField builds one costfield.Field for every pair, forcing
// every pair's own start and end unblocked (costfield.Build only forces
// open the single (start,end) pair it's given, so every other pair's
// endpoints are force-opened here too).
func buildSharedField(environment, barriers []object.Object, pairs []Pair, groupPenalties map[string]style.Weight) costfield.Field {
	var zero geom.Point
	field := costfield.Build(environment, barriers, zero, zero, costfield.WithGroupPenalties(groupPenalties))
	for _, pr := range pairs {
		delete(field.Blocked, pr.Start)
		delete(field.Blocked, pr.End)
	}

	return field
}

// fromRouted wraps one already-routed multipath.Result into a fully
// materialized *Path: its once is pre-fired so Chars never re-routes.
func fromRouted(pr Pair, res multipath.Result, occupied map[geom.Point]struct{}, o BatchOptions) *Path {
	p := &Path{
		start: pr.Start, end: pr.End,
		style: pr.Style, endStyle: pr.EndStyle,
		lineStyle: o.LineStyle, weight: pr.Weight, penaltyGroup: pr.PenaltyGroup,
		startGlyph: pr.StartGlyph, hasStartGlyph: pr.HasStartGlyph,
		endGlyph: pr.EndGlyph, hasEndGlyph: pr.HasEndGlyph,
		startArrow: pr.StartArrow, hasStartArrow: pr.HasStartArrow,
		endArrow: pr.EndArrow, hasEndArrow: pr.HasEndArrow,
		arrowStyle: pr.ArrowStyle,
	}
	p.routeOK = res.OK

	if res.OK {
		p.cells = decorate(res.Cells, occupied, p.style, p.endStyle, p.weight, p.penaltyGroup, p.lineStyle, p.selectOptions())
	} else if o.OnUnroutable != nil {
		o.OnUnroutable(fmt.Sprintf("textpath: no route from %v to %v", pr.Start, pr.End))
	}

	p.once.Do(func() {})

	return p
}
