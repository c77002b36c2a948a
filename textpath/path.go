package textpath

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/textgrid/costfield"
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/glyph"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/router"
	"github.com/katalvlaran/textgrid/style"
)

// defaultBBoxMargin is the default bounding-box expansion: 2 cells beyond
// any endpoint or barrier/environment extremum, chosen large enough that
// the optimal path is never pinched against the bbox.
const defaultBBoxMargin = 2

// Path is a routed, styled axis-aligned line between start and end,
// computed lazily from a cost field built out of environment and
// barriers, optionally discounted by cells already painted by other
// paths.
type Path struct {
	start, end geom.Point

	hasStartDir bool
	startDir    geom.Direction
	hasEndDir   bool
	endDir      geom.Direction

	style    style.Style
	endStyle style.Style

	lineStyle      glyph.LineStyle
	bendPenalty    int
	hasBendPenalty bool
	weight         style.Weight
	penaltyGroup   string

	barriers    []object.Object
	environment []object.Object
	reused      []object.Object

	bbox    geom.BoundingBox
	hasBBox bool

	groupPenalties map[string]style.Weight

	startGlyph    rune
	hasStartGlyph bool
	endGlyph      rune
	hasEndGlyph   bool
	startArrow    glyph.Arrow
	hasStartArrow bool
	endArrow      glyph.Arrow
	hasEndArrow   bool
	arrowStyle    style.Style

	onUnroutable func(string)
	z            int

	once    sync.Once
	cells   []style.StyledChar
	routeOK bool
}

// New constructs a Path from start to end, applying opts in order. Panics
// with ErrOutOfBbox if an explicit WithBBox does not contain start or
// end: an out-of-bbox endpoint is a construction-time invariant
// violation, not a runtime condition.
func New(start, end geom.Point, opts ...Option) *Path {
	p := &Path{start: start, end: end, lineStyle: glyph.Thin}
	for _, opt := range opts {
		opt(p)
	}

	if p.hasBBox {
		if !p.bbox.Contains(start) || !p.bbox.Contains(end) {
			panic(ErrOutOfBbox.Error())
		}
	} else {
		p.bbox = defaultBBox(start, end, p.environment, p.barriers)
	}

	return p
}

// defaultBBox is the wrap-union of start, end, and every
// environment/barrier object's bounds, expanded by defaultBBoxMargin
// cells on every side.
func defaultBBox(start, end geom.Point, environment, barriers []object.Object) geom.BoundingBox {
	boxes := []geom.BoundingBox{geom.BoxOf(start), geom.BoxOf(end)}

	all := make([]object.Object, 0, len(environment)+len(barriers))
	all = append(all, environment...)
	all = append(all, barriers...)
	if len(all) > 0 {
		boxes = append(boxes, object.BoundsOf(all...))
	}

	return geom.UnionAll(boxes...).Expand(defaultBBoxMargin)
}

// Chars implements object.Object. The first call routes and renders the
// path; the result is memoized and every subsequent call returns a fresh
// copy of the cached cells, per Object's "returned slice is a fresh copy
// the caller may freely mutate" contract.
func (p *Path) Chars() []style.StyledChar {
	p.once.Do(p.materialize)

	return append([]style.StyledChar(nil), p.cells...)
}

// ZOrder implements object.Object.
func (p *Path) ZOrder() int {
	return p.z
}

// LastRouteOK reports whether the router found a path, forcing
// materialization if it has not already happened: a cheap explicit check
// for callers that need to know without inspecting the cell set.
func (p *Path) LastRouteOK() bool {
	p.once.Do(p.materialize)

	return p.routeOK
}

// materialize runs the cost-field build, the route search and the glyph
// selector exactly once.
func (p *Path) materialize() {
	field := costfield.Build(p.environment, p.barriers, p.start, p.end, costfield.WithGroupPenalties(p.groupPenalties))

	free := make(map[geom.Point]struct{})
	for _, rp := range p.reused {
		for _, c := range rp.Chars() {
			free[c.Point] = struct{}{}
		}
	}

	var routeOpts []router.Option
	if p.hasBendPenalty {
		routeOpts = append(routeOpts, router.WithBendPenalty(p.bendPenalty))
	}
	if len(free) > 0 {
		routeOpts = append(routeOpts, router.WithFreeSet(free))
	}
	if p.hasStartDir {
		routeOpts = append(routeOpts, router.WithStartDirection(p.startDir))
	}
	if p.hasEndDir {
		routeOpts = append(routeOpts, router.WithEndDirection(p.endDir))
	}

	cells, ok := router.Route(p.start, p.end, p.bbox, field, routeOpts...)
	p.routeOK = ok
	if !ok {
		if p.onUnroutable != nil {
			p.onUnroutable(fmt.Sprintf("textpath: no route from %v to %v", p.start, p.end))
		}

		return
	}

	reusedCells := make([]geom.Point, 0, len(free))
	for pt := range free {
		reusedCells = append(reusedCells, pt)
	}
	occupied := glyph.OccupiedSetOf(cells, reusedCells)

	p.cells = decorate(cells, occupied, p.style, p.endStyle, p.weight, p.penaltyGroup, p.lineStyle, p.selectOptions())
}

// selectOptions builds the glyph.Option slice for this path's endpoint
// decoration.
func (p *Path) selectOptions() []glyph.Option {
	var opts []glyph.Option
	if p.hasStartGlyph {
		opts = append(opts, glyph.WithStartGlyph(p.startGlyph))
	}
	if p.hasEndGlyph {
		opts = append(opts, glyph.WithEndGlyph(p.endGlyph))
	}
	if p.hasStartArrow {
		opts = append(opts, glyph.WithStartArrow(p.startArrow))
	}
	if p.hasEndArrow {
		opts = append(opts, glyph.WithEndArrow(p.endArrow))
	}
	opts = append(opts, glyph.WithArrowStyle(p.arrowStyle))

	return opts
}

// decorate runs the glyph selector over cells and overlays endStyle,
// weight and penaltyGroup onto the result: the rendering step shared by
// a single Path's own materialize and by NewBatch's already-routed
// results.
func decorate(cells []geom.Point, occupied map[geom.Point]struct{}, base, endStyle style.Style, weight style.Weight, penaltyGroup string, lineStyle glyph.LineStyle, selOpts []glyph.Option) []style.StyledChar {
	sel := glyph.Select(cells, occupied, lineStyle, base, selOpts...)

	for i := range sel {
		if i == 0 || i == len(sel)-1 {
			sel[i].Style = sel[i].Style.Over(endStyle)
		}
		sel[i].Weight = weight
		if penaltyGroup != "" {
			sel[i].PenaltyGroup = penaltyGroup
		}
	}

	return sel
}
