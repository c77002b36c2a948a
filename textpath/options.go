package textpath

import (
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/glyph"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/router"
	"github.com/katalvlaran/textgrid/style"
)

// Sentinel errors, both fatal at Path construction.
var (
	// ErrOutOfBbox indicates an explicit WithBBox does not contain start
	// or end. Aliases router.ErrOutOfBbox so callers can errors.Is against
	// either package.
	ErrOutOfBbox = router.ErrOutOfBbox
	// ErrNegativeBendPenalty indicates WithBendPenalty received a negative
	// value. Aliases router.ErrNegativeBendPenalty.
	ErrNegativeBendPenalty = router.ErrNegativeBendPenalty
)

// Option configures a Path at construction time.
type Option func(*Path)

// WithStartDirection constrains the first step's direction out of start.
func WithStartDirection(d geom.Direction) Option {
	return func(p *Path) { p.startDir = d; p.hasStartDir = true }
}

// WithEndDirection constrains the last step's direction into end.
func WithEndDirection(d geom.Direction) Option {
	return func(p *Path) { p.endDir = d; p.hasEndDir = true }
}

// WithStyle sets the Style carried by every non-endpoint cell.
func WithStyle(s style.Style) Option {
	return func(p *Path) { p.style = s }
}

// WithEndStyle sets the Style overlaid (via Style.Over) on top of Style
// at the path's first and last cell.
func WithEndStyle(s style.Style) Option {
	return func(p *Path) { p.endStyle = s }
}

// WithLineStyle selects the box-drawing glyph family.
func WithLineStyle(ls glyph.LineStyle) Option {
	return func(p *Path) { p.lineStyle = ls }
}

// WithBendPenalty sets the router's bend penalty. Panics with
// ErrNegativeBendPenalty if penalty is negative.
func WithBendPenalty(penalty int) Option {
	if penalty < 0 {
		panic(ErrNegativeBendPenalty.Error())
	}

	return func(p *Path) { p.bendPenalty = penalty; p.hasBendPenalty = true }
}

// WithWeight sets the routing Weight painted cells carry for compositor
// resolution (default 0).
func WithWeight(w style.Weight) Option {
	return func(p *Path) { p.weight = w }
}

// WithBarriers lists Objects whose cells the router may never enter.
func WithBarriers(objs ...object.Object) Option {
	return func(p *Path) { p.barriers = append(p.barriers, objs...) }
}

// WithEnvironment lists Objects whose cells add a routing penalty.
func WithEnvironment(objs ...object.Object) Option {
	return func(p *Path) { p.environment = append(p.environment, objs...) }
}

// WithReusablePaths lists Objects (normally other *Path values) whose
// painted cells this path may reuse for free, forwarded to the router as
// its free set.
func WithReusablePaths(objs ...object.Object) Option {
	return func(p *Path) { p.reused = append(p.reused, objs...) }
}

// WithBBox pins the routing bounding box explicitly instead of deriving
// one from start, end, environment and barriers.
func WithBBox(b geom.BoundingBox) Option {
	return func(p *Path) { p.bbox = b; p.hasBBox = true }
}

// WithStartGlyph overrides the glyph painted at the path's first cell.
func WithStartGlyph(r rune) Option {
	return func(p *Path) { p.startGlyph = r; p.hasStartGlyph = true }
}

// WithEndGlyph overrides the glyph painted at the path's last cell.
func WithEndGlyph(r rune) Option {
	return func(p *Path) { p.endGlyph = r; p.hasEndGlyph = true }
}

// WithStartArrow paints the caller-chosen arrow a at the path's first
// cell instead of a corner/straight glyph.
func WithStartArrow(a glyph.Arrow) Option {
	return func(p *Path) { p.startArrow = a; p.hasStartArrow = true }
}

// WithEndArrow paints the caller-chosen arrow a at the path's last cell
// instead of a corner/straight glyph.
func WithEndArrow(a glyph.Arrow) Option {
	return func(p *Path) { p.endArrow = a; p.hasEndArrow = true }
}

// WithArrowStyle sets the Style appended to whichever endpoint carries an
// arrow (WithStartArrow and/or WithEndArrow).
func WithArrowStyle(s style.Style) Option {
	return func(p *Path) { p.arrowStyle = s }
}

// WithPenaltyGroup tags every cell this path paints with a named penalty
// group, so a later TextPath's WithGroupPenalties cost field can treat
// this path's corridor as a named-strength obstacle independent of
// free-set reuse.
func WithPenaltyGroup(tag string) Option {
	return func(p *Path) { p.penaltyGroup = tag }
}

// WithGroupPenalties overrides this path's own cost-field contribution
// for environment StyledChars tagged with a matching PenaltyGroup.
func WithGroupPenalties(m map[string]style.Weight) Option {
	return func(p *Path) { p.groupPenalties = m }
}

// WithOnUnroutable sets a callback invoked (with a short diagnostic
// message) if the router finds no path. nil (the default) is a no-op;
// an unroutable path is never a returned error, only a zero-cell result.
func WithOnUnroutable(fn func(string)) Option {
	return func(p *Path) { p.onUnroutable = fn }
}

// WithZ sets the Path's z-order.
func WithZ(z int) Option {
	return func(p *Path) { p.z = z }
}
