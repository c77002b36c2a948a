package object

import (
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/style"
)

// Group composes child Objects, optionally overlaying a Style and/or a
// Weight onto every child's characters, and optionally translating them.
// Groups are immutable: At and WithPenaltyGroup each return a new Group
// value that shares the underlying children
// slice, so translating or re-styling a Group never mutates its children.
type Group struct {
	children []Object

	styleOverlay    style.Style
	hasStyleOverlay bool

	weightOverlay    style.Weight
	hasWeightOverlay bool

	penaltyGroupOverlay string

	offset geom.Point
	z      int
}

// GroupOption configures a Group at construction time.
type GroupOption func(*Group)

// WithGroupStyle sets an overlay Style applied (via Style.Over) on top of
// every child character's own Style.
func WithGroupStyle(s style.Style) GroupOption {
	return func(g *Group) {
		g.styleOverlay = s
		g.hasStyleOverlay = true
	}
}

// WithGroupWeight overrides every child character's Weight with w.
func WithGroupWeight(w style.Weight) GroupOption {
	return func(g *Group) {
		g.weightOverlay = w
		g.hasWeightOverlay = true
	}
}

// WithGroupZ sets the Group's own z-order (default 0).
func WithGroupZ(z int) GroupOption {
	return func(g *Group) { g.z = z }
}

// NewGroup constructs a Group over children, applying opts in order.
func NewGroup(children []Object, opts ...GroupOption) Group {
	g := Group{children: children}
	for _, opt := range opts {
		opt(&g)
	}

	return g
}

// Chars implements Object: it flattens every child's characters,
// translating by the Group's accumulated offset and overlaying style,
// weight, and penalty-group tag where configured.
func (g Group) Chars() []style.StyledChar {
	var out []style.StyledChar
	for _, child := range g.children {
		for _, c := range child.Chars() {
			if g.hasStyleOverlay {
				c.Style = c.Style.Over(g.styleOverlay)
			}
			if g.hasWeightOverlay {
				c.Weight = g.weightOverlay
			}
			if g.penaltyGroupOverlay != "" {
				c.PenaltyGroup = g.penaltyGroupOverlay
			}
			c.Point = c.Point.Add(g.offset)
			out = append(out, c)
		}
	}

	return out
}

// ZOrder implements Object.
func (g Group) ZOrder() int {
	return g.z
}

// At returns a copy of g translated by delta, in addition to any offset
// already accumulated by a previous At call.
func (g Group) At(delta geom.Point) Group {
	g.offset = g.offset.Add(delta)

	return g
}

// WithPenaltyGroup returns a copy of g whose every child character's
// PenaltyGroup tag is overridden to tag, mirroring the source library's
// with_penalty_group combinator used to mark a connector's cells so a
// later cost field can discourage (or encourage) routing through it by
// name rather than by raw weight.
func (g Group) WithPenaltyGroup(tag string) Group {
	g.penaltyGroupOverlay = tag

	return g
}
