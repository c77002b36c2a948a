package router

import (
	"errors"

	"github.com/katalvlaran/textgrid/geom"
)

// Sentinel errors for router configuration.
var (
	// ErrNegativeBendPenalty indicates a negative BendPenalty was supplied.
	ErrNegativeBendPenalty = errors.New("router: bend penalty must be non-negative")
	// ErrOutOfBbox indicates a start or end point lies outside the
	// routing bounding box. Used by package textpath at construction time,
	// where an out-of-bbox endpoint is fatal.
	ErrOutOfBbox = errors.New("router: start or end lies outside bbox")
)

// Options configures a single Route call.
type Options struct {
	// BendPenalty is the extra cost charged when the search changes
	// direction. Must be non-negative. If WithBendPenalty is not supplied,
	// Route defaults it to the bbox's cell count, large enough to strongly discourage bends even when every cell in
	// the field carries zero weight.
	BendPenalty int
	hasBend     bool

	// FreeSet lists cells that may be (re-)entered at a discounted cost:
	// stepping into a free cell costs only its bend contribution, per the
	// path-sharing discount.
	FreeSet map[geom.Point]struct{}

	// StartDir, if set, constrains the direction of the first step out of
	// start. EndDir, if set, constrains the direction of the last step
	// into end. Both are unconstrained (any direction) when unset.
	StartDir    geom.Direction
	hasStartDir bool
	EndDir      geom.Direction
	hasEndDir   bool
}

// Option configures an Options value.
type Option func(*Options)

// WithBendPenalty sets the bend penalty. Panics with ErrNegativeBendPenalty
// if penalty is negative: an invalid bend penalty is a construction-time
// invariant violation, not a runtime condition.
func WithBendPenalty(penalty int) Option {
	if penalty < 0 {
		panic(ErrNegativeBendPenalty.Error())
	}

	return func(o *Options) {
		o.BendPenalty = penalty
		o.hasBend = true
	}
}

// WithFreeSet marks cells as free (discounted) to enter.
func WithFreeSet(free map[geom.Point]struct{}) Option {
	return func(o *Options) { o.FreeSet = free }
}

// WithStartDirection constrains the first step's direction out of start.
func WithStartDirection(d geom.Direction) Option {
	return func(o *Options) { o.StartDir = d; o.hasStartDir = true }
}

// WithEndDirection constrains the last step's direction into end.
func WithEndDirection(d geom.Direction) Option {
	return func(o *Options) { o.EndDir = d; o.hasEndDir = true }
}
