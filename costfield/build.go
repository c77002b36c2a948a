package costfield

import (
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/style"
)

// Field is the router's view of the world: blocked marks cells the router
// may never enter, and Penalty adds a per-cell step cost on top of the
// router's base step cost of 1.
type Field struct {
	Blocked map[geom.Point]struct{}
	Penalty map[geom.Point]style.Weight
}

// IsBlocked reports whether p is forbidden.
func (f Field) IsBlocked(p geom.Point) bool {
	_, ok := f.Blocked[p]

	return ok
}

// PenaltyAt returns the accumulated penalty at p, or 0 if none.
func (f Field) PenaltyAt(p geom.Point) style.Weight {
	return f.Penalty[p]
}

// Options configures Build.
type Options struct {
	// GroupPenalties, if set, overrides an environment StyledChar's own
	// Weight with GroupPenalties[tag] whenever the char's PenaltyGroup
	// equals a key present in the map: a named penalty-group override,
	// e.g. demo.py's group_penalties combinator.
	GroupPenalties map[string]style.Weight
}

// Option configures an Options value.
type Option func(*Options)

// WithGroupPenalties sets the named penalty-group override map.
func WithGroupPenalties(m map[string]style.Weight) Option {
	return func(o *Options) { o.GroupPenalties = m }
}

// Build accumulates a Field from environment (penalty contributors) and
// barriers (blockers): multiple objects on the same cell sum their
// penalties; a NoWeight StyledChar contributes no penalty on its own but
// still blocks if it appears in barriers; start and end are always forced
// unblocked since they are endpoints, not obstacles.
func Build(environment, barriers []object.Object, start, end geom.Point, opts ...Option) Field {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	f := Field{
		Blocked: make(map[geom.Point]struct{}),
		Penalty: make(map[geom.Point]style.Weight),
	}

	for _, obj := range environment {
		for _, c := range obj.Chars() {
			w, contributes := contribution(c, o)
			if !contributes {
				continue
			}
			f.Penalty[c.Point] += w
		}
	}

	for _, obj := range barriers {
		for _, c := range obj.Chars() {
			f.Blocked[c.Point] = struct{}{}
		}
	}

	delete(f.Blocked, start)
	delete(f.Blocked, end)

	return f
}

// contribution resolves the penalty a single environment StyledChar adds,
// applying the named penalty-group override if configured.
func contribution(c style.StyledChar, o Options) (style.Weight, bool) {
	if c.PenaltyGroup != "" && o.GroupPenalties != nil {
		if w, ok := o.GroupPenalties[c.PenaltyGroup]; ok {
			return w, true
		}
	}

	if c.Weight.IsBarrierOnly() {
		return 0, false
	}

	return c.Weight, true
}
