package patharena

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/textpath"
)

// ErrCyclicPathReference is returned by Build when two or more
// descriptors' DependsOn relations form a cycle: a cyclic reuse graph is
// ill-defined and must be rejected at construction.
var ErrCyclicPathReference = errors.New("patharena: cyclic path reference")

// ErrUnknownDependency is returned by Build when a descriptor's DependsOn
// names an index outside the arena.
var ErrUnknownDependency = errors.New("patharena: dependency index out of range")

// color marks a descriptor's DFS visitation state.
type color int

const (
	white color = iota
	gray
	black
)

// Descriptor mirrors textpath.Option's construction parameters for one
// path, except reused paths are named by the indices of other
// descriptors in the same Arena (DependsOn) rather than by already-built
// object.Objects, since Go cannot construct two values that reference
// each other directly.
type Descriptor struct {
	Start, End geom.Point
	Opts       []textpath.Option
	// DependsOn lists indices (as returned by Add) of descriptors whose
	// routed cells this descriptor's path may reuse for free, wired in as
	// textpath.WithReusablePaths at Build time.
	DependsOn []int
}

// Arena collects Descriptors and materializes them into *textpath.Path
// values in dependency order.
type Arena struct {
	descriptors []Descriptor
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Add appends d and returns its stable index, to be used in a later
// descriptor's DependsOn.
func (a *Arena) Add(d Descriptor) int {
	a.descriptors = append(a.descriptors, d)

	return len(a.descriptors) - 1
}

// Build validates the DependsOn relation is acyclic (a White/Gray/Black
// DFS) and materializes every descriptor into a *textpath.Path, in
// topological order, so each descriptor's dependencies are already built
// by the time it is constructed. Returned paths are indexed exactly as
// Add returned them.
func (a *Arena) Build() ([]*textpath.Path, error) {
	order, err := a.topologicalOrder()
	if err != nil {
		return nil, err
	}

	built := make([]*textpath.Path, len(a.descriptors))
	for _, i := range order {
		d := a.descriptors[i]

		opts := make([]textpath.Option, 0, len(d.Opts)+1)
		opts = append(opts, d.Opts...)
		if len(d.DependsOn) > 0 {
			deps := make([]*textpath.Path, len(d.DependsOn))
			for j, dep := range d.DependsOn {
				deps[j] = built[dep]
			}
			opts = append(opts, textpath.WithReusablePaths(toObjects(deps)...))
		}

		built[i] = textpath.New(d.Start, d.End, opts...)
	}

	return built, nil
}

// toObjects upcasts a slice of *textpath.Path to object.Object, the type
// textpath.WithReusablePaths expects.
func toObjects(paths []*textpath.Path) []object.Object {
	out := make([]object.Object, len(paths))
	for i, p := range paths {
		out[i] = p
	}

	return out
}

// topologicalOrder runs the cycle-rejecting DFS and returns a
// dependency-first visitation order of descriptor indices.
func (a *Arena) topologicalOrder() ([]int, error) {
	state := make([]color, len(a.descriptors))
	order := make([]int, 0, len(a.descriptors))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case gray:
			return fmt.Errorf("%w: descriptor %d", ErrCyclicPathReference, i)
		case black:
			return nil
		}

		state[i] = gray
		for _, dep := range a.descriptors[i].DependsOn {
			if dep < 0 || dep >= len(a.descriptors) {
				return fmt.Errorf("%w: descriptor %d depends on %d", ErrUnknownDependency, i, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[i] = black
		order = append(order, i)

		return nil
	}

	for i := range a.descriptors {
		if state[i] == white {
			if err := visit(i); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}
