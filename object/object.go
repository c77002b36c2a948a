package object

import (
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/style"
)

// Object is the capability every diagram element must provide: enumerate
// its own styled characters, and report the z-order used to break
// same-cell ties during compositing (later-painted / higher z wins; see
// package compositor).
type Object interface {
	// Chars enumerates every StyledChar this object contributes. The
	// returned slice is a fresh copy the caller may freely mutate.
	Chars() []style.StyledChar
	// ZOrder reports this object's paint order relative to its siblings.
	ZOrder() int
}

// BoundsOf returns the wrap-union bounding box of every StyledChar
// produced by objs. Returns the zero BoundingBox if objs collectively
// produce no characters.
func BoundsOf(objs ...Object) geom.BoundingBox {
	var boxes []geom.BoundingBox
	for _, o := range objs {
		for _, c := range o.Chars() {
			boxes = append(boxes, geom.BoxOf(c.Point))
		}
	}

	return geom.UnionAll(boxes...)
}
