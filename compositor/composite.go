package compositor

import (
	"sort"

	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/style"
)

// Composite enumerates every obj's StyledChars, painted order stably
// sorted by ZOrder ascending (so a later or higher-z object's chars are
// considered later), drops NoWeight (barrier-only) chars, and resolves
// each painted cell to the maximum-weight char it received — ties broken
// by whichever char was considered later.
func Composite(objs []object.Object) (map[geom.Point]style.StyledChar, geom.BoundingBox) {
	ordered := make([]object.Object, len(objs))
	copy(ordered, objs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZOrder() < ordered[j].ZOrder()
	})

	painted := make(map[geom.Point]style.StyledChar)
	for _, obj := range ordered {
		for _, c := range obj.Chars() {
			if c.Weight.IsBarrierOnly() {
				continue
			}
			if existing, ok := painted[c.Point]; ok && c.Weight < existing.Weight {
				continue
			}
			painted[c.Point] = c
		}
	}

	boxes := make([]geom.BoundingBox, 0, len(painted))
	for p := range painted {
		boxes = append(boxes, geom.BoxOf(p))
	}

	return painted, geom.UnionAll(boxes...)
}
