package style

import (
	"math"

	"github.com/katalvlaran/textgrid/geom"
)

// Weight is the non-negative integer strength the compositor uses to pick
// a winner when two StyledChars share a cell; higher wins.
type Weight uint32

// NoWeight is the sentinel meaning "purely a barrier — never painted".
// A StyledChar carrying NoWeight contributes no compositor-visible pixel
// but, when listed as a barrier, still blocks the router.
const NoWeight Weight = math.MaxUint32

// IsBarrierOnly reports whether w is the NoWeight sentinel.
func (w Weight) IsBarrierOnly() bool {
	return w == NoWeight
}

// StyledChar is a single glyph painted at a Point with a Style, a routing
// Weight, and an optional penalty-group tag used by the cost field
// builder to apply a named override strength instead of Weight itself.
type StyledChar struct {
	Glyph        rune
	Style        Style
	Weight       Weight
	Point        geom.Point
	PenaltyGroup string
}
