package multipath

import "github.com/katalvlaran/textgrid/geom"

// Request is one (start, end) pair within a Route call, with optional
// per-pair entry/exit direction constraints mirroring router.Options'
// StartDir/EndDir.
type Request struct {
	Start, End geom.Point

	HasStartDir bool
	StartDir    geom.Direction
	HasEndDir   bool
	EndDir      geom.Direction
}

// Result is one routed pair's outcome. OK is false if no path existed
// for this pair given the field and free set active when it was routed —
// not an error, a zero-value outcome; Cells is nil in that case.
type Result struct {
	Cells []geom.Point
	OK    bool
}
