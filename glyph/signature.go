package glyph

import "github.com/katalvlaran/textgrid/geom"

// Signature is the 4-bit NESW neighbour-occupancy pattern of a path cell:
// which of its four axis-aligned neighbours are also path cells.
type Signature uint8

const (
	North Signature = 1 << iota
	East
	South
	West
)

// SignatureOf builds a Signature from the set of directions in which cell
// has an occupied path neighbour.
func SignatureOf(hasNorth, hasEast, hasSouth, hasWest bool) Signature {
	var sig Signature
	if hasNorth {
		sig |= North
	}
	if hasEast {
		sig |= East
	}
	if hasSouth {
		sig |= South
	}
	if hasWest {
		sig |= West
	}

	return sig
}

// directionBit maps a geom.Direction to its Signature bit.
func directionBit(d geom.Direction) Signature {
	switch d {
	case geom.Up:
		return North
	case geom.Right:
		return East
	case geom.Down:
		return South
	case geom.Left:
		return West
	default:
		return 0
	}
}
