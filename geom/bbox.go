package geom

// BoundingBox is an inclusive integer rectangle: every cell with
// Left <= x <= Right and Bottom <= y <= Top lies inside it.
type BoundingBox struct {
	Left, Right, Bottom, Top int
}

// Width returns the number of columns spanned by b.
func (b BoundingBox) Width() int {
	return b.Right - b.Left + 1
}

// Height returns the number of rows spanned by b.
func (b BoundingBox) Height() int {
	return b.Top - b.Bottom + 1
}

// Area returns Width * Height.
func (b BoundingBox) Area() int {
	return b.Width() * b.Height()
}

// Contains reports whether p lies inside b, inclusive of the border.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

// BoxOf returns the degenerate 1x1 bounding box containing only p.
func BoxOf(p Point) BoundingBox {
	return BoundingBox{Left: p.X, Right: p.X, Bottom: p.Y, Top: p.Y}
}

// Union returns the smallest bounding box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Left:   min(b.Left, o.Left),
		Right:  max(b.Right, o.Right),
		Bottom: min(b.Bottom, o.Bottom),
		Top:    max(b.Top, o.Top),
	}
}

// UnionAll returns the wrap-union of every box in boxes. Returns the zero
// BoundingBox if boxes is empty.
func UnionAll(boxes ...BoundingBox) BoundingBox {
	if len(boxes) == 0 {
		return BoundingBox{}
	}

	result := boxes[0]
	for _, bb := range boxes[1:] {
		result = result.Union(bb)
	}

	return result
}

// Expand returns b grown by margin cells on every side.
func (b BoundingBox) Expand(margin int) BoundingBox {
	return BoundingBox{
		Left:   b.Left - margin,
		Right:  b.Right + margin,
		Bottom: b.Bottom - margin,
		Top:    b.Top + margin,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
