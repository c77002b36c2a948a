package textgrid

import (
	"github.com/katalvlaran/textgrid/compositor"
	"github.com/katalvlaran/textgrid/geom"
	"github.com/katalvlaran/textgrid/glyph"
	"github.com/katalvlaran/textgrid/object"
	"github.com/katalvlaran/textgrid/style"
	"github.com/katalvlaran/textgrid/textpath"
)

// Geometry and style, re-exported so most callers never need to import
// the geom or style packages directly.
type (
	Point       = geom.Point
	Direction   = geom.Direction
	BoundingBox = geom.BoundingBox
	Style       = style.Style
	Color       = style.Color
	Effect      = style.Effect
)

// Direction values, in the fixed Up, Down, Left, Right order used
// throughout the router and glyph selector.
const (
	Up    = geom.Up
	Down  = geom.Down
	Left  = geom.Left
	Right = geom.Right
)

// ParseStyle interprets a style string per the package's grammar (see
// style.Parse); MustParseStyle panics on a malformed string.
var (
	ParseStyle     = style.Parse
	MustParseStyle = style.MustParse
)

// Object is the capability every drawable implements: a stream of
// StyledChars plus a z-order used to break same-cell painting ties.
type Object = object.Object

// StyledChar is a single painted grid cell: glyph, style, routing weight
// and the cell it occupies.
type StyledChar = style.StyledChar

// Pixel, Group and Box are the three structural Object implementations.
// NewPixel, NewGroup, NewBox and Text mirror their package constructors.
type (
	Pixel = object.Pixel
	Group = object.Group
	Box   = object.Box
)

var (
	NewPixel = object.NewPixel
	NewGroup = object.NewGroup
	NewBox   = object.NewBox
	Text     = object.Text
)

// TextPath is a routed, glyph-decorated Object connecting two points.
// NewTextPath builds one immediately (routing and glyph selection are
// deferred to the first call to Chars).
type TextPath = textpath.Path

// NewTextPath constructs a TextPath from start to end, configured by
// opts (see the textpath package's With* options).
func NewTextPath(start, end Point, opts ...textpath.Option) *TextPath {
	return textpath.New(start, end, opts...)
}

// PathPair and NewMultiPath expose joint routing of several (start, end)
// pairs sharing one free set, the way a multi-connector diagram needs.
type PathPair = textpath.Pair

// NewMultiPath routes every pair in pairs against a shared cost field and
// free set, preserving input order in the returned slice.
func NewMultiPath(pairs []PathPair, opts ...textpath.BatchOption) []*TextPath {
	return textpath.NewBatch(pairs, opts...)
}

// Arrow is an endpoint decoration glyph keyed by direction, used with
// textpath.WithStartArrow / WithEndArrow.
type Arrow = glyph.Arrow

const (
	ArrowUp    = glyph.ArrowUp
	ArrowDown  = glyph.ArrowDown
	ArrowLeft  = glyph.ArrowLeft
	ArrowRight = glyph.ArrowRight
)

// Formatter renders one styled rune to its final string form (see
// compositor.PlainText and compositor.ANSIText).
type Formatter = compositor.Formatter

var (
	PlainText = compositor.PlainText
	ANSIText  = compositor.ANSIText
)

// Render composites objs by z-order and routing weight and serializes the
// result to a string using format, one row per line, trailing blank
// columns trimmed.
func Render(objs []Object, format Formatter) string {
	return compositor.Render(objs, format)
}
