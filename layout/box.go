package layout

import (
	"image/color"
	"math"

	"github.com/gogpu/mathtex/geom"
)

// Kind identifies what built a Box.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindDelimiter
	KindList
	KindFraction
	KindRadical
	KindDecorated
	KindArray
	KindCorrected
)

var kindNames = [...]string{
	KindEmpty:     "empty",
	KindText:      "text",
	KindDelimiter: "delimiter",
	KindList:      "list",
	KindFraction:  "fraction",
	KindRadical:   "radical",
	KindDecorated: "decorated",
	KindArray:     "array",
	KindCorrected: "corrected",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Lines holds the alignment references of a box, as offsets from its top
// edge, plus the decoration flags ancestors use to stack over- and
// underlines outward.
type Lines struct {
	Ceiling  int
	Waist    int
	Floor    int
	Basement int

	Overline  bool
	Underline bool
}

// DefaultLines derives the references from a single reference height
// (the text baseline): 4/14, 9/14, 1 and 18/14 of it, rounded.
func DefaultLines(ref int) Lines {
	return Lines{
		Ceiling:  (ref*4 + 7) / 14,
		Waist:    (ref*9 + 7) / 14,
		Floor:    ref,
		Basement: (ref*18 + 7) / 14,
	}
}

// shift moves the four references down by dy.
func (l Lines) shift(dy int) Lines {
	l.Ceiling += dy
	l.Waist += dy
	l.Floor += dy
	l.Basement += dy
	return l
}

// Delim describes the delimiter a KindDelimiter box stands for.
type Delim struct {
	Dir   Direction
	Glyph byte
}

// opens reports whether the delimiter starts a bracketed expression.
func (d *Delim) opens() bool {
	if d == nil {
		return false
	}
	switch d.Dir {
	case DirLeft:
		return true
	case DirNone:
		return isOpening(d.Glyph)
	}
	return false
}

func isOpening(g byte) bool {
	switch g {
	case '(', '[', '{', '<':
		return true
	}
	return false
}

// Stroke is a vector path to be stroked with the given line width, in the
// coordinate space of the box that owns it.
type Stroke struct {
	Path  *geom.Path
	Width float64
}

// Child is a box placed at an offset inside its parent.
type Child struct {
	X, Y int
	Box  *Box
}

// Box is a positioned node of the output tree.
type Box struct {
	Kind   Kind
	Width  int
	Height int
	Lines  Lines
	Hint   Hint

	// Leaf text; Baseline is the distance from the top to the baseline.
	Text     string
	FontSize float64
	Italic   bool
	Color    color.Color
	Baseline int

	// Set on KindDelimiter boxes.
	Delim *Delim

	Children []Child
	Strokes  []Stroke
}

// empty returns the zero-size box malformed constructs degrade to.
func empty() *Box {
	return &Box{Kind: KindEmpty}
}

// IsEmpty reports whether the box has no extent and no content.
func (b *Box) IsEmpty() bool {
	return b.Width == 0 && b.Height == 0 && len(b.Children) == 0 && b.Text == ""
}

// Walk calls fn for b and every descendant in depth-first order with the
// absolute position of each box's top-left corner, starting from (x, y).
// Returning false from fn skips the descendants of that box.
func (b *Box) Walk(x, y int, fn func(b *Box, x, y int) bool) {
	if b == nil || !fn(b, x, y) {
		return
	}
	for _, c := range b.Children {
		c.Box.Walk(x+c.X, y+c.Y, fn)
	}
}

// Depth returns the height of the box tree rooted at b.
func (b *Box) Depth() int {
	if b == nil {
		return 0
	}
	d := 0
	for _, c := range b.Children {
		d = max(d, c.Box.Depth())
	}
	return d + 1
}

// px rounds a length to whole pixels.
func px(v float64) int {
	return int(math.Round(v))
}
