// Package layout turns a tree of layout nodes into positioned boxes.
//
// The parser produces Nodes bottom-up; a Builder measures the leaves with an
// injected Measurer and composes every construct into a Box carrying its
// size, four alignment references, child offsets and the vector strokes
// (fraction bars, radical signs, delimiters, rules) a host has to paint.
//
// # Alignment references
//
// Every box exposes four horizontal lines measured from its top edge:
//
//	Ceiling   top of capitals
//	Waist     vertical centre used to align siblings, fractions and scripts
//	Floor     baseline
//	Basement  bottom of descenders
//
// Leaves derive them from the text baseline (see DefaultLines); composite
// constructs compute them from their children.
//
// The construct routines (ListBox, FractionBox, RadicalBox, Decorate,
// ArrayBox, Correct) operate on already-built boxes and never fail: a wrong
// number of children yields an empty zero-size box.
package layout

import "image/color"

// Node is a layout request produced by the parser.
// The concrete types are *List, *Text, *Delimiter, *Fraction, *Radical,
// *Decorated, *Array and *Corrected.
type Node interface {
	hintRef() *Hint
}

// Base carries the layout hint every node has.
type Base struct {
	Hint Hint
}

func (b *Base) hintRef() *Hint { return &b.Hint }

// HintOf returns a pointer to the node's hint, or nil for a nil node.
func HintOf(n Node) *Hint {
	if n == nil {
		return nil
	}
	return n.hintRef()
}

// List is a horizontal run of siblings: a group body.
type List struct {
	Base
	FontSize float64
	Children []Node
}

// Text is a run of text measured by the host.
type Text struct {
	Base
	Text     string
	FontSize float64
	Italic   bool
	Color    color.Color // nil means the host's default
}

// Delimiter is a zero-content placeholder for a stretchy delimiter
// (\left( or \right] for example). The glyph is drawn as vector strokes
// spanning the opened expression.
type Delimiter struct {
	Base
	FontSize float64
	Dir      Direction
	Glyph    byte // one of ()[]{}<>|
}

// Fraction stacks Children[0] (numerator) over Children[1] (denominator).
type Fraction struct {
	Base
	FontSize float64
	Children []Node
}

// Radical is a root sign over its last child (the radicand). With two
// children the first is the index.
type Radical struct {
	Base
	FontSize float64
	Children []Node
}

// Decorated draws a line or arrow over or under its single child.
type Decorated struct {
	Base
	FontSize float64
	Kind     Decoration
	Children []Node
}

// Array is a grid of cells. A cell whose hint has NewRow starts a row.
// Columns holds the column specification, e.g. "rc||l|".
type Array struct {
	Base
	FontSize float64
	Columns  string
	Cells    []Node
}

// Corrected replaces the alignment references of a glyph whose font
// metrics do not describe its ink, using the named correction.
type Corrected struct {
	Base
	Key   string
	Child Node
}
