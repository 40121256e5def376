package layout

// Builder turns a Node tree into a Box tree, measuring text leaves with
// its Measurer.
type Builder struct {
	m Measurer
}

// NewBuilder returns a Builder measuring text with m.
func NewBuilder(m Measurer) *Builder {
	return &Builder{m: m}
}

// Build lays out n and its descendants bottom-up. A nil node yields an
// empty box. The hint of every node is copied onto its box so the parent
// construct can read it.
func (b *Builder) Build(n Node) *Box {
	if n == nil {
		return empty()
	}
	box := b.build(n)
	box.Hint = *n.hintRef()
	return box
}

func (b *Builder) build(n Node) *Box {
	switch n := n.(type) {
	case *Text:
		box := textBox(b.m, n.Text, n.FontSize, n.Italic)
		box.Color = n.Color
		return box
	case *Delimiter:
		// Measured as a space so it takes the width of one in the
		// current size; the glyph itself is stroked by the list.
		box := textBox(b.m, " ", n.FontSize, false)
		box.Kind = KindDelimiter
		box.Text = ""
		box.Delim = &Delim{Dir: n.Dir, Glyph: n.Glyph}
		return box
	case *List:
		return ListBox(n.FontSize, b.buildAll(n.Children))
	case *Fraction:
		return FractionBox(n.FontSize, b.buildAll(n.Children))
	case *Radical:
		return RadicalBox(n.FontSize, b.buildAll(n.Children))
	case *Decorated:
		return Decorate(n.FontSize, n.Kind, b.buildAll(n.Children))
	case *Array:
		return ArrayBox(n.FontSize, n.Columns, b.buildAll(n.Cells))
	case *Corrected:
		child := b.Build(n.Child)
		out := Correct(n.Key, child)
		if out == child {
			// Unknown key: keep the child but give it its own hint slot.
			cp := *child
			out = &cp
		}
		return out
	}
	return empty()
}

func (b *Builder) buildAll(nodes []Node) []*Box {
	boxes := make([]*Box, 0, len(nodes))
	for _, n := range nodes {
		boxes = append(boxes, b.Build(n))
	}
	return boxes
}
