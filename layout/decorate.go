package layout

import "github.com/gogpu/mathtex/geom"

// Decorate draws a line, or a line with an arrow head, over or under its
// single child. Nested decorations stack outward: when the child already
// carries a line on that side the new one is pushed one padding further.
func Decorate(fontSize float64, kind Decoration, children []*Box) *Box {
	if len(children) != 1 {
		return empty()
	}
	c := children[0]
	l := c.Lines
	vp := px(fontSize / 7)
	w := float64(c.Width)
	yPlace := 0

	p := geom.NewPath()
	if kind == Underline {
		l.Floor += vp
		if l.Underline {
			l.Basement += vp
		} else {
			l.Underline = true
		}
		p.MoveTo(0, float64(l.Floor))
		p.RelativeLineTo(w, 0)
	} else {
		if l.Overline {
			l.Waist += vp
			l.Floor += vp
			l.Basement += vp
			yPlace = vp
		} else {
			l.Ceiling -= vp
			l.Overline = true
		}
		y := float64(l.Ceiling)
		aw := float64(vp / 2)
		switch kind {
		case OverLeftArrow:
			p.MoveTo(w, y)
			p.RelativeLineTo(-w, 0)
			p.RelativeMoveTo(aw, -aw)
			p.RelativeLineTo(-aw, aw)
			p.RelativeLineTo(aw, aw)
		case OverRightArrow:
			p.MoveTo(0, y)
			p.RelativeLineTo(w, 0)
			p.RelativeMoveTo(-aw, -aw)
			p.RelativeLineTo(aw, aw)
			p.RelativeLineTo(-aw, aw)
		default:
			p.MoveTo(0, y)
			p.RelativeLineTo(w, 0)
		}
	}

	return &Box{
		Kind:     KindDecorated,
		Width:    c.Width,
		Height:   l.Basement,
		Lines:    l,
		FontSize: fontSize,
		Children: []Child{{X: 0, Y: yPlace, Box: c}},
		Strokes:  []Stroke{{Path: p, Width: decorationStroke}},
	}
}
