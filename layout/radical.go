package layout

import "github.com/gogpu/mathtex/geom"

// reduceFactor is the size ratio between a construct and its reduced
// parts (scripts, inline fraction terms, radical index).
const reduceFactor = 0.75

// RadicalBox draws a root sign over the last child. With two children the
// first one is the index, tucked into the crook of the sign.
func RadicalBox(fontSize float64, children []*Box) *Box {
	if len(children) < 1 || len(children) > 2 {
		return empty()
	}
	radicand := children[len(children)-1]
	var index *Box
	if len(children) == 2 {
		index = children[0]
	}

	l := radicand.Lines
	signW := px(fontSize * reduceFactor)
	margin := px(fontSize * reduceFactor / 8)
	vp := px(fontSize / 7)

	x0, y0 := 0, 0
	x1, y1 := signW+margin, 0

	if l.Overline {
		l.Waist += vp
		l.Floor += vp
		l.Basement += vp
		y1 = vp
	} else {
		l.Ceiling -= vp
	}
	l.Floor += vp
	if l.Underline {
		l.Basement += vp
	}

	signH := float64(l.Floor - l.Ceiling)
	xp := float64(signW) / 14
	var yp float64
	if index == nil {
		yp = signH*0.625 + float64(l.Ceiling)
	} else {
		dx := float64(index.Width) - float64(signW)*10/14
		if dx > 0 {
			x1 += int(dx)
			xp += dx
		} else {
			x0 = int(-dx)
		}
		ih := index.Lines.Basement
		dy := ih - int(signH/2) - l.Ceiling
		if dy > 0 {
			l = l.shift(dy)
			y1 += dy
			yp = float64(ih) + signH*0.125
		} else {
			y0 = -dy
			yp = signH*0.625 + float64(l.Ceiling)
		}
		l.Ceiling = min(index.Lines.Ceiling, l.Ceiling)
	}
	l.Overline, l.Underline = true, true

	sign := geom.NewPath()
	sign.MoveTo(xp, yp)
	sign.RelativeLineTo(float64(signW)/13, -signH*0.125)
	sign.RelativeLineTo(float64(signW)*4/13, signH*0.5)
	sign.RelativeLineTo(float64(signW)*8/13, -signH)
	sign.RelativeLineTo(float64(radicand.Width+margin), 0)

	b := &Box{
		Kind:     KindRadical,
		Width:    x1 + radicand.Width + margin,
		Height:   l.Basement,
		Lines:    l,
		FontSize: fontSize,
		Strokes:  []Stroke{{Path: sign, Width: radicalStroke}},
	}
	if index != nil {
		b.Children = append(b.Children, Child{X: x0, Y: y0, Box: index})
	}
	b.Children = append(b.Children, Child{X: x1, Y: y1, Box: radicand})
	return b
}
