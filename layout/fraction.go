package layout

import "github.com/gogpu/mathtex/geom"

// FractionBox stacks num over den with a bar between them. The fraction's
// waist is the bar, which sits at the numerator's basement.
func FractionBox(fontSize float64, children []*Box) *Box {
	if len(children) != 2 {
		return empty()
	}
	num, den := children[0], children[1]

	waist := num.Lines.Basement
	lines := Lines{
		Ceiling:   num.Lines.Ceiling,
		Waist:     waist,
		Floor:     waist + den.Lines.Floor,
		Basement:  waist + den.Lines.Basement,
		Overline:  num.Lines.Overline,
		Underline: den.Lines.Underline,
	}

	margin := fontSize * reduceFactor / 4
	barLen := float64(max(num.Width, den.Width) + 2*int(margin))
	width := int(barLen + 2*margin)

	bar := geom.NewPath()
	bar.MoveTo(margin, float64(waist))
	bar.RelativeLineTo(barLen, 0)

	return &Box{
		Kind:     KindFraction,
		Width:    width,
		Height:   lines.Basement,
		Lines:    lines,
		FontSize: fontSize,
		Children: []Child{
			{X: (width - num.Width) / 2, Y: 0, Box: num},
			{X: (width - den.Width) / 2, Y: waist, Box: den},
		},
		Strokes: []Stroke{{Path: bar, Width: fractionStroke}},
	}
}
