package layout

import "github.com/gogpu/mathtex/geom"

// ColumnRules parses an array column specification such as "rc||l|".
// It returns the alignment letter of each column (l, c or r) and the
// column indices before which a vertical rule is drawn; an index equal to
// the column count is the right edge. Repeated bars collapse into one
// rule and any other character is ignored.
func ColumnRules(spec string) (aligns []byte, rules []int) {
	for i := 0; i < len(spec); i++ {
		switch ch := spec[i]; ch {
		case 'l', 'c', 'r':
			aligns = append(aligns, ch)
		case '|':
			if len(rules) == 0 || rules[len(rules)-1] != len(aligns) {
				rules = append(rules, len(aligns))
			}
		}
	}
	return aligns, rules
}

// ArrayBox arranges cells into a grid. A cell tagged NewRow starts a new row;
// the first cell always does. Rows are as tall as their tallest
// ceiling-to-floor span and columns as wide as their widest cell, with a
// padding of half the font size around every cell.
func ArrayBox(fontSize float64, columns string, cells []*Box) *Box {
	if len(cells) == 0 {
		return empty()
	}

	var colW, rowH []int
	row, col := -1, 0
	for i, c := range cells {
		if i == 0 || c.Hint.NewRow {
			rowH = append(rowH, 0)
			row++
			col = 0
		}
		rowH[row] = max(rowH[row], c.Lines.Floor-c.Lines.Ceiling)
		if col == len(colW) {
			colW = append(colW, 0)
		}
		colW[col] = max(colW[col], c.Width)
		col++
	}

	padding := px(fontSize / 2)
	xPos := cumulative(colW, padding)
	yPos := cumulative(rowH, padding)
	width, height := xPos[len(colW)], yPos[len(rowH)]

	aligns, rules := ColumnRules(columns)

	b := &Box{
		Kind:     KindArray,
		Width:    width,
		Height:   height,
		FontSize: fontSize,
		Lines: Lines{
			Ceiling:   padding,
			Waist:     height / 2,
			Floor:     height - padding,
			Basement:  height,
			Overline:  true,
			Underline: true,
		},
		Children: make([]Child, 0, len(cells)),
	}

	row, col = -1, 0
	for i, c := range cells {
		if i == 0 || c.Hint.NewRow {
			row++
			col = 0
		}
		align := byte('c')
		if col < len(aligns) {
			align = aligns[col]
		}
		x := xPos[col]
		switch align {
		case 'l':
		case 'r':
			x += colW[col] - c.Width
		default:
			x += (colW[col] - c.Width) / 2
		}
		y := yPos[row] + (rowH[row]-c.Lines.Floor-c.Lines.Ceiling)/2
		b.Children = append(b.Children, Child{X: x, Y: y, Box: c})
		col++
	}

	p := geom.NewPath()
	for _, r := range rules {
		if r > len(colW) {
			break
		}
		p.MoveTo(float64(xPos[r]-padding/2), float64(padding/2))
		p.RelativeLineTo(0, float64(height-padding))
	}
	if !p.IsEmpty() {
		b.Strokes = []Stroke{{Path: p, Width: ruleStroke}}
	}
	return b
}

// cumulative returns the start offset of every span when spans are laid
// end to end with pad before each one, followed by the total extent.
func cumulative(spans []int, pad int) []int {
	pos := make([]int, len(spans)+1)
	pos[0] = pad
	for i, s := range spans {
		pos[i+1] = pos[i] + s + pad
	}
	return pos
}
