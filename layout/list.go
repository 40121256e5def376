package layout

import "github.com/gogpu/mathtex/geom"

// Stroke widths, in pixels.
const (
	delimiterStroke  = 4
	fractionStroke   = 2
	radicalStroke    = 2
	decorationStroke = 1.5
	ruleStroke       = 1.5
)

// ListBox lays siblings out left to right.
//
// Scripts are first re-anchored relative to their reference sibling; then
// every sibling is moved down so that all waists meet at the largest one.
// Horizontally, stacked script pairs share one column, the scripts of a
// collective operator are centred over and under it, and non-script
// siblings are separated by the gap of their spacing classes.
func ListBox(fontSize float64, children []*Box) *Box {
	b := &Box{Kind: KindList, FontSize: fontSize}
	n := len(children)
	if n == 0 {
		return b
	}

	lines := make([]Lines, n)
	for i, c := range children {
		lines[i] = c.Lines
		if c.Hint.Role.IsScript() {
			lines[i].Waist = scriptWaist(children, i)
		}
	}

	waist := lines[0].Waist
	below := lines[0].Basement - lines[0].Waist
	for _, l := range lines[1:] {
		waist = max(waist, l.Waist)
		below = max(below, l.Basement-l.Waist)
	}

	ys := make([]int, n)
	for i := range lines {
		ys[i] = waist - lines[i].Waist
		lines[i] = lines[i].shift(ys[i])
	}

	xs, width := placeHorizontally(fontSize, children)

	b.Width = width
	b.Height = waist + below
	b.Children = make([]Child, n)
	for i, c := range children {
		b.Children[i] = Child{X: xs[i], Y: ys[i], Box: c}
		// Ink below the basement still has to fit in the box.
		b.Height = max(b.Height, ys[i]+c.Height)
	}

	b.Lines = Lines{
		Ceiling:  lines[0].Ceiling,
		Waist:    waist,
		Floor:    lines[0].Floor,
		Basement: lines[0].Basement,
	}
	for _, l := range lines {
		b.Lines.Ceiling = min(b.Lines.Ceiling, l.Ceiling)
		b.Lines.Floor = max(b.Lines.Floor, l.Floor)
		b.Lines.Basement = max(b.Lines.Basement, l.Basement)
		b.Lines.Overline = b.Lines.Overline || l.Overline
		b.Lines.Underline = b.Lines.Underline || l.Underline
	}

	path := geom.NewPath()
	for i, c := range children {
		if c.Delim != nil {
			drawDelimiter(path, children, xs, ys, i)
		}
	}
	if !path.IsEmpty() {
		b.Strokes = append(b.Strokes, Stroke{Path: path, Width: delimiterStroke})
	}
	return b
}

// scriptWaist computes the waist that places script i against its
// reference sibling. Superscripts straddle the reference's ceiling and
// subscripts its floor; on a collective operator they sit fully above or
// below it. Without a usable reference the script hangs from, or rests on,
// the shared waist.
func scriptWaist(children []*Box, i int) int {
	s := children[i].Lines
	r := reference(children, i)
	var base Lines
	if r >= 0 {
		base = children[r].Lines
	}
	collective := r >= 0 && children[r].Hint.Class == ClassCollective

	if children[i].Hint.Role.IsSuperscript() {
		switch {
		case collective:
			return s.Basement + base.Waist - base.Ceiling
		case r >= 0 && base.Waist-base.Ceiling > s.Basement/2:
			return base.Waist - base.Ceiling + s.Basement/2
		default:
			return s.Basement
		}
	}
	switch {
	case collective:
		return base.Waist - base.Basement
	case r >= 0 && base.Floor-base.Waist > s.Basement/2:
		return base.Waist - base.Floor + s.Basement/2
	default:
		return 0
	}
}

// placeHorizontally returns the x offset of every sibling and the total
// width.
func placeHorizontally(fontSize float64, children []*Box) ([]int, int) {
	n := len(children)
	xs := make([]int, n)
	placed := make([]bool, n)
	paired := make([]bool, n)
	classes := ResolveClasses(children)

	x, prev := 0, -1
	for i := 0; i < n; i++ {
		if placed[i] {
			continue
		}
		c := children[i]
		w := c.Width

		if c.Hint.Role.IsScript() {
			if i > 0 && !paired[i-1] && c.Hint.Role.IsStacked() &&
				c.Hint.Role.complements(children[i-1].Hint.Role) {
				xs[i] = xs[i-1]
				x = xs[i-1] + max(children[i-1].Width, w)
				paired[i] = true
				continue
			}
			xs[i] = x
			x += w
			continue
		}

		if prev >= 0 {
			x += gap(classes[prev], classes[i], fontSize)
		}
		prev = i

		if classes[i] == ClassCollective {
			end := i + 1
			col := w
			for end < n && children[end].Hint.Role.IsScript() {
				col = max(col, children[end].Width)
				end++
			}
			xs[i] = x + (col-w)/2
			for k := i + 1; k < end; k++ {
				xs[k] = x + (col-children[k].Width)/2
				placed[k] = true
			}
			x += col
			continue
		}

		xs[i] = x
		x += w
	}
	return xs, x
}
