package layout

import "github.com/gogpu/mathtex/geom"

// drawDelimiter appends the outline of the delimiter at index i to path.
// The delimiter spans the full height of its reference sibling: the nearest
// non-script sibling on the side it opens towards. A delimiter without a
// direction is anchored at its centre and takes the reference a script
// would.
func drawDelimiter(path *geom.Path, children []*Box, xs, ys []int, i int) {
	c := children[i]
	var x, d float64
	var ref int

	switch c.Delim.Dir {
	case DirLeft:
		x = float64(xs[i] + c.Width)
		d = -1
		ref = nextRef(children, i)
	case DirRight:
		x = float64(xs[i])
		d = 1
		ref = prevRef(children, i)
	default:
		x = float64(xs[i]) + float64(c.Width)/2
		d = bulge(c.Delim.Glyph)
		ref = reference(children, i)
	}
	if ref < 0 {
		ref = i
	}

	pw := float64(c.Width)
	ph := float64(children[ref].Lines.Basement)
	y := float64(ys[ref])

	path.MoveTo(x, y+pw/2)
	switch c.Delim.Glyph {
	case '(', ')':
		path.ArcTo(geom.R(x-pw, y+pw/2, x+pw, y+ph-pw/2), -90, d*180, true)

	case '[', ']':
		path.RelativeLineTo(pw*d/2, 0)
		path.RelativeLineTo(0, ph-pw)
		path.RelativeLineTo(-pw*d/2, 0)

	case '{', '}':
		path.ArcTo(geom.R(x-pw/2, y+pw/2, x+pw/2, y+pw*1.5), -90, d*90, true)
		path.RelativeLineTo(0, ph/2-pw*1.5)
		path.ArcTo(geom.R(x+pw*(d-0.5), y+ph/2-pw, x+pw*(d+0.5), y+ph/2), (d+1)*90, -d*90, true)
		path.ArcTo(geom.R(x+pw*(d-0.5), y+ph/2, x+pw*(d+0.5), y+ph/2+pw), -90, -d*90, true)
		path.RelativeLineTo(0, ph/2-pw*1.5)
		path.ArcTo(geom.R(x-pw/2, y+ph-pw*1.5, x+pw/2, y+ph-pw/2), (d-1)*90, d*90, true)

	case '<', '>':
		path.RelativeLineTo(pw*d, ph/2-pw/2)
		path.RelativeLineTo(-pw*d, ph/2-pw/2)

	case '|':
		path.RelativeLineTo(0, ph-pw)
	}
}

// bulge is the horizontal sense a direction-less glyph curves in: opening
// glyphs reach left from their anchor, closing ones right.
func bulge(g byte) float64 {
	switch {
	case isOpening(g):
		return -1
	case g == '|':
		return 0
	}
	return 1
}
