package paint

import (
	"math"

	"github.com/gogpu/mathtex/geom"
	"golang.org/x/image/vector"
)

// addPolyline adds one quad per segment of line, hw on each side of it,
// plus a square over every vertex so that joins have no notches. All
// polygons wind the same way, so overlaps accumulate instead of cancel.
func addPolyline(z *vector.Rasterizer, line []geom.Point, hw float64) {
	for i := 1; i < len(line); i++ {
		addSegment(z, line[i-1], line[i], hw)
	}
	for _, pt := range line {
		addSquare(z, pt, hw)
	}
}

func addSegment(z *vector.Rasterizer, a, b geom.Point, hw float64) {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return
	}
	n := geom.Pt(-d.Y/l*hw, d.X/l*hw)
	addQuad(z, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

func addSquare(z *vector.Rasterizer, c geom.Point, hw float64) {
	// Slightly smaller than the band so it only fills the join.
	r := hw * 0.7
	addQuad(z,
		geom.Pt(c.X-r, c.Y-r), geom.Pt(c.X+r, c.Y-r),
		geom.Pt(c.X+r, c.Y+r), geom.Pt(c.X-r, c.Y+r))
}

func addQuad(z *vector.Rasterizer, p0, p1, p2, p3 geom.Point) {
	// Normalise to a positive signed area so every polygon adds coverage.
	if cross(p0, p1, p2) < 0 {
		p1, p3 = p3, p1
	}
	z.MoveTo(float32(p0.X), float32(p0.Y))
	z.LineTo(float32(p1.X), float32(p1.Y))
	z.LineTo(float32(p2.X), float32(p2.Y))
	z.LineTo(float32(p3.X), float32(p3.Y))
	z.ClosePath()
}

func cross(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
