// Package geom provides the vector geometry emitted by the layout engine:
// points, rectangles and paths built from moves, lines and arcs.
//
// Coordinates follow the usual screen convention: origin at the top-left,
// X grows right, Y grows down. Arc angles are given in degrees and increase
// clockwise on screen, so -90 is the top of an ellipse and 90 its bottom.
package geom

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Path represents a vector path. Relative operations are resolved against
// the current point at construction time, so every stored element carries
// absolute coordinates.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// RelativeMoveTo moves by (dx, dy) from the current point.
func (p *Path) RelativeMoveTo(dx, dy float64) {
	p.MoveTo(p.current.X+dx, p.current.Y+dy)
}

// RelativeLineTo draws a line by (dx, dy) from the current point.
func (p *Path) RelativeLineTo(dx, dy float64) {
	p.LineTo(p.current.X+dx, p.current.Y+dy)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// ArcTo appends an elliptical arc inscribed in rect, starting at startDeg and
// sweeping sweepDeg (negative sweeps run counter-clockwise on screen).
// With forceMoveTo the arc starts a new contour; otherwise a line joins the
// current point to the arc start.
func (p *Path) ArcTo(rect Rect, startDeg, sweepDeg float64, forceMoveTo bool) {
	c := rect.Center()
	rx := rect.Width() / 2
	ry := rect.Height() / 2

	a1 := startDeg * math.Pi / 180
	sweep := sweepDeg * math.Pi / 180
	start := Pt(c.X+rx*math.Cos(a1), c.Y+ry*math.Sin(a1))
	if forceMoveTo || len(p.elements) == 0 {
		p.MoveTo(start.X, start.Y)
	} else {
		p.LineTo(start.X, start.Y)
	}
	if sweep == 0 {
		return
	}

	// At most 90 degrees per cubic segment.
	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(sweep) / maxAngle))
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		p.arcSegment(c, rx, ry, s, s+step)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(c Point, rx, ry, a1, a2 float64) {
	// Control point distance from "Drawing an elliptical arc using
	// polylines, quadratic or cubic Bezier curves".
	d := a2 - a1
	alpha := math.Sin(d) * (math.Sqrt(4+3*math.Tan(d/2)*math.Tan(d/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := c.X+rx*cos1, c.Y+ry*sin1
	x2, y2 := c.X+rx*cos2, c.Y+ry*sin2

	p.CubicTo(
		x1-alpha*rx*sin1, y1+alpha*ry*cos1,
		x2+alpha*rx*sin2, y2-alpha*ry*cos2,
		x2, y2,
	)
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	d := Pt(dx, dy)
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		current:  p.current.Add(d),
	}
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements[i] = MoveTo{Point: e.Point.Add(d)}
		case LineTo:
			result.elements[i] = LineTo{Point: e.Point.Add(d)}
		case CubicTo:
			result.elements[i] = CubicTo{
				Control1: e.Control1.Add(d),
				Control2: e.Control2.Add(d),
				Point:    e.Point.Add(d),
			}
		}
	}
	return result
}

// Flatten converts the path into polylines, one per contour, approximating
// each cubic with the given number of line segments.
func (p *Path) Flatten(segments int) [][]Point {
	if segments < 1 {
		segments = 1
	}
	var (
		out  [][]Point
		cur  []Point
		last Point
	)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(cur) > 1 {
				out = append(out, cur)
			}
			cur = []Point{e.Point}
		case LineTo:
			if len(cur) == 0 {
				cur = []Point{last}
			}
			cur = append(cur, e.Point)
		case CubicTo:
			if len(cur) == 0 {
				cur = []Point{last}
			}
			for i := 1; i <= segments; i++ {
				cur = append(cur, cubicAt(last, e.Control1, e.Control2, e.Point, float64(i)/float64(segments)))
			}
		}
		last = endPoint(elem)
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

func endPoint(elem PathElement) Point {
	switch e := elem.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case CubicTo:
		return e.Point
	}
	return Point{}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
