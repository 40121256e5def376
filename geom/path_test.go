package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func approxEqual(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestPathRelative(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 20)
	p.RelativeLineTo(5, 0)
	p.RelativeLineTo(0, 7)
	p.RelativeMoveTo(-5, -7)
	p.RelativeLineTo(1, 1)

	want := []PathElement{
		MoveTo{Point: Pt(10, 20)},
		LineTo{Point: Pt(15, 20)},
		LineTo{Point: Pt(15, 27)},
		MoveTo{Point: Pt(10, 20)},
		LineTo{Point: Pt(11, 21)},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("Elements() mismatch (-want +got):\n%s", diff)
	}
	if got := p.CurrentPoint(); got != Pt(11, 21) {
		t.Errorf("CurrentPoint() = %v, want (11, 21)", got)
	}
}

func TestArcToEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		start      float64
		sweep      float64
		wantStart  Point
		wantEnd    Point
		wantCubics int
	}{
		{"top to bottom clockwise", -90, 180, Pt(0, -10), Pt(0, 10), 2},
		{"top to bottom counter-clockwise", -90, -180, Pt(0, -10), Pt(0, 10), 2},
		{"quarter", 0, 90, Pt(10, 0), Pt(0, 10), 1},
		{"quarter backwards", 180, -90, Pt(-10, 0), Pt(0, 10), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.ArcTo(R(-10, -10, 10, 10), tt.start, tt.sweep, true)
			elems := p.Elements()
			m, ok := elems[0].(MoveTo)
			if !ok {
				t.Fatalf("first element = %T, want MoveTo", elems[0])
			}
			if !approxEqual(m.Point, tt.wantStart) {
				t.Errorf("start = %v, want %v", m.Point, tt.wantStart)
			}
			if !approxEqual(p.CurrentPoint(), tt.wantEnd) {
				t.Errorf("end = %v, want %v", p.CurrentPoint(), tt.wantEnd)
			}
			if got := len(elems) - 1; got != tt.wantCubics {
				t.Errorf("cubic segments = %d, want %d", got, tt.wantCubics)
			}
		})
	}
}

func TestArcToCounterClockwisePassesLeft(t *testing.T) {
	p := NewPath()
	p.ArcTo(R(-10, -10, 10, 10), -90, -180, true)
	mid, ok := p.Elements()[1].(CubicTo)
	if !ok {
		t.Fatalf("element 1 = %T, want CubicTo", p.Elements()[1])
	}
	if !approxEqual(mid.Point, Pt(-10, 0)) {
		t.Errorf("midpoint = %v, want (-10, 0)", mid.Point)
	}
}

func TestArcToJoinsWithLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(R(0, 0, 10, 10), 0, 90, false)
	if _, ok := p.Elements()[1].(LineTo); !ok {
		t.Errorf("element 1 = %T, want LineTo", p.Elements()[1])
	}
}

func TestTranslate(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 2)
	p.CubicTo(1, 1, 2, 2, 3, 3)

	got := p.Translate(10, 100)
	want := []PathElement{
		MoveTo{Point: Pt(10, 100)},
		LineTo{Point: Pt(11, 102)},
		CubicTo{Control1: Pt(11, 101), Control2: Pt(12, 102), Point: Pt(13, 103)},
	}
	if diff := cmp.Diff(want, got.Elements()); diff != "" {
		t.Errorf("Translate() mismatch (-want +got):\n%s", diff)
	}
	// Original untouched.
	if p.Elements()[1].(LineTo).Point != Pt(1, 2) {
		t.Error("Translate modified the receiver")
	}
}

func TestFlatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(0, 5)
	p.ArcTo(R(0, 5, 10, 15), -90, 90, false)

	lines := p.Flatten(4)
	if len(lines) != 2 {
		t.Fatalf("Flatten() contours = %d, want 2", len(lines))
	}
	if len(lines[0]) != 2 {
		t.Errorf("first contour points = %d, want 2", len(lines[0]))
	}
	last := lines[1][len(lines[1])-1]
	if !approxEqual(last, Pt(10, 10)) {
		t.Errorf("arc end = %v, want (10, 10)", last)
	}
}

func TestRect(t *testing.T) {
	r := R(2, 4, 12, 8)
	if r.Width() != 10 || r.Height() != 4 {
		t.Errorf("size = %vx%v, want 10x4", r.Width(), r.Height())
	}
	if r.Center() != Pt(7, 6) {
		t.Errorf("Center() = %v, want (7, 6)", r.Center())
	}
}
