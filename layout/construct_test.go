package layout

import (
	"image/color"
	"testing"

	"github.com/gogpu/mathtex/geom"
	"github.com/google/go-cmp/cmp"
)

// TestFraction_Arity tests that a fraction needs exactly two children.
func TestFraction_Arity(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		kids := make([]*Box, n)
		for i := range kids {
			kids[i] = leaf(t, "x", 14)
		}
		if b := FractionBox(14, kids); b.Kind != KindEmpty || !b.IsEmpty() {
			t.Errorf("Fraction with %d children = %v, want empty", n, b.Kind)
		}
	}
}

// TestFraction_Lines tests fraction references and bar geometry.
func TestFraction_Lines(t *testing.T) {
	num := leaf(t, "ab", 10.5)
	den := leaf(t, "c", 10.5)
	b := FractionBox(14, []*Box{num, den})

	if b.Lines.Waist != num.Lines.Basement {
		t.Errorf("Waist = %d, want numerator basement %d", b.Lines.Waist, num.Lines.Basement)
	}
	if want := num.Lines.Basement + den.Lines.Basement; b.Height != want {
		t.Errorf("Height = %d, want %d", b.Height, want)
	}
	if b.Lines.Ceiling != num.Lines.Ceiling {
		t.Errorf("Ceiling = %d, want %d", b.Lines.Ceiling, num.Lines.Ceiling)
	}
	if len(b.Strokes) != 1 || b.Strokes[0].Width != fractionStroke {
		t.Fatalf("Strokes = %+v, want one bar", b.Strokes)
	}
	pts := b.Strokes[0].Path.Flatten(1)
	bar := pts[0][1].X - pts[0][0].X
	if bar < float64(max(num.Width, den.Width)) {
		t.Errorf("bar length %v shorter than widest term", bar)
	}
	if pts[0][0].Y != float64(b.Lines.Waist) {
		t.Errorf("bar y = %v, want waist %d", pts[0][0].Y, b.Lines.Waist)
	}
	for i, c := range b.Children {
		if c.X < 0 || c.X+c.Box.Width > b.Width {
			t.Errorf("child %d at x=%d overflows width %d", i, c.X, b.Width)
		}
	}
	if b.Children[1].Y != b.Lines.Waist {
		t.Errorf("denominator y = %d, want %d", b.Children[1].Y, b.Lines.Waist)
	}
}

// TestRadical_Arity tests that a radical takes one or two children.
func TestRadical_Arity(t *testing.T) {
	if b := RadicalBox(14, nil); b.Kind != KindEmpty {
		t.Errorf("RadicalBox() = %v, want empty", b.Kind)
	}
	kids := []*Box{leaf(t, "a", 14), leaf(t, "b", 14), leaf(t, "c", 14)}
	if b := RadicalBox(14, kids); b.Kind != KindEmpty {
		t.Errorf("RadicalBox(3 children) = %v, want empty", b.Kind)
	}
}

// TestRadical_NoIndex tests the sign over a lone radicand.
func TestRadical_NoIndex(t *testing.T) {
	rad := leaf(t, "x", 14)
	b := RadicalBox(14, []*Box{rad})

	signW := px(14 * reduceFactor)
	margin := px(14 * reduceFactor / 8)
	vp := px(14.0 / 7)

	if len(b.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(b.Children))
	}
	if got := b.Children[0].X; got != signW+margin {
		t.Errorf("radicand x = %d, want %d", got, signW+margin)
	}
	if want := signW + margin + rad.Width + margin; b.Width != want {
		t.Errorf("Width = %d, want %d", b.Width, want)
	}
	if want := rad.Lines.Ceiling - vp; b.Lines.Ceiling != want {
		t.Errorf("Ceiling = %d, want %d", b.Lines.Ceiling, want)
	}
	if want := rad.Lines.Floor + vp; b.Lines.Floor != want {
		t.Errorf("Floor = %d, want %d", b.Lines.Floor, want)
	}
	if !b.Lines.Overline || !b.Lines.Underline {
		t.Error("radical must report both decoration lines")
	}
	if n := len(b.Strokes[0].Path.Elements()); n != 5 {
		t.Errorf("sign has %d elements, want 5", n)
	}
}

// TestRadical_Index tests placement of the index in the crook of the sign.
func TestRadical_Index(t *testing.T) {
	idx := leaf(t, "3", 14*reduceFactor*reduceFactor)
	rad := leaf(t, "x", 14)
	b := RadicalBox(14, []*Box{idx, rad})

	if len(b.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(b.Children))
	}
	if b.Children[0].Box != idx || b.Children[1].Box != rad {
		t.Fatal("children out of order")
	}
	if b.Children[0].X >= b.Children[1].X {
		t.Errorf("index x = %d not left of radicand x = %d", b.Children[0].X, b.Children[1].X)
	}
	if b.Children[0].Y >= b.Children[1].Y {
		t.Errorf("index y = %d not above radicand y = %d", b.Children[0].Y, b.Children[1].Y)
	}
	idxBottom := b.Children[0].Y + idx.Lines.Basement
	radWaist := b.Children[1].Y + rad.Lines.Waist
	if idxBottom > radWaist {
		t.Errorf("index bottom %d below radicand waist %d", idxBottom, radWaist)
	}
	if b.Lines.Ceiling > b.Children[0].Y+idx.Lines.Ceiling {
		t.Errorf("Ceiling = %d below index ceiling", b.Lines.Ceiling)
	}
	if b.Height != b.Lines.Basement {
		t.Errorf("Height = %d, want basement %d", b.Height, b.Lines.Basement)
	}
}

// TestDecorate_Arity tests that a decoration needs exactly one child.
func TestDecorate_Arity(t *testing.T) {
	if b := Decorate(14, Overline, nil); b.Kind != KindEmpty {
		t.Errorf("Decorate() = %v, want empty", b.Kind)
	}
	kids := []*Box{leaf(t, "a", 14), leaf(t, "b", 14)}
	if b := Decorate(14, Underline, kids); b.Kind != KindEmpty {
		t.Errorf("Decorate(2 children) = %v, want empty", b.Kind)
	}
}

// TestDecorate_Stacking tests that nested decorations move outward.
func TestDecorate_Stacking(t *testing.T) {
	vp := px(14.0 / 7)
	x := leaf(t, "x", 14)

	once := Decorate(14, Overline, []*Box{x})
	if !once.Lines.Overline {
		t.Error("overline flag not set")
	}
	if want := x.Lines.Ceiling - vp; once.Lines.Ceiling != want {
		t.Errorf("Ceiling = %d, want %d", once.Lines.Ceiling, want)
	}
	if once.Children[0].Y != 0 {
		t.Errorf("child y = %d, want 0", once.Children[0].Y)
	}

	twice := Decorate(14, Overline, []*Box{once})
	if twice.Children[0].Y != vp {
		t.Errorf("nested child y = %d, want %d", twice.Children[0].Y, vp)
	}
	if want := once.Lines.Basement + vp; twice.Height != want {
		t.Errorf("nested Height = %d, want %d", twice.Height, want)
	}

	under := Decorate(14, Underline, []*Box{leaf(t, "x", 14)})
	if !under.Lines.Underline || under.Lines.Floor != x.Lines.Floor+vp {
		t.Errorf("underline lines = %+v", under.Lines)
	}
	if under.Lines.Basement != x.Lines.Basement {
		t.Errorf("first underline moved basement to %d", under.Lines.Basement)
	}
	under2 := Decorate(14, Underline, []*Box{under})
	if under2.Lines.Basement != under.Lines.Basement+vp {
		t.Errorf("second underline basement = %d, want %d",
			under2.Lines.Basement, under.Lines.Basement+vp)
	}
}

// TestDecorate_Arrows tests the arrow heads of over-arrows.
func TestDecorate_Arrows(t *testing.T) {
	for _, k := range []Decoration{OverLeftArrow, OverRightArrow} {
		b := Decorate(14, k, []*Box{leaf(t, "AB", 14)})
		els := b.Strokes[0].Path.Elements()
		if len(els) != 5 {
			t.Errorf("decoration %d: %d elements, want 5", k, len(els))
		}
		if _, ok := els[2].(geom.MoveTo); !ok {
			t.Errorf("decoration %d: element 2 is %T, want MoveTo", k, els[2])
		}
	}
}

// TestColumnRules tests column specification parsing.
func TestColumnRules(t *testing.T) {
	tests := []struct {
		spec   string
		aligns string
		rules  []int
	}{
		{"", "", nil},
		{"rc||l|", "rcl", []int{2, 3}},
		{"|c|c|", "cc", []int{0, 1, 2}},
		{"l x r", "lr", nil},
		{"||", "", []int{0}},
	}
	for _, tt := range tests {
		aligns, rules := ColumnRules(tt.spec)
		if string(aligns) != tt.aligns {
			t.Errorf("ColumnRules(%q) aligns = %q, want %q", tt.spec, aligns, tt.aligns)
		}
		if diff := cmp.Diff(tt.rules, rules); diff != "" {
			t.Errorf("ColumnRules(%q) rules mismatch (-want +got):\n%s", tt.spec, diff)
		}
	}
}

// arrayCells returns a 2x2 grid: a b / c dd.
func arrayCells(t *testing.T) []*Box {
	t.Helper()
	return []*Box{
		withHint(leaf(t, "a", 14), Hint{NewRow: true}),
		leaf(t, "b", 14),
		withHint(leaf(t, "c", 14), Hint{NewRow: true}),
		leaf(t, "dd", 14),
	}
}

// TestArray_Grid tests cell placement and array references.
func TestArray_Grid(t *testing.T) {
	b := ArrayBox(14, "", arrayCells(t))

	// padding 7, columns 7 and 14 wide, rows 8 tall.
	if b.Width != 42 || b.Height != 37 {
		t.Errorf("size = %dx%d, want 42x37", b.Width, b.Height)
	}
	want := Lines{Ceiling: 7, Waist: 18, Floor: 30, Basement: 37, Overline: true, Underline: true}
	if b.Lines != want {
		t.Errorf("Lines = %+v, want %+v", b.Lines, want)
	}
	got := make([][2]int, len(b.Children))
	for i, c := range b.Children {
		got[i] = [2]int{c.X, c.Y}
	}
	wantPos := [][2]int{{7, 4}, {24, 4}, {7, 19}, {21, 19}}
	if diff := cmp.Diff(wantPos, got); diff != "" {
		t.Errorf("cell positions mismatch (-want +got):\n%s", diff)
	}
	if len(b.Strokes) != 0 {
		t.Errorf("got %d strokes without rules", len(b.Strokes))
	}
}

// TestArray_Alignment tests column alignment letters and rules.
func TestArray_Alignment(t *testing.T) {
	b := ArrayBox(14, "l|r", arrayCells(t))
	if got := b.Children[1].X; got != 28 {
		t.Errorf("right-aligned cell x = %d, want 28", got)
	}
	if got := b.Children[0].X; got != 7 {
		t.Errorf("left-aligned cell x = %d, want 7", got)
	}
	if len(b.Strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(b.Strokes))
	}
	pts := b.Strokes[0].Path.Flatten(1)[0]
	if diff := cmp.Diff([]geom.Point{{X: 18, Y: 3}, {X: 18, Y: 33}}, pts); diff != "" {
		t.Errorf("rule mismatch (-want +got):\n%s", diff)
	}

	// Rules past the last column are dropped.
	b = ArrayBox(14, "ccc|", arrayCells(t))
	if n := len(b.Strokes); n != 0 {
		t.Errorf("got %d strokes for out-of-range rules, want 0", n)
	}
}

// TestArray_FirstCellStartsRow tests a grid whose first cell is untagged.
func TestArray_FirstCellStartsRow(t *testing.T) {
	b := ArrayBox(14, "", []*Box{leaf(t, "a", 14), leaf(t, "b", 14)})
	if b.Kind != KindArray || len(b.Children) != 2 {
		t.Fatalf("ArrayBox() = %v with %d children", b.Kind, len(b.Children))
	}
	if b.Children[0].Y != b.Children[1].Y {
		t.Error("cells of one row at different heights")
	}
	if b := ArrayBox(14, "", nil); b.Kind != KindEmpty {
		t.Errorf("ArrayBox(nil) = %v, want empty", b.Kind)
	}
}

// TestCorrect tests named corrections.
func TestCorrect(t *testing.T) {
	child := leaf(t, "x", 20)
	if got := Correct("nope", child); got != child {
		t.Error("unknown key must return the child unchanged")
	}

	b := Correct("int", child)
	want := Lines{Ceiling: 1, Waist: 10, Floor: 18, Basement: 20}
	if b.Lines != want {
		t.Errorf("Lines = %+v, want %+v", b.Lines, want)
	}
	if b.Width != 12 || b.Height != 20 {
		t.Errorf("size = %dx%d, want 12x20", b.Width, b.Height)
	}
	if c := b.Children[0]; c.X != 1 || c.Y != 0 || c.Box != child {
		t.Errorf("child placed at (%d, %d)", c.X, c.Y)
	}

	for _, key := range []string{"int", "iint", "iiint", "oint", "oiint", "oiiint", "sum", "prod", "arrow"} {
		if _, ok := LookupCorrection(key); !ok {
			t.Errorf("LookupCorrection(%q) missing", key)
		}
	}
}

// TestBuilder tests node dispatch and hint propagation.
func TestBuilder(t *testing.T) {
	b := NewBuilder(fixedMeasurer)

	if box := b.Build(nil); box.Kind != KindEmpty {
		t.Errorf("Build(nil) = %v, want empty", box.Kind)
	}

	red := color.RGBA{R: 255, A: 255}
	txt := &Text{Base: Base{Hint: Hint{Class: ClassFunction}}, Text: "sin", FontSize: 14, Color: red}
	box := b.Build(txt)
	if box.Kind != KindText || box.Text != "sin" || box.Color != red {
		t.Errorf("Build(Text) = %+v", box)
	}
	if box.Hint.Class != ClassFunction {
		t.Errorf("hint class = %v, want function", box.Hint.Class)
	}

	frac := &Fraction{Base: Base{Hint: Hint{Role: RoleSubscript}}, FontSize: 14,
		Children: []Node{&Text{Text: "1", FontSize: 14}}}
	box = b.Build(frac)
	if box.Kind != KindEmpty || box.Hint.Role != RoleSubscript {
		t.Errorf("Build(1-child Fraction) = %v, role %v", box.Kind, box.Hint.Role)
	}

	corr := &Corrected{Base: Base{Hint: Hint{Class: ClassCollective}}, Key: "unknown",
		Child: &Text{Base: Base{Hint: Hint{Class: ClassOperator}}, Text: "x", FontSize: 14}}
	box = b.Build(corr)
	if box.Kind != KindText || box.Hint.Class != ClassCollective {
		t.Errorf("Build(Corrected unknown) = %v, class %v", box.Kind, box.Hint.Class)
	}

	del := &Delimiter{FontSize: 14, Dir: DirRight, Glyph: ')'}
	box = b.Build(del)
	if box.Kind != KindDelimiter || box.Delim == nil || box.Delim.Glyph != ')' || box.Text != "" {
		t.Errorf("Build(Delimiter) = %+v", box)
	}
	if box.Width != 7 {
		t.Errorf("delimiter width = %d, want 7", box.Width)
	}

	arr := &Array{FontSize: 14, Columns: "c", Cells: []Node{
		&Text{Base: Base{Hint: Hint{NewRow: true}}, Text: "a", FontSize: 14},
	}}
	if box := b.Build(arr); box.Kind != KindArray {
		t.Errorf("Build(Array) = %v", box.Kind)
	}
	sq := &Radical{FontSize: 14, Children: []Node{&Text{Text: "2", FontSize: 14}}}
	if box := b.Build(sq); box.Kind != KindRadical {
		t.Errorf("Build(Radical) = %v", box.Kind)
	}
	dec := &Decorated{FontSize: 14, Kind: Underline, Children: []Node{&Text{Text: "v", FontSize: 14}}}
	if box := b.Build(dec); box.Kind != KindDecorated {
		t.Errorf("Build(Decorated) = %v", box.Kind)
	}
}
