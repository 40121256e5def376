package mathtex

import (
	"image"

	"github.com/gogpu/mathtex/layout"
	"github.com/gogpu/mathtex/paint"
	"github.com/gogpu/mathtex/parse"
	"github.com/gogpu/mathtex/text"
)

// Result is a laid-out formula.
type Result struct {
	// Box is the root of the positioned box tree. It is never nil, even
	// for malformed input.
	Box *layout.Box
	// Status is the residual parser status; parse.Exit when the input is
	// well formed.
	Status parse.Status
	// Pos is the byte offset where parsing stopped.
	Pos int

	measurer layout.Measurer
}

// Err returns a *SyntaxError when the input was malformed, nil otherwise.
func (r *Result) Err() error {
	if r.Status == parse.Exit {
		return nil
	}
	return &SyntaxError{Status: r.Status, Pos: r.Pos}
}

// Image paints the box tree. When the result was measured with a
// *text.Measurer, its fonts are used for drawing.
func (r *Result) Image(opts ...paint.Option) *image.RGBA {
	if m, ok := r.measurer.(*text.Measurer); ok {
		opts = append([]paint.Option{paint.WithFonts(m.Source(false), m.Source(true))}, opts...)
	}
	return paint.Paint(r.Box, opts...)
}

// Render parses src and lays it out at fontSize pixels per em.
//
// Render never fails: malformed input still yields the partial tree that
// could be built, and Err reports the problem. Render is safe for
// concurrent use as long as the measurer is.
func Render(src string, fontSize float64, opts ...Option) *Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := o.measurer
	if m == nil {
		m = text.DefaultMeasurer()
	}
	var popts []parse.Option
	if o.errColor != nil {
		popts = append(popts, parse.WithErrorColor(o.errColor))
	}

	pr := parse.Parse(src, fontSize, o.table, popts...)
	box := layout.NewBuilder(m).Build(pr.Root)

	res := &Result{Box: box, Status: pr.Status, Pos: pr.Pos, measurer: m}

	log := Logger()
	log.Debug("mathtex: render",
		"len", len(src),
		"status", pr.Status,
		"width", box.Width,
		"height", box.Height,
		"depth", box.Depth())
	if pr.Status != parse.Exit {
		log.Warn("mathtex: malformed input", "status", pr.Status, "pos", pr.Pos)
	}
	return res
}
