package mathtex

import (
	"image/color"

	"github.com/gogpu/mathtex/glyph"
	"github.com/gogpu/mathtex/layout"
)

// Option configures Render.
//
// Example:
//
//	// Default Go fonts and glyph table
//	res := mathtex.Render(`\frac{1}{2}`, 24)
//
//	// Custom measurer and error colour
//	res := mathtex.Render(src, 24,
//	    mathtex.WithMeasurer(m),
//	    mathtex.WithErrorColor(color.RGBA{B: 0xff, A: 0xff}))
type Option func(*options)

// options holds optional configuration for a render.
type options struct {
	measurer layout.Measurer
	table    *glyph.Table
	errColor color.Color
}

// defaultOptions returns the default render options.
func defaultOptions() options {
	return options{
		measurer: nil, // text.DefaultMeasurer() if nil
		table:    nil, // glyph.Default() if nil
		errColor: nil, // parse.DefaultErrorColor if nil
	}
}

// WithMeasurer sets the text measurer used for leaves.
// Use this to lay out with other fonts, or with a fake in tests.
func WithMeasurer(m layout.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithGlyphTable sets the command-to-text table.
func WithGlyphTable(t *glyph.Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithErrorColor sets the colour unknown commands are shown in.
func WithErrorColor(c color.Color) Option {
	return func(o *options) {
		o.errColor = c
	}
}
