package paint

import (
	"image/color"

	"github.com/gogpu/mathtex/text"
)

// Option configures Paint.
type Option func(*config)

type config struct {
	background color.Color
	foreground color.Color
	margin     int
	upright    *text.FontSource
	italic     *text.FontSource
	segments   int
}

func defaultConfig() config {
	m := text.DefaultMeasurer()
	return config{
		background: color.White,
		foreground: color.Black,
		margin:     4,
		upright:    m.Source(false),
		italic:     m.Source(true),
		segments:   16,
	}
}

// WithBackground sets the fill colour of the canvas.
// A nil colour leaves the canvas transparent.
func WithBackground(c color.Color) Option {
	return func(cfg *config) {
		cfg.background = c
	}
}

// WithForeground sets the colour of strokes and of text without its own
// colour.
func WithForeground(c color.Color) Option {
	return func(cfg *config) {
		cfg.foreground = c
	}
}

// WithMargin sets the blank border around the formula, in pixels.
func WithMargin(px int) Option {
	return func(cfg *config) {
		cfg.margin = max(px, 0)
	}
}

// WithFonts sets the fonts text runs are drawn with. They should be the
// fonts the box tree was measured with. A nil italic font uses upright.
func WithFonts(upright, italic *text.FontSource) Option {
	return func(cfg *config) {
		if upright == nil {
			return
		}
		if italic == nil {
			italic = upright
		}
		cfg.upright, cfg.italic = upright, italic
	}
}

// WithCurveSegments sets how many line segments approximate each curve.
func WithCurveSegments(n int) Option {
	return func(cfg *config) {
		cfg.segments = max(n, 1)
	}
}
