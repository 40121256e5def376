package layout

import "math"

// Metrics is the measurement of a text span.
// Ascent and Descent are both positive distances from the baseline.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Measurer measures text spans. Implementations must be safe for the
// concurrency their callers need; the builder calls Measure synchronously.
type Measurer interface {
	Measure(text string, fontSize float64, italic bool) Metrics
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string, fontSize float64, italic bool) Metrics

// Measure calls f.
func (f MeasureFunc) Measure(text string, fontSize float64, italic bool) Metrics {
	return f(text, fontSize, italic)
}

// textBox measures a text span into a leaf box. The height is rounded
// from the baseline so it stays in step with the alignment references.
func textBox(m Measurer, s string, fontSize float64, italic bool) *Box {
	mt := m.Measure(s, fontSize, italic)
	baseline := px(mt.Ascent)
	return &Box{
		Kind:     KindText,
		Width:    int(math.Ceil(mt.Width)),
		Height:   baseline + px(mt.Descent),
		Lines:    DefaultLines(baseline),
		Text:     s,
		FontSize: fontSize,
		Italic:   italic,
		Baseline: baseline,
	}
}
