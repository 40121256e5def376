// Package text measures text runs for the layout engine.
//
// The measurement pipeline has three parts:
//
//   - FontSource: a parsed TTF/OTF font, shared across sizes. Vertical
//     metrics and fallback advances come from golang.org/x/image.
//   - Shaper: HarfBuzz shaping via go-text/typesetting, giving
//     kerning- and ligature-aware advances.
//   - Measurer: implements layout.Measurer over an upright and an italic
//     source, memoising results in an LRU cache.
//
// # Example usage
//
//	m := text.DefaultMeasurer() // Go Regular and Go Italic
//	mt := m.Measure("sin", 16, false)
//
//	// Or with custom fonts:
//	up, err := text.NewFontSourceFromFile("STIXTwoMath-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := text.NewMeasurer(up, nil, text.WithCacheSize(4096))
package text
