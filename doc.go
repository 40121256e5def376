// Package mathtex lays out a LaTeX-like math markup into positioned boxes.
//
// # Overview
//
// A formula goes through three stages:
//
//   - parse: a recursive-descent interpreter turns markup into layout nodes
//   - layout: nodes are measured and composed bottom-up into boxes with
//     sizes, alignment references, child offsets and vector strokes
//   - paint (optional): a reference painter rasterizes the box tree
//
// # Quick Start
//
//	import "github.com/gogpu/mathtex"
//
//	res := mathtex.Render(`x = \frac{-b \pm \sqrt{b^2-4ac}}{2a}`, 32)
//	if err := res.Err(); err != nil {
//	    log.Println(err) // the partial layout is still usable
//	}
//	img := res.Image()
//
// # Supported markup
//
// Groups {...}, sub- and superscripts (_ and ^, stacked when both apply),
// \frac and \dfrac, \sqrt with an optional [index], \left and \right
// delimiters, \overline, \underline, \overleftarrow, \overrightarrow,
// \mathrm, the array environment with a column specification, and every
// glyph command of the glyph table (Greek letters, operators, relations,
// arrows, big operators and function names). Capitalised big operators
// (\Sum, \Int, \Lim) place their limits above and below.
//
// Unknown commands are shown in red and parsing continues.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Render, Result, options, logging
//   - parse, layout: interpreter and layout engine, independent of fonts
//   - text: font measurement (x/image metrics, go-text shaping)
//   - glyph: command-to-text table
//   - geom: vector paths for decorations
//   - paint: reference rasterizer
package mathtex
