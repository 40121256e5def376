package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file. Sizes are given in pixels per
// em and the same source serves every size.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *opentype.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data: dataCopy,
		font: f,
	}
	s.addr = s
	s.name = fontName(f)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Metrics returns the vertical metrics at the given size.
func (s *FontSource) Metrics(size float64) Metrics {
	s.copyCheck()
	var buf sfnt.Buffer

	m, err := s.font.Metrics(&buf, toFixed(size), font.HintingFull)
	if err != nil {
		return Metrics{}
	}
	ascent, descent := fromFixed(m.Ascent), fromFixed(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		// Height is hinted separately and can round below ascent+descent.
		LineGap:   max(0, fromFixed(m.Height)-ascent-descent),
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

// Advance returns the width of s at the given size from the font's
// horizontal metrics and kerning table, without shaping.
func (s *FontSource) Advance(str string, size float64) float64 {
	s.copyCheck()
	var buf sfnt.Buffer
	ppem := toFixed(size)

	var (
		total   fixed.Int26_6
		prev    sfnt.GlyphIndex
		hasPrev bool
	)
	for _, r := range str {
		gi, err := s.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			// Fonts without a kern table return an error; ignore it.
			if k, err := s.font.Kern(&buf, prev, gi, ppem, font.HintingNone); err == nil {
				total += k
			}
		}
		if adv, err := s.font.GlyphAdvance(&buf, gi, ppem, font.HintingNone); err == nil {
			total += adv
		}
		prev, hasPrev = gi, true
	}
	return fromFixed(total)
}

// Face returns an x/image face at the given size for drawing. The returned
// face is not safe for concurrent use.
func (s *FontSource) Face(size float64) (font.Face, error) {
	s.copyCheck()
	return opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func fontName(f *opentype.Font) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := f.Name(nil, id); err == nil && name != "" {
			return name
		}
	}
	return "Unknown Font"
}

// toFixed converts a float64 size to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts a fixed.Int26_6 value to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
