package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Shaper computes advances with HarfBuzz shaping via go-text/typesetting,
// so kerning and ligatures are accounted for.
//
// Shaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates a lightweight font.Face per call
// (font.Face is NOT safe for concurrent use). HarfbuzzShaper instances are
// pooled since they are not concurrent-safe either.
type Shaper struct {
	shaperPool sync.Pool

	// mu protects the font cache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewShaper creates a Shaper backed by go-text/typesetting.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance returns the shaped width of str set in source at the given size.
func (s *Shaper) Advance(source *FontSource, str string, size float64) (float64, error) {
	if str == "" {
		return 0, nil
	}
	f, err := s.getOrCreateFont(source)
	if err != nil {
		return 0, err
	}

	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	var w float64
	for _, g := range out.Glyphs {
		w += fromFixed(g.Advance)
	}
	return w, nil
}

// getOrCreateFont returns the cached go-text font for source, parsing it
// on first use.
func (s *Shaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
// Math runs are short and rarely mix scripts.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
