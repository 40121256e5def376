package text

import (
	"fmt"
	"sync"

	"github.com/gogpu/mathtex/internal/cache"
	"github.com/gogpu/mathtex/layout"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// CacheStats reports measurement cache usage.
type CacheStats = cache.Stats

type measureKey struct {
	text   string
	size   float64
	italic bool
}

// Measurer implements layout.Measurer with real fonts.
//
// Measurer is safe for concurrent use.
type Measurer struct {
	upright *FontSource
	italic  *FontSource
	shaper  *Shaper
	cache   *cache.Cache[measureKey, layout.Metrics]
}

var _ layout.Measurer = (*Measurer)(nil)

// NewMeasurer returns a Measurer that sets upright runs in upright and
// italic runs in italic. A nil italic source falls back to upright.
func NewMeasurer(upright, italic *FontSource, opts ...Option) (*Measurer, error) {
	if upright == nil {
		return nil, ErrNilSource
	}
	if italic == nil {
		italic = upright
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Measurer{
		upright: upright,
		italic:  italic,
		cache:   cache.New[measureKey, layout.Metrics](cfg.cacheSize),
	}
	if cfg.shaping {
		m.shaper = NewShaper()
	}
	return m, nil
}

// Measure returns the advance width and the font's ascent and descent
// for text at fontSize.
func (m *Measurer) Measure(text string, fontSize float64, italic bool) layout.Metrics {
	key := measureKey{text: text, size: fontSize, italic: italic}
	if mt, ok := m.cache.Get(key); ok {
		return mt
	}
	// Shaping runs outside the cache lock; a concurrent miss on the same
	// key computes the same value twice.
	src := m.Source(italic)
	fm := src.Metrics(fontSize)
	mt := layout.Metrics{
		Width:   m.advance(src, text, fontSize),
		Ascent:  fm.Ascent,
		Descent: fm.Descent,
	}
	m.cache.Set(key, mt)
	return mt
}

func (m *Measurer) advance(src *FontSource, text string, size float64) float64 {
	if m.shaper != nil {
		w, err := m.shaper.Advance(src, text, size)
		if err == nil {
			return w
		}
		slogger().Warn("text: shaping failed, using font advances",
			"font", src.Name(), "err", err)
	}
	return src.Advance(text, size)
}

// Source returns the font source used for upright or italic runs.
func (m *Measurer) Source(italic bool) *FontSource {
	if italic {
		return m.italic
	}
	return m.upright
}

// Stats returns measurement cache statistics.
func (m *Measurer) Stats() CacheStats {
	return m.cache.Stats()
}

var (
	defaultOnce     sync.Once
	defaultMeasurer *Measurer
)

// DefaultMeasurer returns a shared Measurer over the Go Regular and Go
// Italic fonts.
func DefaultMeasurer() *Measurer {
	defaultOnce.Do(func() {
		up, err := NewFontSource(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("text: embedded regular font: %v", err))
		}
		it, err := NewFontSource(goitalic.TTF)
		if err != nil {
			panic(fmt.Sprintf("text: embedded italic font: %v", err))
		}
		defaultMeasurer, err = NewMeasurer(up, it)
		if err != nil {
			panic(fmt.Sprintf("text: default measurer: %v", err))
		}
	})
	return defaultMeasurer
}
