package text

import "github.com/gogpu/mathtex/internal/cache"

// Option configures a Measurer.
type Option func(*config)

type config struct {
	cacheSize int
	shaping   bool
}

func defaultConfig() config {
	return config{
		cacheSize: cache.DefaultCapacity,
		shaping:   true,
	}
}

// WithCacheSize sets the number of memoised measurements.
// Values <= 0 select the default capacity.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

// WithShaping enables or disables HarfBuzz shaping. Without shaping,
// widths come from the font's advance and kerning tables only.
func WithShaping(enabled bool) Option {
	return func(c *config) {
		c.shaping = enabled
	}
}
