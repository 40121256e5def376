package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilSource is returned when a measurer is created without an
	// upright font source.
	ErrNilSource = errors.New("text: nil font source")
)
