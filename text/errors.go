package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face size is not positive.
	ErrInvalidSize = errors.New("text: face size must be positive")

	// ErrEmptyProbe is returned by AutoFit when the probe glyph has no
	// visible pixels, so no scale can be derived from it.
	ErrEmptyProbe = errors.New("text: probe glyph has empty bounds")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source is closed")
)
