package text

import "golang.org/x/image/font"

// FontParser is an interface for font parsing backends.
// The implementation in use is golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NewFace returns a rasterizing face at the given size in points.
	NewFace(size, dpi float64, hinting Hinting) (font.Face, error)
}

// defaultParser parses every FontSource.
var defaultParser FontParser = &ximageParser{}

// dpi makes one point one pixel.
const dpi = 72

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingFull
	}
}
