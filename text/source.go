package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont

	// Metadata
	name     string
	fallback bool

	// Mutex protects data and parsed across Close.
	mu sync.RWMutex
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := defaultParser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(parsed)

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

// DefaultFontSource returns a FontSource for the built-in Go Regular face.
// It never fails and is used when a requested font cannot be loaded.
func DefaultFontSource() *FontSource {
	s, err := NewFontSource(goregular.TTF)
	if err != nil {
		// goregular is embedded and known to parse.
		panic("text: built-in font failed to parse: " + err.Error())
	}
	s.fallback = true
	return s
}

// Face creates a Face at the specified size (in points).
// Multiple faces can be created from the same FontSource.
// The caller must Close the returned face.
func (s *FontSource) Face(size float64, opts ...FaceOption) (Face, error) {
	if s == nil {
		panic("text: FontSource is nil; did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	if size <= 0 {
		return nil, ErrInvalidSize
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	s.mu.RLock()
	parsed := s.parsed
	s.mu.RUnlock()
	if parsed == nil {
		return nil, ErrSourceClosed
	}

	ff, err := parsed.NewFace(size, dpi, config.hinting)
	if err != nil {
		return nil, err
	}

	return &sourceFace{
		source: s,
		face:   ff,
		size:   size,
	}, nil
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// IsDefault reports whether s is the built-in fallback font.
func (s *FontSource) IsDefault() bool {
	s.copyCheck()
	return s.fallback
}

// Data returns the raw font bytes. The slice must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Close releases resources associated with the FontSource.
// Faces created from this source stay usable until closed themselves.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
