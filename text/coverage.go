package text

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
)

// Coverage returns the runes in rs that have no glyph in the source's
// character map. Those runes rasterize as the font's .notdef box.
//
// The cmap lookup goes through go-text/typesetting, independent of the
// rasterizing parser, so a font that the rasterizer accepts but whose cmap
// is broken is reported here.
func Coverage(source *FontSource, rs []rune) ([]rune, error) {
	data := source.Data()
	if len(data) == 0 {
		return nil, ErrSourceClosed
	}

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: coverage: %w", err)
	}

	var missing []rune
	for _, r := range rs {
		if _, ok := face.NominalGlyph(r); !ok {
			missing = append(missing, r)
		}
	}
	return missing, nil
}
