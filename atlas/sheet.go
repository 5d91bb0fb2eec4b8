package atlas

import (
	"github.com/gogpu/glyphkit/glyph"
	"github.com/gogpu/glyphkit/registry"
	"github.com/gogpu/glyphkit/text"
)

// Sheet packs every glyph into one square sheet.
//
// Each glyph is drawn once. All its variants are registered against the
// same cell, so variants are name aliases over one rendering.
type Sheet struct{}

// Name implements Strategy.
func (Sheet) Name() string { return "sheet" }

// DefaultGrid implements Strategy.
func (Sheet) DefaultGrid() Grid {
	return Grid{CellSize: 96, Columns: 10, SheetSize: 1024, Margin: 6}
}

// Validate implements Strategy.
func (Sheet) Validate(g Grid, n int) error {
	return g.Validate(n)
}

// Layout implements Strategy.
func (Sheet) Layout(glyphs []glyph.Glyph, face text.Face, p Params) (*Artifacts, error) {
	g := p.Grid
	canvas := NewCanvas(g.SheetSize, g.SheetSize)

	art := &Artifacts{
		Entries:     make([]registry.Entry, 0, len(glyphs)*p.Variants),
		Descriptors: make([]registry.Descriptor, 0, len(glyphs)*p.Variants),
	}

	for k, gl := range glyphs {
		cell := g.CellRect(k)
		face.DrawCentered(canvas.Image(), cell, string(gl.Rune), p.Color)

		for i := 1; i <= p.Variants; i++ {
			name := gl.Variant(i)
			art.Entries = append(art.Entries, registry.Entry{
				Name:        name,
				Sheet:       registry.SheetName,
				X:           cell.Min.X,
				Y:           cell.Min.Y,
				Width:       g.CellSize,
				Height:      g.CellSize,
				SheetWidth:  g.SheetSize,
				SheetHeight: g.SheetSize,
			})
			art.Descriptors = append(art.Descriptors, registry.Descriptor{
				Name:    name,
				Texture: name,
			})
		}
	}

	art.Materials = []registry.Material{{
		Name:    registry.SheetName,
		Texture: registry.SheetName + TextureExt,
	}}
	art.Rasters = []Raster{{
		Name:   registry.SheetName + RasterExt,
		Canvas: canvas,
	}}
	return art, nil
}
