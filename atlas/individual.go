package atlas

import (
	"github.com/gogpu/glyphkit/glyph"
	"github.com/gogpu/glyphkit/registry"
	"github.com/gogpu/glyphkit/text"
)

// variantTextureExt is the per-variant texture name used by individual
// descriptors and materials.
const variantTextureExt = ".tga"

// Individual draws each glyph into its own canvas.
//
// The image is shared by all variants of a glyph; each variant gets its own
// descriptor and a material that aliases the shared texture. No registry
// entries are produced.
type Individual struct{}

// Name implements Strategy.
func (Individual) Name() string { return "individual" }

// DefaultGrid implements Strategy. Only CellSize and Margin apply.
func (Individual) DefaultGrid() Grid {
	return Grid{CellSize: 64, Columns: 1, SheetSize: 64, Margin: 4}
}

// Validate implements Strategy.
func (Individual) Validate(g Grid, _ int) error {
	return g.validateCell()
}

// Layout implements Strategy.
func (Individual) Layout(glyphs []glyph.Glyph, face text.Face, p Params) (*Artifacts, error) {
	size := p.Grid.CellSize

	art := &Artifacts{
		Descriptors: make([]registry.Descriptor, 0, len(glyphs)*p.Variants),
		Materials:   make([]registry.Material, 0, len(glyphs)*p.Variants),
		Rasters:     make([]Raster, 0, len(glyphs)),
	}

	for _, gl := range glyphs {
		canvas := NewCanvas(size, size)
		face.DrawCentered(canvas.Image(), canvas.Image().Bounds(), string(gl.Rune), p.Color)
		art.Rasters = append(art.Rasters, Raster{Name: gl.Base + RasterExt, Canvas: canvas})

		for i := 1; i <= p.Variants; i++ {
			tex := gl.Variant(i) + variantTextureExt
			art.Descriptors = append(art.Descriptors, registry.Descriptor{
				Name:    gl.Variant(i),
				Texture: tex,
			})
			art.Materials = append(art.Materials, registry.Material{
				Name:    tex,
				Texture: gl.Base + TextureExt,
				Spaced:  true,
			})
		}
	}
	return art, nil
}

// Strategies lists the built-in strategies by name.
var Strategies = map[string]Strategy{
	Sheet{}.Name():      Sheet{},
	Individual{}.Name(): Individual{},
}
