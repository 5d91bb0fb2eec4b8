package registry

import (
	"fmt"
	"io"
)

// MaterialFile is the name of the master material file.
const MaterialFile = "master_font.material"

// materialImport is the first line of the material file.
const materialImport = `import * from "sprites.material"`

// Shader is the base material every glyph material derives from.
const Shader = "BZSprite/Additive"

// Material binds a material name to a diffuse texture.
type Material struct {
	Name    string
	Texture string
	// Spaced adds a blank line after the block.
	Spaced bool
}

// WriteTo writes one material block.
func (m Material) WriteTo(w io.Writer) (int64, error) {
	format := "material %s : %s\n{\n\tset_texture_alias DiffuseMap %s\n}\n"
	if m.Spaced {
		format += "\n"
	}
	n, err := fmt.Fprintf(w, format, m.Name, Shader, m.Texture)
	return int64(n), err
}

// WriteMaterials writes the import header followed by every material.
func WriteMaterials(w io.Writer, materials []Material) error {
	if _, err := io.WriteString(w, materialImport+"\n\n"); err != nil {
		return err
	}
	for _, m := range materials {
		if _, err := m.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
