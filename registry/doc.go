// Package registry reads and writes the text artifacts that bind glyph
// variants to the engine: the sprite registry (.sta), per-variant particle
// descriptors (.odf) and the material file.
//
// The formats are line oriented and fixed. Names written here must match
// the names produced by package glyph, since the engine resolves variants
// purely by name.
package registry
