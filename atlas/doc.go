// Package atlas lays out rasterized glyphs and emits the registry records
// that name every variant.
//
// Two strategies share one grid model:
//
//   - [Sheet] draws every glyph once into a cell of a single square sheet
//     and registers all N variants of a glyph against that cell.
//   - [Individual] draws every glyph into its own canvas and wraps it in
//     N per-variant descriptors and materials.
//
// Cells are assigned in enumeration order: glyph k occupies column
// k mod Columns and row k div Columns.
//
// Generation happens in memory. Writing the returned [Artifacts] to disk is
// the caller's job.
package atlas
