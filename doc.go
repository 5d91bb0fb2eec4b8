// Package glyphkit builds HUD glyph assets for particle-based text and
// compiles strings into scripts that spell them out in game.
//
// # Overview
//
// A build renders a fixed glyph set (A-Z, a-z, 0-9 and 33 punctuation
// characters) and registers N named variants of each glyph. The names are
// derived by package glyph:
//
//	uiA3    third variant of 'A'
//	uiLA3   third variant of 'a'
//	ui_ex1  first variant of '!'
//
// Text compiled with package placement refers to the same names, using a
// fresh variant for each repeat of a character.
//
// # Quick Start
//
//	cfg, err := glyphkit.NewConfig(
//	    glyphkit.WithOutputDir("out"),
//	    glyphkit.WithFontPath("Orbitron.ttf"),
//	    glyphkit.WithVariants(10),
//	)
//	if err != nil {
//	    return err
//	}
//	report, err := glyphkit.Build(cfg)
//	if err != nil {
//	    return err
//	}
//
//	// Emit a Lua block that spells "Grizzly One" around handle h
//	err = glyphkit.Script(os.Stdout, cfg, "Grizzly One", "h", placement.OverflowError)
//
// # Artifacts
//
// The sheet strategy writes font_sheet.png, spritea.sta, one .odf
// descriptor per variant and master_font.material. The individual strategy
// writes one PNG per glyph instead of the sheet and registry. When a
// texconv compressor is configured, PNGs are converted to DDS and removed.
//
// # Constraints
//
// Variant names assume a case-sensitive asset namespace. Build refuses a
// name set that would alias under case folding.
package glyphkit
