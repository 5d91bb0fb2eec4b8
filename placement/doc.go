// Package placement compiles a string into placement commands that spawn
// glyph variants in a row around an anchor.
//
// Characters are laid out on a grid of equal steps, centered on the anchor.
// A space takes a slot but spawns nothing. Repeated characters use
// successive variants (uiA1, uiA2, ...) so the engine never stacks one
// asset twice in the same string.
//
//	cmds, err := placement.Compile("Grizzly One", 1.5, placement.WithVariantLimit(10))
//	if err != nil {
//	    return err
//	}
//	return placement.WriteLua(os.Stdout, placement.Script{
//	    Text: "Grizzly One", Anchor: "h", Commands: cmds,
//	})
package placement
