// Package glyph maps characters to the base identifiers used to name HUD
// glyph assets.
//
// Every glyph has one base identifier and N variants named base+index
// (index starting at 1). The mapping is a pure function of the rune:
//
//	glyph.Resolve('A')  // "uiA"
//	glyph.Resolve('a')  // "uiLA"
//	glyph.Resolve('7')  // "ui7"
//	glyph.Resolve('!')  // "ui_ex"
//	glyph.Resolve('é')  // "ui_un"
//
// Names assume a case-sensitive asset namespace. Lowercase letters carry an
// "L" marker instead of relying on case, and [FoldCollisions] can be used to
// verify that a name set stays distinct under case folding.
package glyph
