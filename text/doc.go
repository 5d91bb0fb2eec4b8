// Package text loads fonts and rasterizes single glyphs for glyphkit.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific size
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    source = text.DefaultFontSource()
//	}
//	defer source.Close()
//
//	// Size the face so that "W" fills 90 pixels
//	face, err := text.AutoFit(source, 90)
//	if err != nil {
//	    return err
//	}
//	defer face.Close()
//
//	face.DrawCentered(dst, cell, "W", color.White)
//
// Centering always uses the measured tight bounds of the drawn string,
// not the advance width or the font's declared metrics.
//
// # Hinting
//
// Faces are fully hinted by default. Pass WithHinting(HintingNone) to keep
// unhinted outlines, which scale more smoothly at small cell sizes:
//
//	face, err := text.AutoFit(source, 90, text.WithHinting(text.HintingNone))
package text
