package text

import "math"

// Auto-fit probe parameters.
const (
	// ProbeSize is the point size the probe glyph is measured at.
	ProbeSize = 10.0
	// ProbeGlyph is measured to derive the scale. It is among the widest
	// capitals in most Latin fonts.
	ProbeGlyph = "W"
)

// AutoFit returns a face sized so that the larger side of the probe
// glyph's tight bounds is close to target pixels.
//
// The size is derived from a measurement at ProbeSize scaled linearly and
// truncated to whole points. Declared font metrics are not consulted since
// they vary too much between families.
func AutoFit(source *FontSource, target float64, opts ...FaceOption) (Face, error) {
	size, err := FitSize(source, target, opts...)
	if err != nil {
		return nil, err
	}
	return source.Face(size, opts...)
}

// FitSize returns the point size AutoFit would use.
func FitSize(source *FontSource, target float64, opts ...FaceOption) (float64, error) {
	if target <= 0 {
		return 0, ErrInvalidSize
	}

	probe, err := source.Face(ProbeSize, opts...)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = probe.Close()
	}()

	b := probe.Bounds(ProbeGlyph)
	extent := math.Max(b.Width(), b.Height())
	if b.Empty() || extent <= 0 {
		return 0, ErrEmptyProbe
	}

	size := math.Floor(ProbeSize * target / extent)
	if size < 1 {
		size = 1
	}
	return size, nil
}
