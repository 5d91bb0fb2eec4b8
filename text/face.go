package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face represents a font face at a specific size.
// A Face holds rasterizer state and is not safe for concurrent use.
type Face interface {
	// Size returns the size of this face in points.
	Size() float64

	// Bounds returns the tight bounding box of s relative to a pen origin
	// at (0, 0) on the baseline. It reflects the pixels actually drawn,
	// not the advance width.
	Bounds(s string) Rect

	// Draw renders s with its baseline origin at (x, y).
	Draw(dst draw.Image, s string, x, y int, col color.Color)

	// DrawCentered renders s so that its tight bounds are centered in cell.
	// Pixels falling outside cell are clipped.
	DrawCentered(dst draw.Image, cell image.Rectangle, s string, col color.Color)

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Close releases the rasterizer.
	Close() error
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	face   font.Face
	size   float64
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Bounds implements Face.Bounds.
func (f *sourceFace) Bounds(s string) Rect {
	b, _ := font.BoundString(f.face, s)
	return Rect{
		MinX: fixedToFloat64(b.Min.X),
		MinY: fixedToFloat64(b.Min.Y),
		MaxX: fixedToFloat64(b.Max.X),
		MaxY: fixedToFloat64(b.Max.Y),
	}
}

// Draw implements Face.Draw.
func (f *sourceFace) Draw(dst draw.Image, s string, x, y int, col color.Color) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawCentered implements Face.DrawCentered.
func (f *sourceFace) DrawCentered(dst draw.Image, cell image.Rectangle, s string, col color.Color) {
	if s == "" {
		return
	}
	x, y := CenterOrigin(f, cell, s)
	f.Draw(clipTo(dst, cell), s, x, y, col)
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Close implements Face.Close.
func (f *sourceFace) Close() error {
	return f.face.Close()
}

// CenterOrigin returns the baseline origin at which s must be drawn so
// that its tight bounds are centered in cell.
func CenterOrigin(face Face, cell image.Rectangle, s string) (x, y int) {
	b := face.Bounds(s)
	minX, minY := floor(b.MinX), floor(b.MinY)
	w := ceil(b.MaxX) - minX
	h := ceil(b.MaxY) - minY
	x = cell.Min.X + (cell.Dx()-w)/2 - minX
	y = cell.Min.Y + (cell.Dy()-h)/2 - minY
	return x, y
}

// subImager is implemented by the standard image types.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// clipTo restricts dst to r when dst supports sub-images.
func clipTo(dst draw.Image, r image.Rectangle) draw.Image {
	si, ok := dst.(subImager)
	if !ok {
		return dst
	}
	if sub, ok := si.SubImage(r).(draw.Image); ok {
		return sub
	}
	return dst
}

func floor(v float64) int {
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}

func ceil(v float64) int {
	i := int(v)
	if float64(i) < v {
		i++
	}
	return i
}
