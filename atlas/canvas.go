package atlas

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Canvas is a transparent raster surface that glyphs are drawn into.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas creates a fully transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the backing image. Drawing into it draws on the canvas.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// EncodePNG writes the canvas as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
