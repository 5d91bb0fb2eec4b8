package atlas

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gogpu/glyphkit/glyph"
	"github.com/gogpu/glyphkit/registry"
	"github.com/gogpu/glyphkit/text"
)

// ErrInvalidVariants is returned when the variant count is below one.
var ErrInvalidVariants = errors.New("atlas: variant count must be at least 1")

// Texture file extensions. Rasters are written as PNG; materials reference
// the compressed texture the post-process produces from them.
const (
	RasterExt  = ".png"
	TextureExt = ".dds"
)

// Strategy lays out glyphs and emits the records for one artifact style.
type Strategy interface {
	// Name identifies the strategy in configuration and logs.
	Name() string

	// DefaultGrid returns the geometry used for zero Grid fields.
	DefaultGrid() Grid

	// Validate checks the grid for n glyphs.
	Validate(g Grid, n int) error

	// Layout draws glyphs with face and emits registry records.
	Layout(glyphs []glyph.Glyph, face text.Face, p Params) (*Artifacts, error)
}

// Params configures one generation run.
type Params struct {
	// Variants is the number of named variants per glyph.
	Variants int
	// Color is the glyph fill color.
	Color color.Color
	// Grid is the cell geometry. Zero fields take the strategy default.
	Grid Grid
	// FaceOptions configure the fitted face, e.g. text.WithHinting.
	FaceOptions []text.FaceOption
	// Logger receives progress and diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// Raster is one image to persist.
type Raster struct {
	// Name is the file name, e.g. "font_sheet.png".
	Name   string
	Canvas *Canvas
}

// Artifacts is everything one generation run produces.
type Artifacts struct {
	Strategy string
	// Source is the font the glyphs were drawn with. It differs from the
	// requested source when that could not be fitted and the default font
	// was used instead.
	Source      *text.FontSource
	Grid        Grid
	FontSize    float64
	Entries     []registry.Entry
	Descriptors []registry.Descriptor
	Materials   []registry.Material
	Rasters     []Raster
}

// Generate rasterizes glyphs with source using strategy s.
//
// The face is auto-fitted to the grid's cell. If the source cannot produce
// a usable face, the built-in default font is used instead and a warning is
// logged; generation only fails for invalid parameters.
func Generate(glyphs []glyph.Glyph, source *text.FontSource, s Strategy, p Params) (*Artifacts, error) {
	if p.Variants < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVariants, p.Variants)
	}
	if p.Color == nil {
		p.Color = color.White
	}
	p.Logger = loggerOrNop(p.Logger)
	p.Grid = p.Grid.withDefaults(s.DefaultGrid())
	if err := s.Validate(p.Grid, len(glyphs)); err != nil {
		return nil, err
	}

	face, err := fitFace(source, p)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()

	p.Logger.Debug("atlas: layout",
		"strategy", s.Name(),
		"glyphs", len(glyphs),
		"variants", p.Variants,
		"cell", p.Grid.CellSize,
		"font", face.Source().Name(),
		"size", face.Size())

	art, err := s.Layout(glyphs, face, p)
	if err != nil {
		return nil, err
	}
	art.Strategy = s.Name()
	art.Source = face.Source()
	art.Grid = p.Grid
	art.FontSize = face.Size()
	return art, nil
}

// fitFace auto-fits source to the grid, falling back to the default font.
func fitFace(source *text.FontSource, p Params) (text.Face, error) {
	if source != nil {
		face, err := text.AutoFit(source, p.Grid.Target(), p.FaceOptions...)
		if err == nil {
			return face, nil
		}
		if source.IsDefault() {
			return nil, err
		}
		p.Logger.Warn("atlas: font unusable, using default face",
			"font", source.Name(), "err", err)
	}

	face, err := text.AutoFit(text.DefaultFontSource(), p.Grid.Target(), p.FaceOptions...)
	if err != nil {
		return nil, fmt.Errorf("atlas: default face: %w", err)
	}
	return face, nil
}

func loggerOrNop(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

// ErrUnknownStrategy is returned by Lookup for an unregistered name.
var ErrUnknownStrategy = errors.New("atlas: unknown strategy")

// Lookup returns the built-in strategy registered under name.
func Lookup(name string) (Strategy, error) {
	if s, ok := Strategies[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}
