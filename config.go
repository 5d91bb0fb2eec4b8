package glyphkit

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/glyphkit/atlas"
	"github.com/gogpu/glyphkit/compress"
	"github.com/gogpu/glyphkit/text"
)

// Defaults for a Config built without options.
const (
	DefaultOutputDir = "output"
	DefaultVariants  = 10
	DefaultSpacing   = 1.5
	DefaultColor     = "#00FF00"
)

// Config holds everything a build or script needs.
// A Config is a value: options produce a new one and nothing mutates it
// during a build.
type Config struct {
	// OutputDir receives all artifacts. It is created if missing.
	OutputDir string
	// FontPath is a TTF/OTF file. Empty or unloadable selects the built-in font.
	FontPath string
	// Variants is the number of named variants per glyph.
	Variants int
	// Color fills the glyphs. It must not be fully transparent.
	Color color.NRGBA
	// Hinting is applied to the fitted face.
	Hinting text.Hinting
	// Spacing is the distance between character slots in scripts.
	Spacing float64
	// Strategy selects sheet or per-glyph output.
	Strategy atlas.Strategy
	// Grid overrides the strategy's cell geometry. Zero fields keep the default.
	Grid atlas.Grid
	// Compressor post-processes rasters. Nil means no compression.
	Compressor compress.Compressor
}

// Option configures a Config.
//
// Example:
//
//	cfg, err := glyphkit.NewConfig(
//	    glyphkit.WithStrategy(atlas.Individual{}),
//	    glyphkit.WithCompressor(compress.Detect("texconv.exe")),
//	)
type Option func(*Config)

// defaultConfig returns the configuration used when no options are given.
func defaultConfig() Config {
	c, err := ParseColor(DefaultColor)
	if err != nil {
		panic("glyphkit: bad default color: " + err.Error())
	}
	return Config{
		OutputDir:  DefaultOutputDir,
		Variants:   DefaultVariants,
		Color:      c,
		Spacing:    DefaultSpacing,
		Hinting:    text.HintingFull,
		Strategy:   atlas.Sheet{},
		Compressor: compress.Nop{},
	}
}

// NewConfig applies opts to the defaults and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.OutputDir == "":
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	case c.Variants < 1:
		return fmt.Errorf("%w: variants %d, need at least 1", ErrInvalidConfig, c.Variants)
	case math.IsNaN(c.Spacing) || math.IsInf(c.Spacing, 0):
		return fmt.Errorf("%w: spacing %v", ErrInvalidConfig, c.Spacing)
	case c.Color.A == 0:
		return fmt.Errorf("%w: transparent color", ErrInvalidConfig)
	case c.Strategy == nil:
		return fmt.Errorf("%w: no strategy", ErrInvalidConfig)
	}
	return nil
}

// WithOutputDir sets the artifact directory.
func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.OutputDir = dir
	}
}

// WithFontPath sets the font file.
func WithFontPath(path string) Option {
	return func(c *Config) {
		c.FontPath = path
	}
}

// WithVariants sets the variant count per glyph.
func WithVariants(n int) Option {
	return func(c *Config) {
		c.Variants = n
	}
}

// WithColor sets the glyph color. A nil color is stored as transparent
// and rejected by Validate.
func WithColor(col color.Color) Option {
	return func(c *Config) {
		if col == nil {
			c.Color = color.NRGBA{}
			return
		}
		c.Color = color.NRGBAModel.Convert(col).(color.NRGBA)
	}
}

// WithHinting sets the hinting of the fitted face.
func WithHinting(h text.Hinting) Option {
	return func(c *Config) {
		c.Hinting = h
	}
}

// WithSpacing sets the slot spacing used by scripts.
func WithSpacing(s float64) Option {
	return func(c *Config) {
		c.Spacing = s
	}
}

// WithStrategy selects the layout strategy.
func WithStrategy(s atlas.Strategy) Option {
	return func(c *Config) {
		c.Strategy = s
	}
}

// WithGrid overrides cell geometry.
func WithGrid(g atlas.Grid) Option {
	return func(c *Config) {
		c.Grid = g
	}
}

// WithCompressor sets the raster post-process.
func WithCompressor(cmp compress.Compressor) Option {
	return func(c *Config) {
		c.Compressor = cmp
	}
}

// ParseColor parses a hex color such as "#00FF00" or "#0f0" into an
// opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("glyphkit: color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
