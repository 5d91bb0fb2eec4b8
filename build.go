package glyphkit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/glyphkit/atlas"
	"github.com/gogpu/glyphkit/compress"
	"github.com/gogpu/glyphkit/glyph"
	"github.com/gogpu/glyphkit/placement"
	"github.com/gogpu/glyphkit/registry"
	"github.com/gogpu/glyphkit/text"
)

// Report summarizes a finished build.
type Report struct {
	// Artifacts holds the generated records and rasters.
	Artifacts *atlas.Artifacts
	// Font is the name of the font actually used.
	Font string
	// FontFallback is true when the built-in font replaced FontPath.
	FontFallback bool
	// Uncovered lists glyphs the font has no outline for.
	Uncovered []rune
	// Files lists every file written, in write order.
	Files []string
	// Compression is the result of the post-process stage.
	Compression compress.Result
}

// Build renders the glyph set and writes all artifacts to cfg.OutputDir.
//
// A missing or broken font is replaced by the built-in face, and a missing
// compressor skips compression; both only degrade the output. Any error
// returned fails the whole batch.
func Build(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	glyphs := glyph.Enumerate()
	if c := glyph.FoldCollisions(glyph.VariantNames(glyphs, cfg.Variants)); len(c) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrNameCollision, c)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("glyphkit: create output directory: %w", err)
	}

	source := loadFont(cfg.FontPath)
	defer func() {
		_ = source.Close()
	}()

	art, err := atlas.Generate(glyphs, source, cfg.Strategy, atlas.Params{
		Variants:    cfg.Variants,
		Color:       cfg.Color,
		Grid:        cfg.Grid,
		FaceOptions: []text.FaceOption{text.WithHinting(cfg.Hinting)},
		Logger:      log,
	})
	if err != nil {
		return nil, err
	}
	used := art.Source
	if used != source {
		defer func() {
			_ = used.Close()
		}()
	}
	report := fontReport(cfg, used)
	report.Artifacts = art

	missing, err := text.Coverage(used, glyph.Runes(glyphs))
	if err != nil {
		log.Warn("glyphkit: coverage check failed", "font", report.Font, "err", err)
	}
	for _, r := range missing {
		log.Warn("glyphkit: glyph not in font", "glyph", glyph.Describe(r), "font", report.Font)
	}
	report.Uncovered = missing

	w := &writer{dir: cfg.OutputDir}
	rasters, err := w.persist(art)
	report.Files = w.files
	if err != nil {
		return report, err
	}

	cmp := cfg.Compressor
	if cmp == nil {
		cmp = compress.Nop{}
	}
	res, err := cmp.Compress(cfg.OutputDir, rasters)
	if err != nil {
		return report, err
	}
	report.Compression = res
	if res.Skipped {
		log.Info("glyphkit: compression skipped, PNG rasters kept", "count", len(rasters))
	}

	log.Info("glyphkit: build finished",
		"strategy", art.Strategy,
		"font", report.Font,
		"size", art.FontSize,
		"glyphs", len(glyphs),
		"variants", cfg.Variants,
		"files", len(report.Files))
	return report, nil
}

// fontReport describes the font the glyphs were actually drawn with.
// Any use of the built-in face when a font file was requested is a
// fallback, whether the file failed to load or failed to fit.
func fontReport(cfg Config, used *text.FontSource) *Report {
	return &Report{
		Font:         used.Name(),
		FontFallback: cfg.FontPath != "" && used.IsDefault(),
	}
}

// loadFont opens path, falling back to the built-in font.
func loadFont(path string) *text.FontSource {
	if path == "" {
		return text.DefaultFontSource()
	}
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		Logger().Warn("glyphkit: font unavailable, using built-in face", "path", path, "err", err)
		return text.DefaultFontSource()
	}
	return source
}

// writer persists artifacts and records every file it creates.
type writer struct {
	dir   string
	files []string
}

// persist writes rasters, registry, descriptors and materials.
// It returns the raster paths for the compression stage.
func (w *writer) persist(art *atlas.Artifacts) ([]string, error) {
	rasters := make([]string, 0, len(art.Rasters))
	for _, r := range art.Rasters {
		path := filepath.Join(w.dir, r.Name)
		if err := r.Canvas.SavePNG(path); err != nil {
			return rasters, fmt.Errorf("glyphkit: write %s: %w", r.Name, err)
		}
		w.files = append(w.files, path)
		rasters = append(rasters, path)
	}

	if len(art.Entries) > 0 {
		var buf bytes.Buffer
		if err := registry.WriteRegistry(&buf, art.Entries); err != nil {
			return rasters, err
		}
		if err := w.write(registry.RegistryFile, buf.Bytes()); err != nil {
			return rasters, err
		}
	}

	for _, d := range art.Descriptors {
		var buf bytes.Buffer
		if _, err := d.WriteTo(&buf); err != nil {
			return rasters, err
		}
		if err := w.write(d.FileName(), buf.Bytes()); err != nil {
			return rasters, err
		}
	}

	var buf bytes.Buffer
	if err := registry.WriteMaterials(&buf, art.Materials); err != nil {
		return rasters, err
	}
	if err := w.write(registry.MaterialFile, buf.Bytes()); err != nil {
		return rasters, err
	}

	Logger().Debug("glyphkit: artifacts written", "dir", w.dir, "files", len(w.files))
	return rasters, nil
}

func (w *writer) write(name string, data []byte) error {
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // artifacts are meant to be world-readable
		return fmt.Errorf("glyphkit: write %s: %w", name, err)
	}
	w.files = append(w.files, path)
	return nil
}

// Script compiles s with cfg's spacing and writes a Lua placement block
// for anchor to w. Variant indices are bounded by cfg.Variants and
// overflow is handled by policy.
func Script(w io.Writer, cfg Config, s, anchor string, policy placement.Overflow) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cmds, err := placement.Compile(s, cfg.Spacing,
		placement.WithVariantLimit(cfg.Variants),
		placement.WithOverflow(policy))
	if err != nil {
		return err
	}
	for _, c := range cmds {
		if c.Base == glyph.Unknown && c.Rune != '_' {
			Logger().Debug("glyphkit: unmapped character", "glyph", glyph.Describe(c.Rune), "variant", c.Variant)
		}
	}
	return placement.WriteLua(w, placement.Script{Text: s, Anchor: anchor, Commands: cmds})
}
