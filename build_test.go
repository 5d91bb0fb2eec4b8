package glyphkit

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphkit/atlas"
	"github.com/gogpu/glyphkit/compress"
	"github.com/gogpu/glyphkit/glyph"
	"github.com/gogpu/glyphkit/placement"
	"github.com/gogpu/glyphkit/registry"
	"github.com/gogpu/glyphkit/text"
)

func TestBuildSheet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	cfg, err := NewConfig(WithOutputDir(dir), WithVariants(2))
	if err != nil {
		t.Fatal(err)
	}

	report, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !report.Compression.Skipped {
		t.Error("default config should skip compression")
	}
	if report.FontFallback {
		t.Error("no font path was given, FontFallback should be false")
	}
	if len(report.Uncovered) != 0 {
		t.Errorf("built-in font should cover the glyph set, missing %q", report.Uncovered)
	}

	for _, name := range []string{"font_sheet.png", registry.RegistryFile, registry.MaterialFile, "uiA1.odf", "ui_ti2.odf"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
	if want := 1 + 1 + glyph.Count*2 + 1; len(report.Files) != want {
		t.Errorf("len(Files) = %d, want %d", len(report.Files), want)
	}

	f, err := os.Open(filepath.Join(dir, registry.RegistryFile))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	entries, err := registry.ParseRegistry(f)
	if err != nil {
		t.Fatalf("ParseRegistry failed: %v", err)
	}
	if len(entries) != glyph.Count*2 {
		t.Fatalf("registry has %d entries, want %d", len(entries), glyph.Count*2)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name] = true
		if e.X+e.Width > e.SheetWidth || e.Y+e.Height > e.SheetHeight {
			t.Errorf("%s exceeds the sheet", e.Name)
		}
	}

	odfs, err := filepath.Glob(filepath.Join(dir, "*.odf"))
	if err != nil {
		t.Fatal(err)
	}
	if len(odfs) != glyph.Count*2 {
		t.Fatalf("found %d descriptors, want %d", len(odfs), glyph.Count*2)
	}
	for _, path := range odfs {
		body, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		tex, ok := registry.ParseTexture(string(body))
		if !ok {
			t.Errorf("%s has no textureName", filepath.Base(path))
			continue
		}
		if !names[tex] {
			t.Errorf("%s references %q, which is not in the registry", filepath.Base(path), tex)
		}
		if tex+registry.DescriptorExt != filepath.Base(path) {
			t.Errorf("%s references %q, want its own name", filepath.Base(path), tex)
		}
	}

	mat, err := os.ReadFile(filepath.Join(dir, registry.MaterialFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(mat), "set_texture_alias DiffuseMap font_sheet.dds") {
		t.Errorf("material file does not bind the sheet:\n%s", mat)
	}
}

func TestBuildIndividual(t *testing.T) {
	dir := t.TempDir()
	cfg, err := NewConfig(WithOutputDir(dir), WithVariants(1), WithStrategy(atlas.Individual{}))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Build(cfg); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	pngs, _ := filepath.Glob(filepath.Join(dir, "*.png"))
	if len(pngs) != glyph.Count {
		t.Errorf("found %d PNGs, want %d", len(pngs), glyph.Count)
	}
	if _, err := os.Stat(filepath.Join(dir, registry.RegistryFile)); !errors.Is(err, os.ErrNotExist) {
		t.Error("individual builds should not write a registry")
	}

	body, err := os.ReadFile(filepath.Join(dir, "uiLQ1.odf"))
	if err != nil {
		t.Fatal(err)
	}
	if tex, _ := registry.ParseTexture(string(body)); tex != "uiLQ1.tga" {
		t.Errorf("textureName = %q, want uiLQ1.tga", tex)
	}

	mat, err := os.ReadFile(filepath.Join(dir, registry.MaterialFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(mat), "material uiLQ1.tga : BZSprite/Additive\n{\n\tset_texture_alias DiffuseMap uiLQ.dds\n}\n\n") {
		t.Error("material file lacks the uiLQ1.tga block")
	}
}

func TestBuildFontFallback(t *testing.T) {
	dir := t.TempDir()
	cfg, err := NewConfig(
		WithOutputDir(dir),
		WithVariants(1),
		WithFontPath(filepath.Join(dir, "Arial.ttf")),
	)
	if err != nil {
		t.Fatal(err)
	}

	report, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build should survive a missing font: %v", err)
	}
	if !report.FontFallback {
		t.Error("FontFallback = false, want true")
	}
}

func TestBuildCompress(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tool is a shell script")
	}
	tool := filepath.Join(t.TempDir(), "texconv")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	cfg, err := NewConfig(WithOutputDir(dir), WithVariants(1), WithCompressor(compress.Detect(tool)))
	if err != nil {
		t.Fatal(err)
	}

	report, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if report.Compression.Skipped || len(report.Compression.Removed) != 1 {
		t.Errorf("Compression = %+v, want one removed raster", report.Compression)
	}
	if _, err := os.Stat(filepath.Join(dir, "font_sheet.png")); !errors.Is(err, os.ErrNotExist) {
		t.Error("sheet PNG should be removed after compression")
	}
	if _, err := os.Stat(filepath.Join(dir, registry.RegistryFile)); err != nil {
		t.Errorf("text artifacts must survive compression: %v", err)
	}
}

func TestBuildInvalidConfig(t *testing.T) {
	if _, err := Build(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Build(Config{}) error = %v, want ErrInvalidConfig", err)
	}
}

func TestScript(t *testing.T) {
	cfg, err := NewConfig(WithVariants(2), WithSpacing(1))
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := Script(&sb, cfg, "A A", "h", placement.OverflowError); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		`MakeExplosion("uiA1", p + (r * -1.00) + (u * 2.5))`,
		`MakeExplosion("uiA2", p + (r * 1.00) + (u * 2.5))`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("script missing %q:\n%s", want, out)
		}
	}

	err = Script(&sb, cfg, "AAA", "h", placement.OverflowError)
	if !errors.Is(err, placement.ErrVariantOverflow) {
		t.Errorf("Script(AAA) error = %v, want ErrVariantOverflow", err)
	}
}

func TestScriptLogsUnmapped(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf strings.Builder
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	cfg, err := NewConfig()
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := Script(&out, cfg, "A€_", "h", placement.OverflowError); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"ui_un1"`) || !strings.Contains(out.String(), `"ui_un2"`) {
		t.Errorf("unmapped rune and underscore should share ui_un:\n%s", out.String())
	}
	if !strings.Contains(buf.String(), "EURO SIGN") {
		t.Errorf("expected debug log naming the euro sign, got: %s", buf.String())
	}
	if strings.Count(buf.String(), "unmapped character") != 1 {
		t.Errorf("only the euro sign is unmapped, got: %s", buf.String())
	}
}

func TestFontReport(t *testing.T) {
	def := text.DefaultFontSource()
	t.Cleanup(func() { _ = def.Close() })
	own, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = own.Close() })

	tests := []struct {
		name     string
		fontPath string
		used     *text.FontSource
		fallback bool
	}{
		{"no font requested", "", def, false},
		{"requested font used", "Orbitron.ttf", own, false},
		{"requested font replaced", "Orbitron.ttf", def, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fontReport(Config{FontPath: tt.fontPath}, tt.used)
			if r.FontFallback != tt.fallback {
				t.Errorf("FontFallback = %v, want %v", r.FontFallback, tt.fallback)
			}
			if r.Font != tt.used.Name() {
				t.Errorf("Font = %q, want %q", r.Font, tt.used.Name())
			}
		})
	}
}

func TestBuildHinting(t *testing.T) {
	dir := t.TempDir()
	cfg, err := NewConfig(WithOutputDir(dir), WithVariants(1), WithHinting(text.HintingNone))
	if err != nil {
		t.Fatal(err)
	}
	report, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	source := text.DefaultFontSource()
	t.Cleanup(func() { _ = source.Close() })
	want, err := text.FitSize(source, report.Artifacts.Grid.Target(), text.WithHinting(text.HintingNone))
	if err != nil {
		t.Fatal(err)
	}
	if report.Artifacts.FontSize != want {
		t.Errorf("FontSize = %v, want %v", report.Artifacts.FontSize, want)
	}
}
