// Command glyphkit builds HUD glyph assets and generates placement scripts.
//
// Usage:
//
//	glyphkit build  [-out dir] [-font file.ttf] [-variants n] [-color #00FF00]
//	                [-mode sheet|individual] [-hinting none|vertical|full]
//	                [-texconv texconv.exe]
//	glyphkit script [-variants n] [-spacing s] [-handle h] [-overflow error|wrap|clamp] text
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/glyphkit"
	"github.com/gogpu/glyphkit/atlas"
	"github.com/gogpu/glyphkit/compress"
	"github.com/gogpu/glyphkit/placement"
	"github.com/gogpu/glyphkit/text"
)

// maxVariants bounds the variant count accepted on the command line.
const maxVariants = 20

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "glyphkit: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("missing command")
	}
	switch args[0] {
	case "build":
		return runBuild(args[1:], stdout, stderr)
	case "script":
		return runScript(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: glyphkit <build|script> [flags]")
	fmt.Fprintln(w, "run 'glyphkit <command> -h' for command flags")
}

// common holds flags shared by both commands.
type common struct {
	variants int
	spacing  float64
	verbose  bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.IntVar(&c.variants, "variants", glyphkit.DefaultVariants, fmt.Sprintf("variants per character (1-%d)", maxVariants))
	fs.Float64Var(&c.spacing, "spacing", glyphkit.DefaultSpacing, "distance between characters")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
}

func (c *common) options() ([]glyphkit.Option, error) {
	if c.variants < 1 || c.variants > maxVariants {
		return nil, fmt.Errorf("-variants must be between 1 and %d, got %d", maxVariants, c.variants)
	}
	return []glyphkit.Option{
		glyphkit.WithVariants(c.variants),
		glyphkit.WithSpacing(c.spacing),
	}, nil
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	glyphkit.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func runBuild(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c common
	c.register(fs)
	wd, _ := os.Getwd()
	var (
		out     = fs.String("out", filepath.Join(wd, glyphkit.DefaultOutputDir), "output directory")
		font    = fs.String("font", "", "font file (.ttf/.otf); built-in font if empty or unreadable")
		col     = fs.String("color", glyphkit.DefaultColor, "glyph color")
		mode    = fs.String("mode", atlas.Sheet{}.Name(), "export strategy: sheet or individual")
		cell    = fs.Int("cell", 0, "cell size in pixels (0 = strategy default)")
		cols    = fs.Int("columns", 0, "sheet columns, sheet mode only (0 = strategy default)")
		sheet   = fs.Int("sheet", 0, "sheet size in pixels, sheet mode only (0 = strategy default)")
		margin  = fs.Int("margin", 0, "fit margin in pixels (0 = strategy default)")
		hinting = fs.String("hinting", text.HintingFull.String(), "font hinting: none, vertical or full")
		texconv = fs.String("texconv", filepath.Join(wd, "texconv.exe"), "texture compressor; skipped if missing")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(stderr, c.verbose)

	opts, err := c.options()
	if err != nil {
		return err
	}
	strategy, err := atlas.Lookup(*mode)
	if err != nil {
		return err
	}
	if err := checkSheetFlags(fs, strategy); err != nil {
		return err
	}
	color, err := glyphkit.ParseColor(*col)
	if err != nil {
		return err
	}
	hint, err := text.ParseHinting(*hinting)
	if err != nil {
		return err
	}

	opts = append(opts,
		glyphkit.WithOutputDir(*out),
		glyphkit.WithFontPath(*font),
		glyphkit.WithColor(color),
		glyphkit.WithHinting(hint),
		glyphkit.WithStrategy(strategy),
		glyphkit.WithGrid(atlas.Grid{CellSize: *cell, Columns: *cols, SheetSize: *sheet, Margin: *margin}),
		glyphkit.WithCompressor(compress.Detect(*texconv)),
	)
	cfg, err := glyphkit.NewConfig(opts...)
	if err != nil {
		return err
	}

	report, err := glyphkit.Build(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Build finished in %s mode: %d files in %s\n",
		report.Artifacts.Strategy, len(report.Files), cfg.OutputDir)
	return nil
}

// checkSheetFlags rejects sheet geometry flags for strategies that
// draw one canvas per glyph.
func checkSheetFlags(fs *flag.FlagSet, s atlas.Strategy) error {
	if _, ok := s.(atlas.Sheet); ok {
		return nil
	}
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err == nil && (f.Name == "columns" || f.Name == "sheet") {
			err = fmt.Errorf("-%s applies to sheet mode only, not %s", f.Name, s.Name())
		}
	})
	return err
}

func runScript(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c common
	c.register(fs)
	var (
		handle   = fs.String("handle", "h", "Lua expression of the anchor handle")
		overflow = fs.String("overflow", placement.OverflowError.String(), "repeat policy past -variants: error, wrap or clamp")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(stderr, c.verbose)

	if fs.NArg() == 0 {
		return errors.New("script: missing text")
	}
	text := strings.Join(fs.Args(), " ")

	opts, err := c.options()
	if err != nil {
		return err
	}
	policy, err := placement.ParseOverflow(*overflow)
	if err != nil {
		return err
	}
	cfg, err := glyphkit.NewConfig(opts...)
	if err != nil {
		return err
	}

	if err := glyphkit.Script(stdout, cfg, text, *handle, policy); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout)
	return err
}
