// Package compress converts intermediate PNG rasters into engine textures.
//
// Compression is an optional post-process. [Detect] returns a [Texconv]
// compressor when the external tool is present and [Nop] otherwise, so a
// build never fails just because the tool is missing.
package compress

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultFormat is the texture format passed to texconv.
const DefaultFormat = "BC3_UNORM"

// ErrToolFailed is returned when the external tool exits unsuccessfully.
var ErrToolFailed = errors.New("compress: tool failed")

// Result describes what a Compressor did.
type Result struct {
	// Skipped is true when no compression ran.
	Skipped bool
	// Removed lists intermediate files deleted after compression.
	Removed []string
}

// Compressor converts raster files in place.
type Compressor interface {
	// Compress converts paths into compressed textures written to dir.
	// On success the inputs are removed.
	Compress(dir string, paths []string) (Result, error)
}

// Nop is a Compressor that leaves every input untouched.
type Nop struct{}

// Compress implements Compressor.
func (Nop) Compress(string, []string) (Result, error) {
	return Result{Skipped: true}, nil
}

// Texconv runs Microsoft's texconv tool.
type Texconv struct {
	// Path is the texconv executable.
	Path string
	// Format is the output format; DefaultFormat if empty.
	Format string
}

// Args returns the command-line arguments for compressing paths into dir.
func (t Texconv) Args(dir string, paths []string) []string {
	format := t.Format
	if format == "" {
		format = DefaultFormat
	}
	args := []string{"-f", format, "-y", "-o", dir}
	return append(args, paths...)
}

// Compress implements Compressor.
func (t Texconv) Compress(dir string, paths []string) (Result, error) {
	if len(paths) == 0 {
		return Result{Skipped: true}, nil
	}

	// #nosec G204 -- the tool path is provided by the user
	cmd := exec.Command(t.Path, t.Args(dir, paths)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w: %s", ErrToolFailed, filepath.Base(t.Path), err, out)
	}

	res := Result{Removed: make([]string, 0, len(paths))}
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			return res, fmt.Errorf("compress: remove intermediate: %w", err)
		}
		res.Removed = append(res.Removed, p)
	}
	return res, nil
}

// Detect returns a Texconv for path if it names an existing regular file,
// or Nop otherwise.
func Detect(path string) Compressor {
	if path == "" {
		return Nop{}
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Nop{}
	}
	return Texconv{Path: path}
}
