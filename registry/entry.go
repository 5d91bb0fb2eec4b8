package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Default artifact names.
const (
	// RegistryFile is the registry file name the engine loads.
	RegistryFile = "spritea.sta"
	// SheetName is the sheet reference used in registry lines and the
	// sheet material.
	SheetName = "font_sheet"
)

// Header lines written at the top of the registry file.
var Header = []string{
	"# BZ Optimized Sprite Sheet",
	"# HARDCODED TO " + RegistryFile,
}

// ErrOutOfBounds is returned when an entry does not fit its sheet.
var ErrOutOfBounds = errors.New("registry: entry exceeds sheet bounds")

// Entry locates one variant's pixels within a sheet.
type Entry struct {
	Name        string
	Sheet       string
	X, Y        int
	Width       int
	Height      int
	SheetWidth  int
	SheetHeight int
	ColorMask   uint32
}

// Validate reports whether e lies within its sheet.
func (e Entry) Validate() error {
	if e.X < 0 || e.Y < 0 || e.Width <= 0 || e.Height <= 0 ||
		e.X+e.Width > e.SheetWidth || e.Y+e.Height > e.SheetHeight {
		return fmt.Errorf("%w: %q at (%d,%d %dx%d) in %dx%d",
			ErrOutOfBounds, e.Name, e.X, e.Y, e.Width, e.Height, e.SheetWidth, e.SheetHeight)
	}
	return nil
}

// String formats e as one registry data line.
func (e Entry) String() string {
	return fmt.Sprintf("%q %s %d %d %d %d %d %d 0x%08X",
		e.Name, e.Sheet, e.X, e.Y, e.Width, e.Height, e.SheetWidth, e.SheetHeight, e.ColorMask)
}

// WriteRegistry writes the header and one line per entry.
// Lines are separated by "\n" with no trailing newline.
func WriteRegistry(w io.Writer, entries []Entry) error {
	lines := make([]string, 0, len(Header)+len(entries))
	lines = append(lines, Header...)
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		lines = append(lines, e.String())
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// ParseError reports a malformed registry line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("registry: line %d: %s", e.Line, e.Msg)
}

// ParseRegistry reads entries from a registry file.
// Blank lines and lines starting with '#' are skipped.
func ParseRegistry(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: n, Msg: err.Error()}
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return entries, nil
}

func parseLine(line string) (Entry, error) {
	if !strings.HasPrefix(line, `"`) {
		return Entry{}, errors.New("missing quoted name")
	}
	end := strings.Index(line[1:], `"`)
	if end < 0 {
		return Entry{}, errors.New("unterminated name")
	}
	name := line[1 : end+1]
	fields := strings.Fields(line[end+2:])
	if len(fields) != 8 {
		return Entry{}, fmt.Errorf("want 8 fields after name, got %d", len(fields))
	}

	var nums [6]int
	for i := range nums {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return Entry{}, fmt.Errorf("field %d: %w", i+2, err)
		}
		nums[i] = v
	}
	mask, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(fields[7]), "0x"), 16, 32)
	if err != nil {
		return Entry{}, fmt.Errorf("color mask: %w", err)
	}

	return Entry{
		Name:        name,
		Sheet:       fields[0],
		X:           nums[0],
		Y:           nums[1],
		Width:       nums[2],
		Height:      nums[3],
		SheetWidth:  nums[4],
		SheetHeight: nums[5],
		ColorMask:   uint32(mask),
	}, nil
}
