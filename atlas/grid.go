package atlas

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for grid validation.
var (
	// ErrInvalidGrid is returned when grid dimensions are not usable.
	ErrInvalidGrid = errors.New("atlas: invalid grid")

	// ErrSheetOverflow is returned when the glyphs do not fit the sheet.
	ErrSheetOverflow = errors.New("atlas: glyphs do not fit the sheet")
)

// Grid is the uniform cell layout of a sheet.
type Grid struct {
	// CellSize is the side of one square cell in pixels.
	CellSize int
	// Columns is the number of cells per row.
	Columns int
	// SheetSize is the side of the square sheet in pixels.
	SheetSize int
	// Margin is subtracted from CellSize to get the auto-fit target.
	Margin int
}

// withDefaults fills zero fields from def.
func (g Grid) withDefaults(def Grid) Grid {
	if g.CellSize == 0 {
		g.CellSize = def.CellSize
	}
	if g.Columns == 0 {
		g.Columns = def.Columns
	}
	if g.SheetSize == 0 {
		g.SheetSize = def.SheetSize
	}
	if g.Margin == 0 {
		g.Margin = def.Margin
	}
	return g
}

// Target returns the pixel budget for the auto-fit probe glyph.
func (g Grid) Target() float64 {
	return float64(g.CellSize - g.Margin)
}

// Cell returns the column and row of the k-th cell.
func (g Grid) Cell(k int) (col, row int) {
	return k % g.Columns, k / g.Columns
}

// CellRect returns the pixel rectangle of the k-th cell.
func (g Grid) CellRect(k int) image.Rectangle {
	col, row := g.Cell(k)
	x, y := col*g.CellSize, row*g.CellSize
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// Rows returns the number of rows needed for n cells.
func (g Grid) Rows(n int) int {
	return (n + g.Columns - 1) / g.Columns
}

// validateCell checks the cell geometry alone.
func (g Grid) validateCell() error {
	if g.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidGrid, g.CellSize)
	}
	if g.Margin < 0 || g.Margin >= g.CellSize {
		return fmt.Errorf("%w: margin %d for cell size %d", ErrInvalidGrid, g.Margin, g.CellSize)
	}
	return nil
}

// Validate checks that n cells fit the sheet.
func (g Grid) Validate(n int) error {
	if err := g.validateCell(); err != nil {
		return err
	}
	if g.Columns <= 0 {
		return fmt.Errorf("%w: %d columns", ErrInvalidGrid, g.Columns)
	}
	if g.Columns*g.CellSize > g.SheetSize {
		return fmt.Errorf("%w: %d columns of %dpx exceed %dpx",
			ErrSheetOverflow, g.Columns, g.CellSize, g.SheetSize)
	}
	if rows := g.Rows(n); rows*g.CellSize > g.SheetSize {
		return fmt.Errorf("%w: %d rows of %dpx exceed %dpx",
			ErrSheetOverflow, rows, g.CellSize, g.SheetSize)
	}
	return nil
}
