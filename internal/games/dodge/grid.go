package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Position is a 1-based grid cell address.
type Position struct {
	Row int
	Col int
}

// Grid describes board geometry: its size in cells and the pixel size of a cell.
type Grid struct {
	Cols  int
	Rows  int
	Cell  int // Cell size in pixels
	Inset int // Blank pixels between a cell border and its filled square
}

// GridFromConfig builds board geometry from the grid section of the config.
func GridFromConfig(cfg config.GridConfig) Grid {
	return Grid{
		Cols:  cfg.Cols,
		Rows:  cfg.Rows,
		Cell:  cfg.Cell,
		Inset: cfg.Inset,
	}
}

// CellOrigin returns the top-left pixel of the filled square for a 1-based cell.
func (g Grid) CellOrigin(row, col int) (x, y int) {
	x = (col-1)*g.Cell + g.Inset
	y = (row-1)*g.Cell + g.Inset
	return x, y
}

// CellRect returns the filled square of a cell in canvas pixels.
func (g Grid) CellRect(p Position) core.Rect {
	x, y := g.CellOrigin(p.Row, p.Col)
	size := g.Cell - 2*g.Inset
	return core.NewRect(x, y, size, size)
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Position) bool {
	return core.NewRect(1, 1, g.Cols, g.Rows).Contains(p.Col, p.Row)
}

// NewPosition returns the cell at (row, col) when it lies on the board.
func (g Grid) NewPosition(row, col int) (Position, bool) {
	p := Position{Row: row, Col: col}
	if !g.Contains(p) {
		return Position{}, false
	}
	return p, true
}

// CanvasSize returns the board size in pixels.
func (g Grid) CanvasSize() (w, h int) {
	return g.Cols * g.Cell, g.Rows * g.Cell
}
