package core

import "math"

// Line-mask bits recording which directions a grid line leaves a character cell.
const (
	lineUp uint8 = 1 << iota
	lineDown
	lineLeft
	lineRight
)

var junctionGlyphs = map[uint8]rune{
	lineUp:                                  '│',
	lineDown:                                '│',
	lineUp | lineDown:                       '│',
	lineLeft:                                '─',
	lineRight:                               '─',
	lineLeft | lineRight:                    '─',
	lineDown | lineRight:                    '┌',
	lineDown | lineLeft:                     '┐',
	lineUp | lineRight:                      '└',
	lineUp | lineLeft:                       '┘',
	lineUp | lineDown | lineRight:           '├',
	lineUp | lineDown | lineLeft:            '┤',
	lineDown | lineLeft | lineRight:         '┬',
	lineUp | lineLeft | lineRight:           '┴',
	lineUp | lineDown | lineLeft | lineRight: '┼',
}

// Canvas is a pixel-addressed drawing surface rasterized onto a Screen.
// One character column spans PxPerCol pixels and one character row spans
// PxPerRow pixels. A filled rectangle covers exactly the characters lying
// fully inside it; a line occupies the character nearest to its coordinate.
type Canvas struct {
	widthPx  int
	heightPx int
	pxPerCol float64
	pxPerRow float64
	screen   *Screen
	lines    [][]uint8
}

// NewCanvas creates a canvas of widthPx by heightPx pixels.
// Lines on the far edges land in the last column and row of the screen.
func NewCanvas(widthPx, heightPx int, pxPerCol, pxPerRow float64) *Canvas {
	if pxPerCol <= 0 {
		pxPerCol = 1
	}
	if pxPerRow <= 0 {
		pxPerRow = 1
	}

	c := &Canvas{
		widthPx:  widthPx,
		heightPx: heightPx,
		pxPerCol: pxPerCol,
		pxPerRow: pxPerRow,
	}
	cols := Max(int(math.Round(float64(widthPx)/pxPerCol)), 1)
	rows := Max(int(math.Round(float64(heightPx)/pxPerRow)), 1)
	c.screen = NewScreen(cols, rows)
	c.lines = make([][]uint8, rows)
	for y := range c.lines {
		c.lines[y] = make([]uint8, cols)
	}
	return c
}

// Screen returns the character buffer the canvas draws into.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.widthPx, c.heightPx
}

// CharRect returns the character cells fully covered by a pixel rectangle,
// clipped to the screen.
func (c *Canvas) CharRect(x, y, w, h int) Rect {
	x0 := int(math.Ceil(float64(x) / c.pxPerCol))
	x1 := int(math.Floor(float64(x+w) / c.pxPerCol))
	y0 := int(math.Ceil(float64(y) / c.pxPerRow))
	y1 := int(math.Floor(float64(y+h) / c.pxPerRow))

	x0 = Clamp(x0, 0, c.screen.Width())
	x1 = Clamp(x1, 0, c.screen.Width())
	y0 = Clamp(y0, 0, c.screen.Height())
	y1 = Clamp(y1, 0, c.screen.Height())

	return NewRect(x0, y0, Max(x1-x0, 0), Max(y1-y0, 0))
}

// FillRect paints the pixel rectangle with the given rune and color.
func (c *Canvas) FillRect(x, y, w, h int, fill rune, color Color) {
	r := c.CharRect(x, y, w, h)
	if r.Empty() {
		return
	}
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			c.lines[cy][cx] = 0
		}
	}
	c.screen.DrawRect(r, fill, color)
}

// ClearRect erases the pixel rectangle back to blank.
func (c *Canvas) ClearRect(x, y, w, h int) {
	c.FillRect(x, y, w, h, ' ', ColorDefault)
}

// StrokeVLine draws a vertical line at pixel column x spanning the full height.
func (c *Canvas) StrokeVLine(x int, color Color) {
	if x < 0 || x > c.widthPx {
		return
	}
	col := c.lineCol(x)
	last := c.lineRow(c.heightPx)
	for row := 0; row <= last; row++ {
		var mask uint8
		if row > 0 {
			mask |= lineUp
		}
		if row < last {
			mask |= lineDown
		}
		c.addLine(col, row, mask, color)
	}
}

// StrokeHLine draws a horizontal line at pixel row y spanning the full width.
func (c *Canvas) StrokeHLine(y int, color Color) {
	if y < 0 || y > c.heightPx {
		return
	}
	row := c.lineRow(y)
	last := c.lineCol(c.widthPx)
	for col := 0; col <= last; col++ {
		var mask uint8
		if col > 0 {
			mask |= lineLeft
		}
		if col < last {
			mask |= lineRight
		}
		c.addLine(col, row, mask, color)
	}
}

// addLine merges line directions into a character and redraws its glyph.
func (c *Canvas) addLine(col, row int, mask uint8, color Color) {
	if !c.screen.Bounds().Contains(col, row) {
		return
	}
	c.lines[row][col] |= mask
	c.screen.SetCell(col, row, junctionGlyphs[c.lines[row][col]], color)
}

func (c *Canvas) lineCol(x int) int {
	return Min(int(math.Round(float64(x)/c.pxPerCol)), c.screen.Width()-1)
}

func (c *Canvas) lineRow(y int) int {
	return Min(int(math.Round(float64(y)/c.pxPerRow)), c.screen.Height()-1)
}
