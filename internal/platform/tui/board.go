package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// Side panel layout, in characters.
const (
	panelGap   = 3
	panelWidth = 36
	rowTitle   = 0
	rowScore   = 2
	rowPlay    = 4
	rowSpeed   = 6
)

// Glyphs and colors used on the board.
const (
	cellGlyph = '█'
	cellColor = core.ColorBrightWhite
	gridColor = core.ColorGray
)

const restartHint = "Press space to restart the game."

// Board implements dodge.Presenter: the grid and entities go onto a pixel
// canvas, and a side panel shows the score, play button, speed buttons and
// the end-of-round result.
type Board struct {
	grid      dodge.Grid
	canvas    *core.Canvas
	score     string
	result    int
	showing   bool
	speeds    dodge.Speeds
	selected  string
	playLabel string
}

var _ dodge.Presenter = (*Board)(nil)

// NewBoard creates a board for the given geometry and terminal scale.
func NewBoard(grid dodge.Grid, term config.TerminalConfig) *Board {
	w, h := grid.CanvasSize()
	return &Board{
		grid:      grid,
		canvas:    core.NewCanvas(w, h, term.PxPerCol, term.PxPerRow),
		score:     "0",
		playLabel: dodge.LabelStart,
	}
}

// DrawGrid strokes Cols+1 vertical and Rows+1 horizontal lines.
func (b *Board) DrawGrid(g dodge.Grid) {
	for col := 0; col <= g.Cols; col++ {
		b.canvas.StrokeVLine(col*g.Cell, gridColor)
	}
	for row := 0; row <= g.Rows; row++ {
		b.canvas.StrokeHLine(row*g.Cell, gridColor)
	}
}

// DrawCell fills the square of a cell.
func (b *Board) DrawCell(p dodge.Position) {
	r := b.grid.CellRect(p)
	b.canvas.FillRect(r.X, r.Y, r.W, r.H, cellGlyph, cellColor)
}

// ClearCell erases the square of a cell.
func (b *Board) ClearCell(p dodge.Position) {
	r := b.grid.CellRect(p)
	b.canvas.ClearRect(r.X, r.Y, r.W, r.H)
}

// SetScoreText replaces the score display.
func (b *Board) SetScoreText(text string) {
	b.score = text
}

// ShowResult shows or hides the result panel.
func (b *Board) ShowResult(score int, visible bool) {
	b.result = score
	b.showing = visible
}

// SetSpeedOptions lists the speed buttons.
func (b *Board) SetSpeedOptions(speeds dodge.Speeds) {
	b.speeds = speeds
}

// HighlightSpeed marks the selected speed button.
func (b *Board) HighlightSpeed(name string) {
	b.selected = name
}

// SetPlayLabel replaces the play button caption.
func (b *Board) SetPlayLabel(label string) {
	b.playLabel = label
}

// Size returns the full board plus panel size in characters.
func (b *Board) Size() (w, h int) {
	s := b.canvas.Screen()
	return s.Width() + panelGap + panelWidth, core.Max(s.Height(), b.resultRow()+4)
}

// Render composes the canvas and the side panel into dst.
func (b *Board) Render(dst *core.Screen) {
	dst.Blit(b.canvas.Screen(), 0, 0)
	x := b.panelX()

	dst.DrawTextColor(x, rowTitle, "DODGE", core.ColorYellow)
	dst.DrawHLine(x, rowTitle+1, panelWidth, '─', gridColor)
	dst.DrawText(x, rowScore, "Score: "+b.score)
	dst.DrawTextColor(x, rowPlay, b.playButtonText(), core.ColorGreen)

	dst.DrawTextColor(x, rowSpeed, "Speed", core.ColorCyan)
	for i, sp := range b.speeds {
		marker, color := "  ", core.ColorDefault
		if sp.Name == b.selected {
			marker, color = "> ", core.ColorRed
		}
		line := fmt.Sprintf("%s%d %-10s %4dms", marker, i+1, sp.Name, sp.Interval.Milliseconds())
		dst.DrawTextColor(x, rowSpeed+1+i, line, color)
	}

	if b.showing {
		y := b.resultRow()
		box := core.NewRect(x, y, panelWidth, 4)
		dst.DrawBox(box, core.ColorYellow)
		dst.DrawText(x+1, y+1, fmt.Sprintf(" You scored = %d", b.result))
		dst.DrawText(x+1, y+2, " "+restartHint)
	}
}

// HitTest maps a click at character (x, y) onto a button action.
func (b *Board) HitTest(x, y int) core.Action {
	if b.playButton().Contains(x, y) {
		return core.ActionToggle
	}
	for i := range b.speeds {
		if core.NewRect(b.panelX(), rowSpeed+1+i, panelWidth, 1).Contains(x, y) {
			return core.SpeedAction(i)
		}
	}
	return core.ActionNone
}

func (b *Board) playButtonText() string {
	return "[ " + b.playLabel + " ]"
}

func (b *Board) playButton() core.Rect {
	return core.NewRect(b.panelX(), rowPlay, len(b.playButtonText()), 1)
}

func (b *Board) panelX() int {
	return b.canvas.Screen().Width() + panelGap
}

func (b *Board) resultRow() int {
	return rowSpeed + 1 + len(b.speeds) + 1
}
