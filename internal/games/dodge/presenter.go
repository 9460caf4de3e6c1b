package dodge

import "time"

// Presenter is the surface the game draws on and reports to.
// Implementations only project state; they hold no game logic.
type Presenter interface {
	// DrawGrid draws the board lines once at start.
	DrawGrid(g Grid)
	// DrawCell fills the square of one cell.
	DrawCell(p Position)
	// ClearCell erases the square of one cell.
	ClearCell(p Position)
	// SetScoreText replaces the score display.
	SetScoreText(text string)
	// ShowResult shows or hides the end-of-round panel.
	ShowResult(score int, visible bool)
	// SetSpeedOptions lists the selectable speed presets.
	SetSpeedOptions(speeds Speeds)
	// HighlightSpeed marks the selected speed preset.
	HighlightSpeed(name string)
	// SetPlayLabel replaces the play button caption.
	SetPlayLabel(label string)
}

// Scheduler drives Game.Tick at a fixed interval until stopped.
// Start replaces any schedule already running.
type Scheduler interface {
	Start(interval time.Duration)
	Stop()
}
