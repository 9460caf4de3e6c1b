// Package dodge implements a falling-obstacle avoidance game on a small grid.
// The player moves along the bottom row while one obstacle falls a row per
// tick. Dodging it scores points and respawns it above the player; being hit
// ends the round.
package dodge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Play button captions.
const (
	LabelStart       = "Start"
	LabelPauseResume = "Pause/Resume"
)

// Direction is a lateral player move.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

func (d Direction) delta() int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// Event reports what an operation did, for logging by the platform.
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventFell
	EventScored
	EventGameOver
	EventResumed
	EventPaused
	EventSpeedChanged
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventFell:
		return "fell"
	case EventScored:
		return "scored"
	case EventGameOver:
		return "game over"
	case EventResumed:
		return "resumed"
	case EventPaused:
		return "paused"
	case EventSpeedChanged:
		return "speed changed"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of the game.
type State struct {
	Player    Position
	Obstacle  Position
	Score     int
	LastScore int // Final score of the most recent round that ended in a collision
	Running   bool
	Speed     Speed
}

// Game owns all mutable game state. It is not safe for concurrent use; the
// platform must serialize ticks and input.
type Game struct {
	grid      Grid
	startCol  int
	increment int
	speeds    Speeds
	selected  Speed

	player    Position
	obstacle  Position
	score     int
	lastScore int
	running   bool

	view  Presenter
	sched Scheduler
}

// New creates a game from a validated configuration.
func New(cfg config.DodgeConfig, view Presenter, sched Scheduler) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dodge: %w", err)
	}

	speeds := make(Speeds, len(cfg.Speeds))
	for i, p := range cfg.Speeds {
		speeds[i] = Speed{Name: p.Name, Interval: p.Interval()}
	}
	selected, _ := speeds.Lookup(cfg.DefaultSpeed)

	g := &Game{
		grid:      GridFromConfig(cfg.Grid),
		startCol:  cfg.Player.StartCol,
		increment: cfg.Scoring.Increment,
		speeds:    speeds,
		selected:  selected,
		view:      view,
		sched:     sched,
	}
	g.Reset()
	return g, nil
}

// Start draws the board and the side panel for a fresh, idle game.
func (g *Game) Start() {
	g.view.DrawGrid(g.grid)
	g.Reset()
	g.showScore()
	g.view.SetSpeedOptions(g.speeds)
	g.view.HighlightSpeed(g.selected.Name)
	g.view.SetPlayLabel(LabelStart)
}

// Reset puts the player at the start column of the bottom row, the obstacle
// just above the board in the same column, and the score at zero.
func (g *Game) Reset() {
	g.player = Position{Row: g.grid.Rows, Col: g.startCol}
	g.obstacle = Position{Row: 0, Col: g.player.Col}
	g.score = 0
}

// HandleAction applies one semantic input.
func (g *Game) HandleAction(a core.Action) Event {
	switch a {
	case core.ActionLeft:
		if g.running {
			return g.MovePlayer(DirLeft)
		}
	case core.ActionRight:
		if g.running {
			return g.MovePlayer(DirRight)
		}
	case core.ActionToggle:
		return g.Toggle()
	default:
		if i, ok := a.SpeedIndex(); ok && i < len(g.speeds) {
			//nolint:errcheck // Name comes from the preset list
			g.SelectSpeed(g.speeds[i].Name)
			return EventSpeedChanged
		}
	}
	return EventNone
}

// MovePlayer shifts the player one column. Moves off the board keep the
// current position.
func (g *Game) MovePlayer(dir Direction) Event {
	vacated := g.player
	g.view.ClearCell(g.player)
	if next, ok := g.grid.NewPosition(g.player.Row, g.player.Col+dir.delta()); ok {
		g.player = next
	}
	g.view.DrawCell(g.player)

	if g.player == vacated {
		return EventNone
	}
	if g.obstacle == vacated {
		g.view.DrawCell(g.obstacle)
	}
	return EventMoved
}

// Collides reports whether the obstacle occupies the player's cell.
func (g *Game) Collides() bool {
	return g.obstacle == g.player
}

// FallObstacle advances the obstacle one row. On the bottom row it either
// ends the round or scores and respawns above the player.
func (g *Game) FallObstacle() Event {
	row, col := g.obstacle.Row, g.obstacle.Col
	if g.grid.Contains(g.obstacle) {
		g.view.ClearCell(g.obstacle)
	}

	event := EventFell
	if row == g.grid.Rows {
		if g.Collides() {
			g.gameOver()
			g.showScore()
			return EventGameOver
		}
		g.score += g.increment
		g.showScore()
		event = EventScored
	}

	// Past the bottom row NewPosition fails and the obstacle respawns.
	next, ok := g.grid.NewPosition(row+1, col)
	if !ok {
		next = Position{Row: 1, Col: g.player.Col}
	}
	g.obstacle = next
	g.view.DrawCell(g.obstacle)
	return event
}

// Tick performs one scheduled step. Ticks delivered while paused are ignored.
func (g *Game) Tick() Event {
	if !g.running {
		return EventNone
	}
	return g.FallObstacle()
}

// Toggle pauses a running game or starts/resumes an idle one. Pausing keeps
// positions and score.
func (g *Game) Toggle() Event {
	g.running = !g.running
	if !g.running {
		g.sched.Stop()
		return EventPaused
	}

	g.sched.Start(g.selected.Interval)
	g.view.SetPlayLabel(LabelPauseResume)
	g.view.DrawCell(g.player)
	g.view.ShowResult(g.score, false)
	return EventResumed
}

// SelectSpeed picks the tick interval used the next time the loop starts.
func (g *Game) SelectSpeed(name string) error {
	sp, ok := g.speeds.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q (available: %s)", ErrUnknownSpeed, name, strings.Join(g.speeds.Names(), ", "))
	}
	g.selected = sp
	g.view.HighlightSpeed(sp.Name)
	return nil
}

// gameOver stops the loop, reports the final score and resets to idle.
func (g *Game) gameOver() {
	g.sched.Stop()
	g.lastScore = g.score
	g.view.ShowResult(g.score, true)
	g.view.ClearCell(g.player)
	g.Reset()
	g.running = false
	g.view.SetPlayLabel(LabelStart)
}

func (g *Game) showScore() {
	g.view.SetScoreText(strconv.Itoa(g.score))
}

// State returns a snapshot of the current game state.
func (g *Game) State() State {
	return State{
		Player:    g.player,
		Obstacle:  g.obstacle,
		Score:     g.score,
		LastScore: g.lastScore,
		Running:   g.running,
		Speed:     g.selected,
	}
}

// Grid returns the board geometry.
func (g *Game) Grid() Grid {
	return g.grid
}

// Speeds returns the available presets in order.
func (g *Game) Speeds() Speeds {
	return g.speeds
}
