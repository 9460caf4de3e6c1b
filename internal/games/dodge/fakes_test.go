package dodge

import (
	"fmt"
	"time"
)

// recorder is a Presenter that keeps the drawn cells and the panel state.
type recorder struct {
	grids     int
	filled    map[Position]bool
	calls     []string
	score     string
	result    int
	showing   bool
	speeds    Speeds
	highlight string
	label     string
}

func newRecorder() *recorder {
	return &recorder{filled: make(map[Position]bool)}
}

func (r *recorder) DrawGrid(g Grid) {
	r.grids++
	r.calls = append(r.calls, fmt.Sprintf("grid %dx%d", g.Cols, g.Rows))
}

func (r *recorder) DrawCell(p Position) {
	r.filled[p] = true
	r.calls = append(r.calls, fmt.Sprintf("draw %d,%d", p.Row, p.Col))
}

func (r *recorder) ClearCell(p Position) {
	delete(r.filled, p)
	r.calls = append(r.calls, fmt.Sprintf("clear %d,%d", p.Row, p.Col))
}

func (r *recorder) SetScoreText(text string) { r.score = text }

func (r *recorder) ShowResult(score int, visible bool) {
	r.result = score
	r.showing = visible
}

func (r *recorder) SetSpeedOptions(speeds Speeds) { r.speeds = speeds }

func (r *recorder) HighlightSpeed(name string) { r.highlight = name }

func (r *recorder) SetPlayLabel(label string) { r.label = label }

func (r *recorder) resetCalls() { r.calls = nil }

// manualScheduler records Start/Stop requests; tests call Game.Tick themselves.
type manualScheduler struct {
	active   bool
	interval time.Duration
	starts   int
	stops    int
}

func (s *manualScheduler) Start(interval time.Duration) {
	s.active = true
	s.interval = interval
	s.starts++
}

func (s *manualScheduler) Stop() {
	s.active = false
	s.stops++
}
