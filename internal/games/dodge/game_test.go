package dodge

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func newTestGame(t *testing.T) (*Game, *recorder, *manualScheduler) {
	t.Helper()
	view := newRecorder()
	sched := &manualScheduler{}
	g, err := New(config.DefaultDodgeConfig(), view, sched)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Start()
	return g, view, sched
}

func tickN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Player.StartCol = 9

	var verr config.ValidationError
	if _, err := New(cfg, newRecorder(), &manualScheduler{}); !errors.As(err, &verr) {
		t.Errorf("New() = %v, expected a ValidationError", err)
	}
}

func TestStartState(t *testing.T) {
	g, view, sched := newTestGame(t)
	s := g.State()

	if s.Player != (Position{Row: 6, Col: 3}) {
		t.Errorf("Player = %+v, expected {6 3}", s.Player)
	}
	if s.Obstacle != (Position{Row: 0, Col: 3}) {
		t.Errorf("Obstacle = %+v, expected {0 3}", s.Obstacle)
	}
	if s.Score != 0 || s.Running {
		t.Errorf("Score = %d, Running = %v, expected 0, false", s.Score, s.Running)
	}
	if s.Speed.Name != "ultraFast" || s.Speed.Interval != 100*time.Millisecond {
		t.Errorf("Speed = %+v, expected ultraFast 100ms", s.Speed)
	}

	if view.grids != 1 {
		t.Errorf("grid drawn %d times, expected once", view.grids)
	}
	if view.score != "0" || view.label != LabelStart || view.highlight != "ultraFast" {
		t.Errorf("panel = score %q label %q highlight %q", view.score, view.label, view.highlight)
	}
	if len(view.speeds) != 4 {
		t.Errorf("got %d speed options, expected 4", len(view.speeds))
	}
	if sched.active {
		t.Error("scheduler should be idle after Start")
	}
}

func TestResetIdempotent(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Toggle()
	g.MovePlayer(DirLeft)
	g.Tick()
	g.Tick()

	g.Reset()
	first := g.State()
	g.Reset()
	second := g.State()

	if first != second {
		t.Errorf("second Reset() = %+v, expected %+v", second, first)
	}
	if first.Player != (Position{Row: 6, Col: 3}) || first.Obstacle != (Position{Row: 0, Col: 3}) || first.Score != 0 {
		t.Errorf("Reset() = %+v, expected canonical start state", first)
	}
}

func TestPlayerStaysOnBoard(t *testing.T) {
	g, view, _ := newTestGame(t)
	g.Toggle()

	for i := 0; i < 5; i++ {
		g.MovePlayer(DirLeft)
	}
	if col := g.State().Player.Col; col != 1 {
		t.Errorf("after moving left past the edge col = %d, expected 1", col)
	}
	if ev := g.MovePlayer(DirLeft); ev != EventNone {
		t.Errorf("blocked move = %v, expected none", ev)
	}

	for i := 0; i < 5; i++ {
		g.MovePlayer(DirRight)
	}
	if col := g.State().Player.Col; col != 4 {
		t.Errorf("after moving right past the edge col = %d, expected 4", col)
	}
	if !view.filled[Position{Row: 6, Col: 4}] || view.filled[Position{Row: 6, Col: 1}] {
		t.Error("only the player's current cell should be drawn on the bottom row")
	}
}

func TestMoveClearsBeforeDrawing(t *testing.T) {
	g, view, _ := newTestGame(t)
	g.Toggle()
	view.resetCalls()

	g.MovePlayer(DirRight)

	expected := []string{"clear 6,3", "draw 6,4"}
	if len(view.calls) != len(expected) {
		t.Fatalf("calls = %v, expected %v", view.calls, expected)
	}
	for i := range expected {
		if view.calls[i] != expected[i] {
			t.Errorf("calls[%d] = %q, expected %q", i, view.calls[i], expected[i])
		}
	}
}

func TestMoveRedrawsSharedObstacle(t *testing.T) {
	g, view, _ := newTestGame(t)
	g.Toggle()
	g.obstacle = Position{Row: 6, Col: 3}
	view.DrawCell(g.obstacle)

	g.MovePlayer(DirLeft)

	if !view.filled[Position{Row: 6, Col: 3}] {
		t.Error("obstacle cell vacated by the player should be redrawn")
	}
}

func TestInputIgnoredWhileIdle(t *testing.T) {
	g, _, _ := newTestGame(t)

	if ev := g.HandleAction(core.ActionRight); ev != EventNone {
		t.Errorf("Right while idle = %v, expected none", ev)
	}
	if col := g.State().Player.Col; col != 3 {
		t.Errorf("player moved to col %d while idle", col)
	}
	if ev := g.HandleAction(core.ActionNone); ev != EventNone {
		t.Errorf("None = %v, expected none", ev)
	}
}

func TestToggleStartsAndPauses(t *testing.T) {
	g, view, sched := newTestGame(t)

	if ev := g.HandleAction(core.ActionToggle); ev != EventResumed {
		t.Fatalf("first toggle = %v, expected resumed", ev)
	}
	if !sched.active || sched.interval != 100*time.Millisecond {
		t.Errorf("scheduler active=%v interval=%v, expected running at 100ms", sched.active, sched.interval)
	}
	if view.label != LabelPauseResume {
		t.Errorf("label = %q, expected %q", view.label, LabelPauseResume)
	}
	if !view.filled[Position{Row: 6, Col: 3}] {
		t.Error("resuming should draw the player")
	}

	g.Tick()
	g.Tick()
	g.MovePlayer(DirLeft)
	before := g.State()

	if ev := g.HandleAction(core.ActionToggle); ev != EventPaused {
		t.Fatalf("second toggle = %v, expected paused", ev)
	}
	if sched.active {
		t.Error("pausing should stop the scheduler")
	}

	// Stale ticks after pause change nothing
	if ev := g.Tick(); ev != EventNone {
		t.Errorf("Tick while paused = %v, expected none", ev)
	}
	after := g.State()
	if after.Player != before.Player || after.Obstacle != before.Obstacle || after.Score != before.Score {
		t.Errorf("pause changed state: before %+v, after %+v", before, after)
	}

	g.Toggle()
	if g.State().Obstacle != before.Obstacle {
		t.Error("resuming should keep the obstacle where it was")
	}
}

func TestObstacleFallsOneRowPerTick(t *testing.T) {
	g, view, _ := newTestGame(t)
	g.Toggle()

	for want := 1; want <= 6; want++ {
		if ev := g.Tick(); ev != EventFell {
			t.Fatalf("tick %d = %v, expected fell", want, ev)
		}
		ob := g.State().Obstacle
		if ob.Row != want || ob.Col != 3 {
			t.Fatalf("after tick %d obstacle = %+v, expected {%d 3}", want, ob, want)
		}
		if !view.filled[ob] {
			t.Errorf("obstacle cell %+v not drawn", ob)
		}
		if want > 1 && view.filled[Position{Row: want - 1, Col: 3}] {
			t.Errorf("previous obstacle cell row %d not cleared", want-1)
		}
	}
}

func TestDodgeScoresAndRespawns(t *testing.T) {
	g, view, sched := newTestGame(t)
	g.Toggle()
	g.MovePlayer(DirRight)

	for i := 0; i < 6; i++ {
		g.Tick()
	}
	s := g.State()
	if s.Obstacle != (Position{Row: 6, Col: 3}) || s.Score != 0 {
		t.Fatalf("after 6 ticks obstacle = %+v score = %d, expected {6 3} and 0", s.Obstacle, s.Score)
	}

	if ev := g.Tick(); ev != EventScored {
		t.Fatalf("bottom-row tick = %v, expected scored", ev)
	}
	s = g.State()
	if s.Score != 10 {
		t.Errorf("Score = %d, expected 10", s.Score)
	}
	if s.Obstacle != (Position{Row: 1, Col: 4}) {
		t.Errorf("Obstacle = %+v, expected respawn at {1 4}", s.Obstacle)
	}
	if view.score != "10" {
		t.Errorf("score text = %q, expected 10", view.score)
	}
	if !sched.active || !s.Running {
		t.Error("scoring should keep the game running")
	}
}

func TestCollisionEndsRound(t *testing.T) {
	g, view, sched := newTestGame(t)
	g.Toggle()

	// Bank three dodges by stepping out from under each respawn
	g.MovePlayer(DirRight)
	tickN(g, 7)
	g.MovePlayer(DirLeft)
	tickN(g, 6)
	g.MovePlayer(DirRight)
	tickN(g, 6)
	if g.State().Score != 30 {
		t.Fatalf("Score = %d, expected 30 before the crash", g.State().Score)
	}

	tickN(g, 5)
	if !g.Collides() {
		t.Fatalf("obstacle %+v should share the player's cell %+v", g.State().Obstacle, g.State().Player)
	}

	if ev := g.Tick(); ev != EventGameOver {
		t.Fatalf("colliding tick = %v, expected game over", ev)
	}

	s := g.State()
	if s.LastScore != 30 {
		t.Errorf("LastScore = %d, expected 30", s.LastScore)
	}
	if !view.showing || view.result != 30 {
		t.Errorf("result panel showing=%v score=%d, expected true, 30", view.showing, view.result)
	}
	if s.Running || sched.active {
		t.Error("game over should stop the loop")
	}
	if s.Score != 0 || s.Player != (Position{Row: 6, Col: 3}) || s.Obstacle != (Position{Row: 0, Col: 3}) {
		t.Errorf("state after game over = %+v, expected reset", s)
	}
	if view.score != "0" || view.label != LabelStart {
		t.Errorf("panel after game over: score %q label %q", view.score, view.label)
	}
	if len(view.filled) != 0 {
		t.Errorf("cells still drawn after game over: %v", view.filled)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, view, sched := newTestGame(t)
	g.Toggle()
	for i := 0; i < 7; i++ {
		g.Tick()
	}
	if g.State().Running {
		t.Fatal("straight fall onto the player should end the round")
	}

	g.HandleAction(core.ActionToggle)

	if !g.State().Running || !sched.active {
		t.Error("toggle after game over should start a new round")
	}
	if view.showing {
		t.Error("starting should hide the result panel")
	}
	if sched.starts != 2 {
		t.Errorf("scheduler started %d times, expected 2", sched.starts)
	}
}

func TestSelectSpeed(t *testing.T) {
	g, view, sched := newTestGame(t)

	if err := g.SelectSpeed("slow"); err != nil {
		t.Fatalf("SelectSpeed(slow) failed: %v", err)
	}
	if view.highlight != "slow" {
		t.Errorf("highlight = %q, expected slow", view.highlight)
	}

	err := g.SelectSpeed("warp")
	if !errors.Is(err, ErrUnknownSpeed) {
		t.Errorf("SelectSpeed(warp) = %v, expected ErrUnknownSpeed", err)
	}
	if err != nil && !strings.Contains(err.Error(), "normal, slow, fast, ultraFast") {
		t.Errorf("error %q should list the available presets", err)
	}
	if g.State().Speed.Name != "slow" {
		t.Errorf("failed select changed speed to %q", g.State().Speed.Name)
	}

	g.Toggle()
	if sched.interval != 800*time.Millisecond {
		t.Errorf("interval = %v, expected 800ms", sched.interval)
	}

	// Mid-run changes wait for the next start
	g.HandleAction(core.ActionSpeed3)
	if sched.interval != 800*time.Millisecond || sched.starts != 1 {
		t.Errorf("speed change restarted the loop: interval %v, starts %d", sched.interval, sched.starts)
	}
	g.Toggle()
	g.Toggle()
	if sched.interval != 250*time.Millisecond {
		t.Errorf("interval after restart = %v, expected 250ms", sched.interval)
	}
}

func TestSpeedActionsFollowPresetOrder(t *testing.T) {
	g, _, _ := newTestGame(t)
	names := []string{"normal", "slow", "fast", "ultraFast"}

	for i, name := range names {
		if ev := g.HandleAction(core.SpeedAction(i)); ev != EventSpeedChanged {
			t.Errorf("speed action %d = %v, expected speed changed", i, ev)
		}
		if g.State().Speed.Name != name {
			t.Errorf("speed action %d selected %q, expected %q", i, g.State().Speed.Name, name)
		}
	}
}

func TestSpeedActionBeyondPresets(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Speeds = cfg.Speeds[:2]
	cfg.DefaultSpeed = "normal"
	g, err := New(cfg, newRecorder(), &manualScheduler{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if ev := g.HandleAction(core.ActionSpeed4); ev != EventNone {
		t.Errorf("missing preset = %v, expected none", ev)
	}
	if g.State().Speed.Name != "normal" {
		t.Errorf("speed = %q, expected normal", g.State().Speed.Name)
	}
}
