// Package tui provides the Bubble Tea integration: the board presenter, the
// tick scheduler, key and mouse input, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one scheduled game tick. Gen identifies the schedule that
// produced it so ticks from a stopped schedule can be dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends one TickMsg after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// ticker implements dodge.Scheduler on top of tea.Tick. Bubble Tea delivers
// messages one at a time, so a tick never overlaps an input handler.
type ticker struct {
	gen      int
	active   bool
	interval time.Duration
	armed    bool // Start was called and its first tick is not yet scheduled
}

// Start begins a new schedule, invalidating ticks of any previous one.
func (t *ticker) Start(interval time.Duration) {
	t.gen++
	t.active = true
	t.interval = interval
	t.armed = true
}

// Stop ends the schedule. Ticks already in flight are dropped on arrival.
func (t *ticker) Stop() {
	t.gen++
	t.active = false
	t.armed = false
}

// pending returns the command for a schedule started since the last call.
func (t *ticker) pending() tea.Cmd {
	if !t.armed {
		return nil
	}
	t.armed = false
	return tickCmd(t.interval, t.gen)
}

// accept reports whether msg belongs to the running schedule.
func (t *ticker) accept(msg TickMsg) bool {
	return t.active && msg.Gen == t.gen
}

// next schedules the tick after msg if its schedule survived the tick.
func (t *ticker) next(msg TickMsg) tea.Cmd {
	if !t.accept(msg) {
		return nil
	}
	return tickCmd(t.interval, t.gen)
}
