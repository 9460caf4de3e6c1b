package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *dodge.Game
	board    *Board
	ticker   *ticker
	keys     KeyMap
	help     help.Model
	frame    *core.Screen
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for a fresh, idle game. A nil logger discards
// all log output.
func NewModel(cfg config.DodgeConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := &ticker{}
	board := NewBoard(dodge.GridFromConfig(cfg.Grid), cfg.Terminal)
	game, err := dodge.New(cfg, board, t)
	if err != nil {
		return Model{}, err
	}
	game.Start()

	w, h := board.Size()
	hm := help.New()
	hm.Width = rt.ScreenW

	return Model{
		game:   game,
		board:  board,
		ticker: t,
		keys:   DefaultKeyMap(),
		help:   hm,
		frame:  core.NewScreen(w, h),
		config: rt,
		logger: logger,
	}, nil
}

// Init starts idle; the tick loop begins on the first toggle.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.handleAction(m.board.HitTest(msg.X, msg.Y))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleAction applies one input action.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	m.logEvent(m.game.HandleAction(a))
	return m, m.ticker.pending()
}

// handleTick runs one game step if the tick belongs to the live schedule.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.accept(msg) {
		return m, nil
	}
	m.logEvent(m.game.Tick())
	return m, m.ticker.next(msg)
}

// logEvent records round-level events. Plain falls and moves are not logged.
func (m Model) logEvent(ev dodge.Event) {
	st := m.game.State()
	switch ev {
	case dodge.EventResumed:
		m.logger.Info("round running", "event", ev, "speed", st.Speed.Name, "score", st.Score)
	case dodge.EventPaused:
		m.logger.Info("round paused", "event", ev, "score", st.Score)
	case dodge.EventScored:
		m.logger.Debug("obstacle dodged", "event", ev, "score", st.Score)
	case dodge.EventGameOver:
		m.logger.Info("game over", "event", ev, "score", st.LastScore)
	case dodge.EventSpeedChanged:
		m.logger.Debug("speed selected", "event", ev, "speed", st.Speed.Name, "interval", st.Speed.Interval)
	}
}

// saveScreenshot writes the current frame as plain text to ~/.dodge/screenshots.
func (m Model) saveScreenshot() {
	m.frame.Clear()
	m.board.Render(m.frame)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("dodge_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.frame.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board, the side panel and, when there is room, a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.board.Size()
	if m.config.ScreenW < w || m.config.ScreenH < h {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h, m.config.ScreenW, m.config.ScreenH)
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, msg)
	}

	m.frame.Clear()
	m.board.Render(m.frame)
	view := RenderScreen(m.frame)
	if m.config.ScreenH > h {
		view += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return view
}

// State exposes the game state, for tests and the SSH session log.
func (m Model) State() dodge.State {
	return m.game.State()
}

// Run starts a Bubble Tea program for one local game.
func Run(cfg config.DodgeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the play and speed buttons
	)

	_, err = p.Run()
	return err
}
