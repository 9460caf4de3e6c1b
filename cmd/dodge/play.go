package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var (
	flagSpeed   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a local game.

Controls:
  Left/H/A    - Move left
  Right/L/D   - Move right
  Space       - Start, pause, resume
  1-4         - Select speed (applies on next start)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

The play and speed buttons can also be clicked.

Examples:
  dodge play
  dodge play --speed normal
  dodge play --log-file dodge.log
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Initial speed preset (default from config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSpeed != "" {
		if err := config.ApplySpeed(&cfg, flagSpeed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'dodge speeds' to see available presets.")
			os.Exit(1)
		}
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := playGame(cfg, rt, flagLogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one local game, logging to logPath when it is set.
// The log file is closed before playGame returns.
func playGame(cfg config.DodgeConfig, rt core.RuntimeConfig, logPath string) error {
	logger, closeLog, err := openLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(cfg, rt, logger)
}

// openLogger returns a debug-level logger appending to path. An empty path
// yields a nil logger, which the game treats as discard.
func openLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return nil, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
		Level:           log.DebugLevel,
	})
	return logger, f.Close, nil
}
