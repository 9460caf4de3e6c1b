// Package config provides YAML-based configuration loading and validation
// for the Dodge game.
package config

import (
	"fmt"
	"time"
)

// DodgeConfig contains all configuration for the game.
type DodgeConfig struct {
	Grid         GridConfig     `yaml:"grid"`
	Player       PlayerConfig   `yaml:"player"`
	Scoring      ScoringConfig  `yaml:"scoring"`
	Speeds       []SpeedPreset  `yaml:"speeds"`
	DefaultSpeed string         `yaml:"default_speed"`
	Terminal     TerminalConfig `yaml:"terminal"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`
	Cell  int `yaml:"cell"`  // Cell size in pixels
	Inset int `yaml:"inset"` // Pixels left blank on every side of a filled cell
}

// PlayerConfig defines where the player starts.
type PlayerConfig struct {
	StartCol int `yaml:"start_col"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	Increment int `yaml:"increment"` // Points per dodged obstacle
}

// SpeedPreset is a named tick interval.
type SpeedPreset struct {
	Name       string `yaml:"name"`
	IntervalMS int    `yaml:"interval_ms"`
}

// Interval returns the preset's tick interval.
func (p SpeedPreset) Interval() time.Duration {
	return time.Duration(p.IntervalMS) * time.Millisecond
}

// TerminalConfig maps canvas pixels onto terminal characters.
type TerminalConfig struct {
	PxPerCol float64 `yaml:"px_per_col"`
	PxPerRow float64 `yaml:"px_per_row"`
}

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable board.
// It returns the first problem found as a ValidationError.
func (c DodgeConfig) Validate() error {
	g := c.Grid
	switch {
	case g.Cols < 1:
		return ValidationError{Field: "grid.cols", Message: fmt.Sprintf("must be at least 1, got %d", g.Cols)}
	case g.Rows < 1:
		return ValidationError{Field: "grid.rows", Message: fmt.Sprintf("must be at least 1, got %d", g.Rows)}
	case g.Inset < 0:
		return ValidationError{Field: "grid.inset", Message: fmt.Sprintf("must not be negative, got %d", g.Inset)}
	case g.Cell <= 2*g.Inset:
		return ValidationError{Field: "grid.cell", Message: fmt.Sprintf("must exceed twice the inset (%d), got %d", 2*g.Inset, g.Cell)}
	}

	if c.Player.StartCol < 1 || c.Player.StartCol > g.Cols {
		return ValidationError{
			Field:   "player.start_col",
			Message: fmt.Sprintf("must be within [1, %d], got %d", g.Cols, c.Player.StartCol),
		}
	}

	if c.Scoring.Increment <= 0 {
		return ValidationError{Field: "scoring.increment", Message: fmt.Sprintf("must be positive, got %d", c.Scoring.Increment)}
	}

	if len(c.Speeds) == 0 {
		return ValidationError{Field: "speeds", Message: "at least one preset is required"}
	}
	seen := make(map[string]bool, len(c.Speeds))
	for i, s := range c.Speeds {
		field := fmt.Sprintf("speeds[%d]", i)
		if s.Name == "" {
			return ValidationError{Field: field + ".name", Message: "must not be empty"}
		}
		if seen[s.Name] {
			return ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate preset %q", s.Name)}
		}
		seen[s.Name] = true
		if s.IntervalMS <= 0 {
			return ValidationError{Field: field + ".interval_ms", Message: fmt.Sprintf("must be positive, got %d", s.IntervalMS)}
		}
	}
	if !seen[c.DefaultSpeed] {
		return ValidationError{Field: "default_speed", Message: fmt.Sprintf("unknown preset %q", c.DefaultSpeed)}
	}

	if c.Terminal.PxPerCol <= 0 || c.Terminal.PxPerRow <= 0 {
		return ValidationError{Field: "terminal", Message: "px_per_col and px_per_row must be positive"}
	}

	return nil
}

// Speed returns the preset with the given name.
func (c DodgeConfig) Speed(name string) (SpeedPreset, bool) {
	for _, s := range c.Speeds {
		if s.Name == name {
			return s, true
		}
	}
	return SpeedPreset{}, false
}
