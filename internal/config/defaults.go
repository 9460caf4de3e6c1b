package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration: a 4x6 board of
// 50px cells and the four stock speed presets, starting at ultraFast.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Grid: GridConfig{
			Cols:  4,
			Rows:  6,
			Cell:  50,
			Inset: 5,
		},
		Player: PlayerConfig{
			StartCol: 3,
		},
		Scoring: ScoringConfig{
			Increment: 10,
		},
		Speeds: []SpeedPreset{
			{Name: "normal", IntervalMS: 500},
			{Name: "slow", IntervalMS: 800},
			{Name: "fast", IntervalMS: 250},
			{Name: "ultraFast", IntervalMS: 100},
		},
		DefaultSpeed: "ultraFast",
		Terminal: TerminalConfig{
			PxPerCol: 5,
			PxPerRow: 12.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
