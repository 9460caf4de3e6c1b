package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var speedsCmd = &cobra.Command{
	Use:   "speeds",
	Short: "List speed presets",
	Long:  `Shows the speed presets of the effective configuration. The default is marked with *.`,
	Args:  cobra.NoArgs,
	Run:   runSpeeds,
}

func runSpeeds(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Speed presets:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, sp := range cfg.Speeds {
		if len(sp.Name) > maxNameLen {
			maxNameLen = len(sp.Name)
		}
	}

	fmt.Printf("    %-3s  %-*s  %s\n", "Key", maxNameLen, "Name", "Interval")
	fmt.Printf("    %-3s  %-*s  %s\n", "---", maxNameLen, "----", "--------")

	for i, sp := range cfg.Speeds {
		mark := " "
		if sp.Name == cfg.DefaultSpeed {
			mark = "*"
		}
		fmt.Printf("  %s %-3d  %-*s  %v\n", mark, i+1, maxNameLen, sp.Name, sp.Interval())
	}

	fmt.Println()
	fmt.Println("Run 'dodge play --speed <name>' to start with a preset.")
}
