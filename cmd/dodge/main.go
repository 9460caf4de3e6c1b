// dodge is a falling-obstacle grid game for the terminal.
//
// Usage:
//
//	dodge play               - Play a local game
//	dodge serve              - Start SSH server for remote play
//	dodge speeds             - List speed presets
//	dodge config             - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Path to a custom dodge.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Global flags
var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - steer clear of falling blocks in your terminal",
	Long: `Dodge is a small grid game: a block falls down one of four columns and
you move your block along the bottom row to get out of its way. Every
block you dodge scores 10 points. Getting hit ends the round.

Available commands:
  play     - Play a local game
  serve    - Start SSH server for remote play
  speeds   - List speed presets
  config   - Print the effective configuration

Examples:
  dodge play
  dodge play --speed slow
  dodge serve --ssh :2222
  dodge config > my-dodge.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(speedsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration selected by --config and exits on error.
func loadConfig() config.DodgeConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
