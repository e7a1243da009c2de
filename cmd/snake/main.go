// snake is a single-player wrap-around Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play with the default backend
//	snake play               - Play (same as above)
//	snake serve              - Start SSH server for remote play
//	snake backends           - List available backends
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Use a specific config YAML
//	--backend <name>    - Backend to play with (default: tui)
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file while playing
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/console"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagBackend  string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic wrap-around snake game",
	Long: `Snake is a single-player snake game. The snake moves one cell per
tick, wraps around the board edges and grows by eating food. Running into
its own body sends it back to the center as a single cell.

Available commands:
  play      - Play the game (default)
  serve     - Start SSH server for remote play
  backends  - List the available backends
  config    - Print the effective configuration

Examples:
  snake
  snake --backend tcell
  snake play --fps 10 --seed 42
  snake serve --ssh :2222
  snake config > ~/.snake/configs/snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "tui", "Backend to play with (see 'snake backends')")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
