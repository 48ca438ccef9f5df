// termtris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	termtris                 - Play a game
//	termtris play            - Play a game
//	termtris shapes          - Print every piece in every rotation
//	termtris config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: from config, 10)
//	--seed <value>        - Set RNG seed for reproducible piece order
//	--config <path>       - Use a custom config file
//	--difficulty <preset> - Fall speed preset: easy, normal, hard
//	--no-color            - Render without colors
//	--log <path>          - Write structured logs to a file
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagNoColor    bool
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "Falling-block puzzle game for the terminal",
	Long: `termtris drops pieces into a 10x20 well. Fill a row to clear it and
score 10 points; the game ends when a new piece has no room to spawn.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Up/R       - Rotate
  Down       - Hard drop
  Q/Ctrl+C   - Quit

Examples:
  termtris
  termtris --difficulty hard
  termtris --seed 42 --no-color
  termtris shapes
  termtris config > ~/.termtris/tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored rendering")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}
