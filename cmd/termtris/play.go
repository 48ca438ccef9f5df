package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the current terminal. This is also what running
termtris without a command does.

The final score is printed once the terminal is restored.

Difficulty options:
  easy   - 1.5 cells per second
  normal - 2.5 cells per second (default)
  hard   - 5 cells per second

Examples:
  termtris play
  termtris play --difficulty easy
  termtris play --config ./my-tetris.yaml --log /tmp/termtris.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := resolveConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size for the frame check
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	state, err := tui.Run(cmd.Context(), cfg, rt, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d (%d lines)\n", state.Score, state.Lines)
	return nil
}

// resolveConfig loads the config file and applies command-line overrides.
func resolveConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	// Tick rate first: difficulty presets are rescaled against it.
	if flagFPS > 0 {
		config.SetTickRate(&cfg, flagFPS)
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.Config{}, err
	}
	if flagNoColor {
		cfg.Display.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	logger.Info("config resolved",
		"source", source,
		"tick_rate", cfg.Timing.TickRate,
		"fall_speed", cfg.Timing.FallSpeed,
		"difficulty", flagDifficulty,
	)
	return cfg, nil
}

// newLogger returns a file logger for path, or a discarding logger when path
// is empty. The terminal belongs to the game, so logs never go to stderr.
func newLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "termtris",
		Level:           lvl,
	})
	return logger, func() { f.Close() }, nil
}
