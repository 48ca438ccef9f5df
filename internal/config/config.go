// Package config provides YAML-based game configuration loading and
// difficulty presets for termtris.
package config

import "fmt"

// Config contains all configuration for a termtris session.
type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Timing  TimingConfig  `yaml:"timing"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
}

// FieldConfig defines the playfield dimensions in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the fixed tick rate and gravity.
type TimingConfig struct {
	TickRate  int     `yaml:"tick_rate"`  // Ticks per second
	FallSpeed float64 `yaml:"fall_speed"` // Cells per tick, may be fractional
}

// SpawnMode selects where new pieces appear.
type SpawnMode string

const (
	SpawnCorner SpawnMode = "corner" // (0,0), the historical behavior
	SpawnCenter SpawnMode = "center" // horizontally centered on row 0
)

// SpawnConfig defines the spawn point.
type SpawnConfig struct {
	Mode SpawnMode `yaml:"mode"`
}

// ScoringConfig defines how cleared rows turn into points.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// InputConfig tunes the key-state table.
type InputConfig struct {
	// HoldMs is how long an auto-repeating key stays down after its last
	// key event. Terminals report presses and auto-repeats but no releases.
	HoldMs int `yaml:"hold_ms"`
	// RearmMs is how long a key must be silent before its next event is a
	// new press. It must outlast the terminal's initial auto-repeat delay.
	RearmMs int `yaml:"rearm_ms"`
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	Color bool `yaml:"color"`
}

// ValidationError describes a configuration value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Limits for user-supplied values.
const (
	MinFieldWidth  = 4 // widest mask is 4 cells
	MinFieldHeight = 4
	MaxFieldWidth  = 40
	MaxFieldHeight = 60
	MaxTickRate    = 240
)

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Field.Width < MinFieldWidth || c.Field.Width > MaxFieldWidth {
		return ValidationError{
			Field:   "field.width",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinFieldWidth, MaxFieldWidth, c.Field.Width),
		}
	}
	if c.Field.Height < MinFieldHeight || c.Field.Height > MaxFieldHeight {
		return ValidationError{
			Field:   "field.height",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinFieldHeight, MaxFieldHeight, c.Field.Height),
		}
	}
	if c.Timing.TickRate <= 0 || c.Timing.TickRate > MaxTickRate {
		return ValidationError{
			Field:   "timing.tick_rate",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxTickRate, c.Timing.TickRate),
		}
	}
	if c.Timing.FallSpeed <= 0 || c.Timing.FallSpeed > 1 {
		return ValidationError{
			Field:   "timing.fall_speed",
			Message: fmt.Sprintf("must be in (0, 1], got %g", c.Timing.FallSpeed),
		}
	}
	switch c.Spawn.Mode {
	case SpawnCorner, SpawnCenter:
	default:
		return ValidationError{
			Field:   "spawn.mode",
			Message: fmt.Sprintf("must be %q or %q, got %q", SpawnCorner, SpawnCenter, c.Spawn.Mode),
		}
	}
	if c.Scoring.PointsPerLine < 0 {
		return ValidationError{
			Field:   "scoring.points_per_line",
			Message: fmt.Sprintf("must not be negative, got %d", c.Scoring.PointsPerLine),
		}
	}
	if c.Input.HoldMs <= 0 {
		return ValidationError{
			Field:   "input.hold_ms",
			Message: fmt.Sprintf("must be positive, got %d", c.Input.HoldMs),
		}
	}
	if c.Input.RearmMs < c.Input.HoldMs {
		return ValidationError{
			Field:   "input.rearm_ms",
			Message: fmt.Sprintf("must be at least hold_ms (%d), got %d", c.Input.HoldMs, c.Input.RearmMs),
		}
	}
	return nil
}
