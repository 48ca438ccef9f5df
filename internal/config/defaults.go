package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/tetris.yaml.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			TickRate:  10,
			FallSpeed: 0.25,
		},
		Spawn: SpawnConfig{
			Mode: SpawnCorner,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 10,
		},
		Input: InputConfig{
			HoldMs:  100,
			RearmMs: 600,
		},
		Display: DisplayConfig{
			Color: true,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
