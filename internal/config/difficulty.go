package config

import "fmt"

// DifficultyPreset represents a named gravity setting.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// FallSpeedForPreset returns the fall speed (cells per tick at 10 ticks/s)
// for a difficulty preset.
func FallSpeedForPreset(preset DifficultyPreset) (float64, error) {
	switch preset {
	case DifficultyEasy:
		return 0.15, nil
	case DifficultyNormal:
		return 0.25, nil
	case DifficultyHard:
		return 0.5, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
}

// SetTickRate changes the tick rate and rescales the fall speed so pieces
// fall the same number of cells per second. Non-positive rates are ignored.
func SetTickRate(cfg *Config, rate int) {
	if rate <= 0 {
		return
	}
	if cfg.Timing.TickRate > 0 {
		speed := cfg.Timing.FallSpeed * float64(cfg.Timing.TickRate) / float64(rate)
		cfg.Timing.FallSpeed = min(speed, 1)
	}
	cfg.Timing.TickRate = rate
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
// Presets are defined for 10 ticks per second and are rescaled so the
// per-second fall rate stays the same at other tick rates.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	speed, err := FallSpeedForPreset(preset)
	if err != nil {
		return err
	}
	if cfg.Timing.TickRate > 0 {
		speed = speed * 10 / float64(cfg.Timing.TickRate)
	}
	cfg.Timing.FallSpeed = min(speed, 1)
	return nil
}
