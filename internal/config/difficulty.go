package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No automatic speed-ups
)

// ParsePreset validates a preset name. The empty string means "use the
// config file as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyReflexPreset adjusts the starting speed level and escalation.
func ApplyReflexPreset(cfg *ReflexConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.StartLevel = 1
	case DifficultyNormal:
		cfg.Speed.StartLevel = 2
	case DifficultyHard:
		cfg.Speed.StartLevel = 3
	case DifficultyFixed:
		cfg.Speed.Escalate = false
	}
}

// ApplyFlappyPreset adjusts gap size and scroll speed.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Gap = 0.40
		cfg.Speed.Base = 0.004
	case DifficultyHard:
		cfg.Obstacles.Gap = 0.30
		cfg.Speed.Base = 0.006
	case DifficultyFixed:
		cfg.Speed.Step = 0
	}
}

// ApplySnakePreset adjusts the step interval.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.IntervalMS = 180
	case DifficultyHard:
		cfg.Speed.IntervalMS = 120
		cfg.Speed.MinIntervalMS = 40
	case DifficultyFixed:
		cfg.Speed.StepMS = 0
	}
}
