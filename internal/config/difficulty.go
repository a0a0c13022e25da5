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
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty accepts a preset name, case-insensitively. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DifficultyNormal, nil
	}
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
}

// ApplyTetrisPreset adjusts the gravity schedule for a difficulty preset.
// Normal keeps whatever was loaded from YAML. No preset lowers the floor
// below MinIntervalMs.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed = SpeedConfig{InitialMs: 300, MinMs: MinIntervalMs, StepMs: 1}
	case DifficultyHard:
		cfg.Speed = SpeedConfig{InitialMs: 250, MinMs: MinIntervalMs, StepMs: 3}
	case DifficultyFixed:
		cfg.Speed.MinMs = cfg.Speed.InitialMs
		cfg.Speed.StepMs = 0
	}
}
