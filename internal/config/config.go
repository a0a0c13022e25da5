// Package config provides YAML-based game tuning, difficulty presets and
// environment-driven host settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a game.
var ErrInvalidConfig = errors.New("invalid config")

// MinIntervalMs is the lowest gravity floor a config may request.
const MinIntervalMs = int(engine.DefaultMinInterval / time.Millisecond)

// TetrisConfig contains all tuning for the falling-block game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig sets the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig sets the gravity schedule in milliseconds.
type SpeedConfig struct {
	InitialMs int `yaml:"initial_ms"`
	MinMs     int `yaml:"min_ms"`
	StepMs    int `yaml:"step_ms"`
}

// ScoringConfig sets points awarded per cleared row.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// Validate checks the config against the engine's limits.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < engine.MinBoardWidth || c.Board.Height < engine.MinBoardHeight {
		return fmt.Errorf("%w: board %dx%d is below %dx%d", ErrInvalidConfig,
			c.Board.Width, c.Board.Height, engine.MinBoardWidth, engine.MinBoardHeight)
	}
	if c.Scoring.PointsPerLine < 0 {
		return fmt.Errorf("%w: points_per_line %d is negative", ErrInvalidConfig, c.Scoring.PointsPerLine)
	}
	if c.Speed.MinMs < MinIntervalMs {
		return fmt.Errorf("%w: min_ms %d is below the %dms floor", ErrInvalidConfig, c.Speed.MinMs, MinIntervalMs)
	}
	if err := c.speed().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c TetrisConfig) speed() engine.SpeedConfig {
	return engine.SpeedConfig{
		Initial: time.Duration(c.Speed.InitialMs) * time.Millisecond,
		Min:     time.Duration(c.Speed.MinMs) * time.Millisecond,
		Step:    time.Duration(c.Speed.StepMs) * time.Millisecond,
	}
}

// ToEngine converts the tuning into an engine configuration with the given seed.
func (c TetrisConfig) ToEngine(seed int64) (engine.Config, error) {
	if err := c.Validate(); err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		Speed:         c.speed(),
		PointsPerLine: c.Scoring.PointsPerLine,
		Seed:          seed,
	}, nil
}
