package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in tuning, matching engine.DefaultConfig.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  engine.DefaultWidth,
			Height: engine.DefaultHeight,
		},
		Speed: SpeedConfig{
			InitialMs: int(engine.DefaultInitialInterval.Milliseconds()),
			MinMs:     int(engine.DefaultMinInterval.Milliseconds()),
			StepMs:    int(engine.DefaultIntervalStep.Milliseconds()),
		},
		Scoring: ScoringConfig{
			PointsPerLine: engine.DefaultPointsPerLine,
		},
	}
}
