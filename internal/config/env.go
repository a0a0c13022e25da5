package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// HostConfig holds host settings read from the environment.
// Command-line flags override these when set explicitly.
type HostConfig struct {
	DBPath      string        `env:"TETRIS_DB"`
	FPS         int           `env:"TETRIS_FPS"           envDefault:"60"`
	Seed        int64         `env:"TETRIS_SEED"`
	ConfigPath  string        `env:"TETRIS_CONFIG"`
	Difficulty  string        `env:"TETRIS_DIFFICULTY"    envDefault:"normal"`
	SSHAddr     string        `env:"TETRIS_SSH_ADDR"      envDefault:":23234"`
	HostKeyPath string        `env:"TETRIS_HOST_KEY"`
	IdleTimeout time.Duration `env:"TETRIS_IDLE_TIMEOUT"  envDefault:"30m"`
}

// LoadHost parses HostConfig from the environment.
func LoadHost() (HostConfig, error) {
	var cfg HostConfig
	if err := env.Parse(&cfg); err != nil {
		return HostConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FPS <= 0 {
		return HostConfig{}, fmt.Errorf("%w: TETRIS_FPS must be positive, got %d", ErrInvalidConfig, cfg.FPS)
	}
	return cfg, nil
}
