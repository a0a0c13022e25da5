package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// loadTuning resolves the tuning file and difficulty preset from host settings.
func loadTuning() (config.TetrisConfig, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(host.Difficulty)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}
	tuning, err := config.LoadTetris(host.ConfigPath)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}
	return tuning, preset, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	seed := host.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: host.FPS,
		Seed:     seed,
	}
}

// newLogger writes to w at info level, or debug with --verbose.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newFileLogger logs to ~/.tetris/tetris.log so the alt screen stays clean.
// The returned closer must be called on exit.
func newFileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	dir := filepath.Join(home, ".tetris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tetris.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	return newLogger(f, "tetris"), func() { f.Close() }
}

// openStore opens the scores database. A failure is reported and play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(host.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", host.DBPath, "error", err)
		return nil
	}
	return store
}

// playerName is the local user recorded with each score.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "anonymous"
}
