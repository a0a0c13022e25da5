package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

func fastConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Seed = 3
	cfg.Speed = engine.SpeedConfig{Initial: 2 * time.Millisecond, Min: time.Millisecond, Step: 0}
	return cfg
}

func TestRunDemoPlaysToGameOver(t *testing.T) {
	var out bytes.Buffer
	opts := demoOptions{delay: time.Millisecond, duration: 20 * time.Second}

	final, err := runDemo(context.Background(), &out, fastConfig(), opts, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, engine.PhaseGameOver, final.Phase)
	assert.Positive(t, final.Pieces)
	assert.Contains(t, out.String(), "game_over score=")
	assert.Equal(t, 20+2, strings.Count(out.String(), "\n"), "board rows, floor, status line")
}

func TestRunDemoStopsListeningAtGameOver(t *testing.T) {
	var out bytes.Buffer
	opts := demoOptions{delay: time.Millisecond, duration: 20 * time.Second, frames: true}

	_, err := runDemo(context.Background(), &out, fastConfig(), opts, log.New(io.Discard))
	require.NoError(t, err)

	// One streamed frame plus the closing status line.
	assert.Equal(t, 2, strings.Count(out.String(), "game_over score="))
}

func TestRunDemoStopsAtDuration(t *testing.T) {
	var out bytes.Buffer
	opts := demoOptions{script: "LRLR", delay: time.Millisecond, duration: 50 * time.Millisecond, frames: true}

	cfg := engine.DefaultConfig()
	cfg.Seed = 9
	final, err := runDemo(context.Background(), &out, cfg, opts, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, engine.PhaseRunning, final.Phase)
	assert.Contains(t, out.String(), "running score=0")
}

func TestRunDemoQuitScript(t *testing.T) {
	var out bytes.Buffer
	opts := demoOptions{script: "Q", delay: time.Millisecond, duration: 10 * time.Second}

	start := time.Now()
	_, err := runDemo(context.Background(), &out, engine.DefaultConfig(), opts, log.New(io.Discard))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunDemoRejectsBadDelay(t *testing.T) {
	_, err := runDemo(context.Background(), io.Discard, engine.DefaultConfig(), demoOptions{}, log.New(io.Discard))
	assert.Error(t, err)
}

func TestBoardText(t *testing.T) {
	game, err := engine.New(engine.Config{
		Width:         4,
		Height:        4,
		Speed:         engine.DefaultSpeedConfig(),
		PointsPerLine: 100,
		Seed:          1,
	})
	require.NoError(t, err)

	text := boardText(game.Snapshot())
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "+----+", lines[4])
	assert.Contains(t, text, "#", "active piece is drawn")
	for _, l := range lines[:4] {
		assert.Len(t, l, 6)
	}
}

func TestStatusLine(t *testing.T) {
	s := engine.Snapshot{Score: 200, Lines: 2, Pieces: 9, TickIntervalMs: 282, Phase: engine.PhaseRunning}
	assert.Equal(t, "running score=200 lines=2 pieces=9 interval=282ms", statusLine(s))
}
