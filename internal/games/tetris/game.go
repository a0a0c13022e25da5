// Package tetris adapts the falling-block engine to the platform's Game
// interface: it maps actions to engine events, turns fixed host ticks into
// gravity steps, and draws the board into a core.Screen.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the speed schedule.
type Mode string

const (
	ModeClassic  Mode = "classic"  // gravity speeds up on every lock
	ModePractice Mode = "practice" // gravity never speeds up
)

const defaultTickRate = 60

// Game implements registry.Game on top of engine.Game.
type Game struct {
	mode   Mode
	tuning config.TetrisConfig // preset already applied
	preset config.DifficultyPreset

	eng      *engine.Game
	tickRate int
	elapsed  time.Duration // host time since the last gravity step
	ticks    uint64
}

// New creates a classic game with the built-in tuning.
func New() *Game {
	return &Game{
		mode:   ModeClassic,
		tuning: config.DefaultTetrisConfig(),
		preset: config.DifficultyNormal,
	}
}

// NewPractice creates a game whose gravity stays at its starting speed.
func NewPractice() *Game {
	g := New()
	g.mode = ModePractice
	g.preset = config.DifficultyFixed
	config.ApplyTetrisPreset(&g.tuning, g.preset)
	return g
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_fixed", func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "tetris_fixed"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Tetris (Fixed Speed)"
	}
	return "Tetris"
}

// Tune sets board size, speed schedule and scoring for the next Reset.
// The preset is applied on top of cfg; practice mode always uses the fixed preset.
func (g *Game) Tune(cfg config.TetrisConfig, preset config.DifficultyPreset) error {
	if g.mode == ModePractice {
		preset = config.DifficultyFixed
	}
	config.ApplyTetrisPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.tuning = cfg
	g.preset = preset
	return nil
}

// Reset starts a fresh session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	engCfg, err := g.tuning.ToEngine(cfg.Seed)
	if err != nil {
		// Tune rejects invalid tuning, so only a zero-value Game gets here.
		engCfg = engine.DefaultConfig()
		engCfg.Seed = cfg.Seed
	}
	eng, err := engine.New(engCfg)
	if err != nil {
		panic("tetris: default engine config rejected: " + err.Error())
	}

	g.eng = eng
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}
	g.elapsed = 0
	g.ticks = 0
}

// Step applies the frame's actions in order, then advances gravity by one
// host tick worth of time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		g.Reset(core.DefaultConfig())
	}
	g.ticks++
	changed := false

	for _, a := range in.Actions() {
		ev, ok := EventFor(a)
		if !ok {
			continue
		}
		if ev == engine.EventRestart {
			g.elapsed = 0
		}
		if g.eng.Apply(ev) {
			changed = true
		}
	}

	if g.eng.Over() {
		return core.StepResult{State: g.State(), Changed: changed}
	}

	pieces := g.eng.Pieces()
	g.elapsed += time.Second / time.Duration(g.tickRate)
	for !g.eng.Over() && g.elapsed >= g.eng.TickInterval() {
		g.elapsed -= g.eng.TickInterval()
		if g.eng.Tick() {
			changed = true
		}
	}
	if g.eng.Pieces() != pieces {
		changed = true
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// EventFor maps a platform action to an engine event.
// Menu-only actions have no engine meaning.
func EventFor(a core.Action) (engine.Event, bool) {
	switch a {
	case core.ActionLeft:
		return engine.EventMoveLeft, true
	case core.ActionRight:
		return engine.EventMoveRight, true
	case core.ActionDown:
		return engine.EventSoftDrop, true
	case core.ActionRotate:
		return engine.EventRotate, true
	case core.ActionRestart:
		return engine.EventRestart, true
	default:
		return engine.EventNone, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Lines:    g.eng.Lines(),
		GameOver: g.eng.Over(),
	}
}

// Snapshot returns a copy of the engine state for rendering and tests.
func (g *Game) Snapshot() engine.Snapshot {
	if g.eng == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.eng.Snapshot()
}

// Mode returns the speed schedule this game was built with.
func (g *Game) Mode() Mode {
	return g.mode
}

// Preset returns the difficulty preset in effect.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}
