package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Defaults for a classic session.
const (
	DefaultWidth         = 10
	DefaultHeight        = 20
	DefaultPointsPerLine = 100
)

// Phase is the top-level engine state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Config holds everything needed to build a session.
type Config struct {
	Width         int
	Height        int
	Speed         SpeedConfig
	PointsPerLine int
	Seed          int64
}

// DefaultConfig returns a 10x20 board with the default speed schedule.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Speed:         DefaultSpeedConfig(),
		PointsPerLine: DefaultPointsPerLine,
	}
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithPicker replaces the seeded random source used for piece selection.
func WithPicker(p Picker) Option {
	return func(g *Game) {
		g.catalog = NewCatalog(p)
	}
}

// Game is the single owned session state. Every operation mutates it in
// place; it is not safe for concurrent use.
type Game struct {
	cfg     Config
	catalog *Catalog

	board  *Board
	active Piece
	speed  Speed
	score  int
	lines  int
	pieces int // pieces locked into the board
	phase  Phase
}

// New validates cfg, builds a fresh board and spawns the first piece.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Speed.Validate(); err != nil {
		return nil, err
	}
	if cfg.PointsPerLine < 0 {
		return nil, fmt.Errorf("engine: points per line %d must not be negative", cfg.PointsPerLine)
	}
	if _, err := NewBoard(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.catalog == nil {
		g.catalog = NewCatalog(rand.New(rand.NewSource(cfg.Seed)))
	}

	g.Restart()
	return g, nil
}

// Restart discards the current session and starts a new one. The random
// piece stream continues rather than replaying.
func (g *Game) Restart() {
	// Dimensions were validated in New.
	g.board, _ = NewBoard(g.cfg.Width, g.cfg.Height)
	g.speed = NewSpeed(g.cfg.Speed)
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.phase = PhaseRunning
	g.spawn()
}

// Apply dispatches one input event. It returns whether the requested move or
// rotation took effect; Quit and unknown events never change state.
func (g *Game) Apply(ev Event) bool {
	switch ev {
	case EventMoveLeft:
		return g.TryMove(-1, 0)
	case EventMoveRight:
		return g.TryMove(1, 0)
	case EventSoftDrop:
		return g.TryMove(0, 1)
	case EventRotate:
		return g.Rotate()
	case EventRestart:
		g.Restart()
		return true
	default:
		return false
	}
}

// Tick applies one step of gravity. Hosts call it each time the current
// TickInterval has elapsed.
func (g *Game) Tick() bool {
	return g.TryMove(0, 1)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.phase == PhaseGameOver
}

// Score returns the points earned this session.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the rows cleared this session.
func (g *Game) Lines() int {
	return g.lines
}

// Pieces returns how many pieces have locked this session.
func (g *Game) Pieces() int {
	return g.pieces
}

// TickInterval returns how long the host should wait between ticks.
func (g *Game) TickInterval() time.Duration {
	return g.speed.Interval()
}

// Active returns a copy of the falling piece.
func (g *Game) Active() Piece {
	return g.active
}

// Board returns a copy of the settled grid.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}
