// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, so the platform
// can discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is the interface the platform drives.
// Implementations hold no terminal or network code; the platform handles
// input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier (e.g., "tetris").
	// Used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session.
	// Called once at start and again when the player restarts.
	Reset(cfg core.RuntimeConfig)

	// Step advances by one host tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and game-over flag.
	State() core.GameState
}

// Tunable is implemented by games whose rules come from a YAML tuning file.
// The platform calls Tune before the first Reset.
type Tunable interface {
	Tune(cfg config.TetrisConfig, preset config.DifficultyPreset) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// CreateTuned instantiates a game and, when it is Tunable, applies the
// given tuning and difficulty preset.
func CreateTuned(id string, cfg config.TetrisConfig, preset config.DifficultyPreset) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if t, ok := g.(Tunable); ok {
		if err := t.Tune(cfg, preset); err != nil {
			return nil, fmt.Errorf("registry: tune %q: %w", id, err)
		}
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
