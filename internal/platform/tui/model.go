package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpRows is reserved below the game screen for the key help line.
const helpRows = 1

var gameHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model that hosts one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	player     string
	embedded   bool // hosted by SessionModel, which owns the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // score already recorded for the current game over
}

// NewGameModel creates a model for game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		player:     player,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Layout is recomputed on every render, so the session survives resizes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick advances the game by one host tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.scoreSaved = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore saves a finished game. Failures are logged, never fatal.
func (m GameModel) recordScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.Result{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Lines:  m.gameState.Lines,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "player", m.player, "score", m.gameState.Score)
}

// saveScreenshot writes the current frame as plain text under ~/.tetris/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting || (m.backToMenu && !m.embedded) {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + gameHelpStyle.Render(m.help.View(m.keyMapper.GameKeys()))
}

// gameRows is the screen height left for the game once the help line is drawn.
func gameRows(height int) int {
	return max(height-helpRows, 0)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the player quits or backs out.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, player, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// PlayFromMenu plays game and reports whether the player asked to return to the menu.
func PlayFromMenu(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, player, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(GameModel)
	if !ok {
		return false, nil
	}
	return fm.BackToMenu(), nil
}
