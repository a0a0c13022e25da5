package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Down       key.Binding
	Rotate     key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate},
		{k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
// X restarts as well as R, and Esc goes back rather than quitting.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "soft drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w", "k", " "),
			key.WithHelp("↑/space", "rotate"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "x"),
			key.WithHelp("r/x", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	game GameKeyMap
	menu MenuKeyMap
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: DefaultGameKeyMap(),
		menu: DefaultMenuKeyMap(),
	}
}

// GameKeys returns the in-game bindings, for help views.
func (km *KeyMapper) GameKeys() GameKeyMap {
	return km.game
}

// MenuKeys returns the menu bindings, for help views.
func (km *KeyMapper) MenuKeys() MenuKeyMap {
	return km.menu
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.game.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.game.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.game.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.game.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.game.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, km.game.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.game.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// IsScreenshot reports whether msg requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.game.Screenshot)
}

// MenuKeyMap defines the menu bindings.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Scoreboard, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/→", "difficulty"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/l", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.menu.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.menu.Up):
		return MenuActionUp
	case key.Matches(msg, km.menu.Down):
		return MenuActionDown
	case key.Matches(msg, km.menu.Left):
		return MenuActionLeft
	case key.Matches(msg, km.menu.Right):
		return MenuActionRight
	case key.Matches(msg, km.menu.Select):
		return MenuActionSelect
	case key.Matches(msg, km.menu.Scoreboard):
		return MenuActionScoreboard
	case key.Matches(msg, km.menu.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
