package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestScoreboardShowsScoresAndStats(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Result{
		{GameID: "tetris", Player: "carol", Score: 1200, Lines: 12},
		{GameID: "tetris", Player: "dave", Score: 300, Lines: 3},
	} {
		_, err := store.SaveScore(r)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 120, 40)
	require.NotEmpty(t, m.games)
	require.Equal(t, "tetris", m.games[0].ID)
	require.Len(t, m.scores, 2)

	view := m.View()
	assert.Contains(t, view, "carol")
	assert.Contains(t, view, "1,200")
	assert.Contains(t, view, "2 games")
	assert.Contains(t, m.statsLine(), "best 1,200")
}

func TestScoreboardSwitchesGames(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 30)
	require.GreaterOrEqual(t, len(m.games), 2)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 1, m.current)
	assert.Contains(t, m.View(), "No scores recorded yet.")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 0, m.current)
	assert.Empty(t, m.statsLine())
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}

func TestScoreboardArrowsCycleModes(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	n := len(m.games)
	require.GreaterOrEqual(t, n, 2)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	assert.Equal(t, n-1, m.current, "left wraps to the last mode")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	assert.Equal(t, 0, m.current)
}

func TestScoreboardTabsCollapseWhenNarrow(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	for _, g := range m.games {
		assert.Contains(t, m.tabs(), g.Title)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 12, Height: 30})
	m = next.(ScoreboardModel)
	tabs := m.tabs()
	assert.Contains(t, tabs, "‹ "+m.games[0].Title+" ›")
	assert.NotContains(t, tabs, m.games[1].Title)
}
