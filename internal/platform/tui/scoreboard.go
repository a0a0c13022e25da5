package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// maxScores caps how many rows one leaderboard loads.
const maxScores = 100

var (
	boardTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardTabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardStatsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardEmptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
// Tab and the horizontal arrows both cycle through the game modes.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next mode"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("←", "prev mode"),
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

// ScoreboardModel shows the leaderboard of one registered game at a time.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard sized for a width x height terminal.
// store may be nil, in which case every board is empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newScoreTable(width, height)
	m.selectGame(0)
	return m
}

// newScoreTable builds an empty score table. Spare width goes to the player column.
func newScoreTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 9},
		{Title: "Lines", Width: 6},
		{Title: "When", Width: 14},
	}
	if extra := width - 60; extra > 0 {
		columns[1].Width += min(extra, 16)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
		table.WithStyles(styles),
	)
}

// selectGame moves to the game at index i (wrapping) and reloads its scores.
// Store errors leave the board empty.
func (m *ScoreboardModel) selectGame(i int) {
	m.scores, m.stats = nil, nil
	if len(m.games) == 0 {
		m.fillTable()
		return
	}
	m.current = (i%len(m.games) + len(m.games)) % len(m.games)

	if m.store != nil {
		id := m.games[m.current].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			s.Player,
			humanize.Comma(int64(s.Score)),
			humanize.Comma(int64(s.Lines)),
			humanize.Time(s.CreatedAt),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectGame(m.current + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectGame(m.current - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Width, msg.Height)
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardEmptyStyle.Render("No scores recorded yet.\nFinish a game to set a high score!")
	if len(m.scores) > 0 {
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(centerText(boardStatsStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per game, or just the selected title between arrows
// when the full row would not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			parts[i] = boardActiveTabStyle.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	row := strings.Join(parts, " ")
	if lipgloss.Width(row) > m.width-4 {
		return boardActiveTabStyle.Render(fmt.Sprintf("‹ %s ›", m.games[m.current].Title))
	}
	return row
}

// statsLine summarizes the selected game's history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%s games  ·  best %s  ·  avg %s  ·  %s lines  ·  last played %s",
		humanize.Comma(int64(m.stats.GamesCount)),
		humanize.Comma(int64(m.stats.HighScore)),
		humanize.Comma(int64(m.stats.AvgScore)),
		humanize.Comma(m.stats.TotalLines),
		humanize.Time(m.stats.LastPlayed),
	)
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in the local terminal.
// It returns true when the player backs out to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
