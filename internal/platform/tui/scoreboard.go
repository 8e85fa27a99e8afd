package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/donut-dash/internal/api"
)

const (
	leaderboardTimeout = 5 * time.Second
	minTableHeight     = 3
)

// rankings are the leaderboard orderings the view cycles through.
var rankings = []struct {
	order api.Order
	title string
}{
	{api.OrderHighScore, "Best run"},
	{api.OrderTotalScore, "Total score"},
}

// ScoreboardKeyMap defines the key bindings for the leaderboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Refresh, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next ranking"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev ranking"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// leaderboardMsg carries the result of a background leaderboard fetch.
type leaderboardMsg struct {
	order api.Order
	rows  []api.LeaderboardRow
	err   error
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	backend  api.Backend
	limit    int
	cursor   int // Index into rankings
	rows     []api.LeaderboardRow
	err      error
	loading  bool
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a leaderboard view over backend, which may
// be the local store or a remote API client.
func NewScoreboardModel(backend api.Backend, by api.Order, limit, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		backend: backend,
		limit:   api.ClampLimit(limit),
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		loading: true,
	}
	for i, r := range rankings {
		if r.order == api.ParseOrder(string(by)) {
			m.cursor = i
		}
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	nameWidth := 16
	if extra := m.width - 64; extra > 0 {
		nameWidth += min(extra, 8)
	}
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: nameWidth},
		{Title: "Best", Width: 10},
		{Title: "Total", Width: 12},
		{Title: "Level", Width: 6},
		{Title: "Runs", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(minTableHeight, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the current ranking in the background.
func (m ScoreboardModel) load() tea.Cmd {
	order := rankings[m.cursor].order
	backend, limit := m.backend, m.limit
	return func() tea.Msg {
		if backend == nil {
			return leaderboardMsg{order: order, err: fmt.Errorf("no leaderboard configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
		defer cancel()
		rows, err := backend.Leaderboard(ctx, order, limit)
		return leaderboardMsg{order: order, rows: rows, err: err}
	}
}

// updateTableRows fills the table from the loaded rows.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Username,
			fmt.Sprintf("%d", r.HighScore),
			fmt.Sprintf("%d", r.TotalScore),
			fmt.Sprintf("%d", r.HighestLevel),
			fmt.Sprintf("%d", r.Runs),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init starts loading the first ranking.
func (m ScoreboardModel) Init() tea.Cmd {
	return m.load()
}

// Update handles messages for the leaderboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case leaderboardMsg:
		if msg.order != rankings[m.cursor].order {
			return m, nil // Stale response for a ranking no longer shown
		}
		m.loading = false
		m.rows, m.err = msg.rows, msg.err
		m.updateTableRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(rankings)
			m.loading = true
			return m, m.load()

		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor + len(rankings) - 1) % len(rankings)
			m.loading = true
			return m, m.load()

		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("DONUT DASH LEADERBOARD", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(rankings))
	for i, r := range rankings {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(r.title)
		} else {
			tabs[i] = tabStyle.Render(" " + r.title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or a status message.
func (m ScoreboardModel) renderTableContent() string {
	msgStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loading && len(m.rows) == 0:
		return msgStyle.Render("Loading...")
	case m.err != nil:
		return msgStyle.Foreground(lipgloss.Color("203")).Render("Leaderboard unavailable:\n" + m.err.Error())
	case len(m.rows) == 0:
		return msgStyle.Render("No runs recorded yet.\nPlay a game to get on the board!")
	}
	return m.table.View()
}

// Rows returns the currently loaded leaderboard rows.
func (m ScoreboardModel) Rows() []api.LeaderboardRow {
	return m.rows
}

// RunScoreboard runs the leaderboard screen until the user quits.
func RunScoreboard(backend api.Backend, by api.Order, limit, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(backend, by, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// centerText centers a possibly multi-line block within width.
func centerText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
