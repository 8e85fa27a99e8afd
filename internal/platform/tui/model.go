// Package tui provides the Bubble Tea front end for Donut Dash: the
// terminal play loop, key mapping, the leaderboard table and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
	"github.com/vovakirdan/donut-dash/internal/game"
)

// TickMsg drives one simulation frame.
type TickMsg time.Time

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// configMsg carries reloaded tuning from a config watcher.
type configMsg config.GameConfig

func waitForConfig(ch <-chan config.GameConfig) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configMsg(cfg)
	}
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

const footerHelp = "←/→ move  space jump  f shoot  p pause  r reset  1/2 difficulty  q quit"

// Model is the Bubble Tea model that runs a Donut Dash session in the
// terminal. The bottom row is reserved for a status footer.
type Model struct {
	session  *game.Session
	driver   *game.Driver
	keys     *KeyState
	screen   *core.Screen
	view     core.Viewport
	status   string
	updates  <-chan config.GameConfig
	last     time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model driving session. status is shown in
// the footer (e.g. the player name or "offline").
func NewModel(session *game.Session, view core.Viewport, status string) Model {
	view = view.Normalize()
	in := core.NewInput()
	screen := core.NewScreen(view.Cols, view.PlayRows())
	b := session.Bounds()
	screen.SetWorld(b.W, b.H)

	return Model{
		session: session,
		driver:  game.NewDriver(session, in),
		keys:    NewKeyState(in),
		screen:  screen,
		view:    view,
		status:  status,
	}
}

// WithConfigUpdates makes the model apply tuning received on ch at the
// next level reset.
func (m Model) WithConfigUpdates(ch <-chan config.GameConfig) Model {
	m.updates = ch
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.updates != nil {
		return tea.Batch(tickCmd(m.view.TickRate), waitForConfig(m.updates))
	}
	return tickCmd(m.view.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		//nolint:errcheck // Rejected tuning is logged by the session
		m.session.ApplyConfig(config.GameConfig(msg))
		return m, waitForConfig(m.updates)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if _, isQuit := m.keys.HandleKey(msg, time.Now()); isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.view = m.view.Resize(msg.Width, msg.Height)
	m.screen.Resize(m.view.Cols, m.view.PlayRows())
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.view.TickRate)
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	m.driver.Step(dt)
	m.keys.EndFrame(now)

	return m, tickCmd(m.view.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(config.HomeDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("donutdash_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

func (m Model) render() {
	m.screen.Clear()
	m.driver.Draw(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()

	footer := footerHelp
	if m.status != "" {
		footer = m.status + "  │  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Session returns the driven session.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program for session. updates may be nil.
func Run(session *game.Session, view core.Viewport, status string, updates <-chan config.GameConfig) error {
	m := NewModel(session, view, status).WithConfigUpdates(updates)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
