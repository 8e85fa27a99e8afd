// Package window runs Donut Dash in a desktop window or a browser canvas
// using Ebiten.
package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
	"github.com/vovakirdan/donut-dash/internal/game"
)

// Game implements ebiten.Game over a session.
type Game struct {
	driver  *game.Driver
	input   *core.Input
	surface *Surface
	updates <-chan config.GameConfig
	logger  *log.Logger
}

// NewGame creates an ebiten game for session. updates may be nil; when
// set, tuning received on it is applied at the next level reset.
func NewGame(session *game.Session, updates <-chan config.GameConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	in := core.NewInput()
	return &Game{
		driver:  game.NewDriver(session, in),
		input:   in,
		updates: updates,
		logger:  logger,
	}
}

// Update polls input and steps the simulation by one tick.
func (g *Game) Update() error {
	select {
	case cfg, ok := <-g.updates:
		if !ok {
			g.updates = nil
			break
		}
		if err := g.driver.Session.ApplyConfig(cfg); err == nil {
			g.logger.Info("tuning change queued for next level")
		}
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	PollInput(g.input, ebiten.IsKeyPressed)
	if g.input.WasPressed(core.ActionQuit) {
		return ebiten.Termination
	}

	g.driver.Step(1 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the session.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorBackground.RGBA())
	if g.surface == nil {
		g.surface = NewSurface(screen)
	} else {
		g.surface.Target(screen)
	}
	g.driver.Draw(g.surface)
}

// Layout fixes the logical screen to the world size.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.driver.Session.Bounds()
	return int(b.W), int(b.H)
}

// Run opens a window titled title and blocks until it is closed.
func Run(g *Game, title string) error {
	b := g.driver.Session.Bounds()
	ebiten.SetWindowSize(int(b.W), int(b.H))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}
