package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
)

// fixedRand returns the same value for every draw.
type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int { return int(r.f * float64(n)) }
func (r fixedRand) Shuffle(int, func(i, j int)) {}

// fakeContext records what entities report during an update.
type fakeContext struct {
	running bool
	bounds  core.Bounds
	rng     Rand
	player  core.Rect
	enemies []*Enemy

	hurts     int
	spawned   []*Projectile
	kills     int
	bossKills int
	pickups   []PickupKind
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		running: true,
		bounds:  core.Bounds{W: 960, H: 540},
		rng:     fixedRand{0.5},
		player:  core.NewRect(500, 400, 28, 40),
	}
}

func (c *fakeContext) Running() bool { return c.running }
func (c *fakeContext) Bounds() core.Bounds { return c.bounds }
func (c *fakeContext) Rand() Rand { return c.rng }
func (c *fakeContext) PlayerRect() core.Rect { return c.player }
func (c *fakeContext) Enemies() []*Enemy { return c.enemies }

func (c *fakeContext) HurtPlayer() bool {
	c.hurts++
	return true
}

func (c *fakeContext) SpawnProjectile(x, y, vx, vy float64) {
	c.spawned = append(c.spawned, NewProjectile(x, y, vx, vy, config.DefaultGameConfig().Projectile))
}

func (c *fakeContext) AwardKill(boss bool) {
	if boss {
		c.bossKills++
		return
	}
	c.kills++
}

func (c *fakeContext) ApplyPickup(kind PickupKind) {
	c.pickups = append(c.pickups, kind)
}

var _ Context = (*fakeContext)(nil)

func newTestSession(opts ...Option) *Session {
	base := []Option{WithSeed(42), WithLogger(log.New(io.Discard))}
	return NewSession(config.DefaultGameConfig(), append(base, opts...)...)
}

// frame runs one update with the given actions freshly pressed.
func frame(s *Session, dt float64, actions ...core.Action) {
	in := core.NewInput()
	for _, a := range actions {
		in.Press(a)
	}
	s.Update(dt, in)
}
