// Package game implements the Donut Dash simulation: entity physics,
// level generation, the session state machine and the frame driver.
package game

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
)

// State is the session's position in the run lifecycle.
type State int

const (
	StateMenu State = iota
	StateRunning
	StatePaused
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithHooks sets the terminal-transition hooks.
func WithHooks(h Hooks) Option {
	return func(s *Session) { s.hooks = h }
}

// WithLogger sets the logger used for transitions and hook failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithRand sets the random source for level generation and enemy fire.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = NewRand(seed) }
}

// Session owns every entity of a run and drives the state machine.
// It is not safe for concurrent use.
type Session struct {
	cfg     config.GameConfig
	pending *config.GameConfig
	bounds  core.Bounds
	rng     Rand
	hooks   Hooks
	logger  *log.Logger

	state      State
	level      int
	difficulty config.Difficulty
	levelScore int
	totalScore int
	elapsed    float64

	damageBoost float64
	scaling     config.Scaling

	player      *Player
	platforms   []*Platform
	pickups     []*Pickup
	enemies     []*Enemy
	projectiles []*Projectile
	bullets     []*Bullet
	goal        core.Rect
}

// NewSession creates a session in the menu state. An easy level 1 layout
// is generated so front ends have something to show behind the menu.
func NewSession(cfg config.GameConfig, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		bounds:     core.Bounds{W: cfg.World.Width, H: cfg.World.Height},
		state:      StateMenu,
		level:      1,
		difficulty: config.DifficultyEasy,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.reset()
	return s
}

// Update advances the session by dt seconds using this frame's input.
// The caller clears the input's edge set afterwards.
func (s *Session) Update(dt float64, in InputSource) {
	prev := s.state

	switch s.state {
	case StateMenu:
		if d, ok := difficultyPressed(in); ok {
			s.Start(d)
		}
	case StateRunning:
		switch {
		case in.WasPressed(core.ActionPause):
			s.state = StatePaused
		case in.WasPressed(core.ActionReset):
			s.Reset()
		default:
			if d, ok := difficultyPressed(in); ok {
				s.SetDifficulty(d)
			}
		}
		if s.state == StateRunning {
			s.step(dt, in)
		}
	case StatePaused:
		switch {
		case in.WasPressed(core.ActionPause):
			s.state = StateRunning
		case in.WasPressed(core.ActionReset):
			s.Reset()
		}
	case StateWon:
		if in.WasPressed(core.ActionConfirm) {
			s.Advance()
		}
	case StateLost:
		if in.WasPressed(core.ActionConfirm) {
			s.Restart()
		}
	}

	s.afterTransition(prev)
}

func difficultyPressed(in InputSource) (config.Difficulty, bool) {
	switch {
	case in.WasPressed(core.ActionEasy):
		return config.DifficultyEasy, true
	case in.WasPressed(core.ActionHard):
		return config.DifficultyHard, true
	}
	return "", false
}

// step runs one simulation frame in the running state.
func (s *Session) step(dt float64, in InputSource) {
	s.elapsed += dt
	s.damageBoost = core.Approach(s.damageBoost, dt)

	if in.WasPressed(core.ActionShoot) {
		s.shoot()
	}

	ctx := sessionContext{s}
	for _, p := range s.platforms {
		p.Update(dt)
	}
	for _, e := range s.enemies {
		e.Update(dt, ctx)
	}
	for _, p := range s.projectiles {
		p.Update(dt, ctx)
	}
	for _, b := range s.bullets {
		b.Update(dt, ctx)
	}
	for _, p := range s.pickups {
		p.Update(ctx)
	}
	s.player.Update(dt, in, s.platforms, s.bounds)

	s.purge()

	pr := s.player.Rect()
	for _, e := range s.enemies {
		if s.state != StateRunning {
			break
		}
		if pr.Overlaps(e.Rect()) {
			s.hurtPlayer()
		}
	}

	if s.state == StateRunning && len(s.enemies) == 0 && pr.Overlaps(s.goal) {
		s.state = StateWon
	}
}

func (s *Session) purge() {
	s.enemies = slices.DeleteFunc(s.enemies, func(e *Enemy) bool { return e.Dead })
	s.projectiles = slices.DeleteFunc(s.projectiles, func(p *Projectile) bool { return p.Dead })
	s.bullets = slices.DeleteFunc(s.bullets, func(b *Bullet) bool { return b.Dead })
	s.pickups = slices.DeleteFunc(s.pickups, func(p *Pickup) bool { return p.Dead })
}

// shoot fires a bullet from the player's facing edge at mid-height.
func (s *Session) shoot() {
	bc := s.cfg.Bullet
	p := s.player
	x := p.X + p.W
	if p.Facing < 0 {
		x = p.X - bc.Width
	}
	y := p.Y + p.H/2 - bc.Height/2
	dmg := s.scaling.BulletDamage(s.damageBoost > 0, s.cfg.Pickup.DamageBoostFactor)
	vx := float64(p.Facing) * bc.Speed
	s.bullets = append(s.bullets, NewBullet(x, y, vx, dmg, bc, s.cfg.Projectile.CullMargin))
}

// hurtPlayer applies the damage contract and moves to lost on the last heart.
func (s *Session) hurtPlayer() bool {
	took := s.player.Hurt()
	if took && s.player.Dead() && s.state == StateRunning {
		s.state = StateLost
	}
	return took
}

// afterTransition logs state changes and fires hooks on entry into a
// terminal state.
func (s *Session) afterTransition(prev State) {
	if prev == s.state {
		return
	}
	s.logger.Debug("session state changed",
		"from", prev,
		"to", s.state,
		"level", s.level,
		"difficulty", s.difficulty,
		"levelScore", s.levelScore,
		"totalScore", s.totalScore,
	)
	if s.hooks == nil {
		return
	}
	switch s.state {
	case StateLost:
		summary := s.RunSummary()
		if err := safeCall(func() error { return s.hooks.OnRunEnd(summary) }); err != nil {
			s.logger.Warn("run-end hook failed", "err", err)
		}
	case StateWon:
		if err := safeCall(s.hooks.OnWinEnd); err != nil {
			s.logger.Warn("win hook failed", "err", err)
		}
	}
}

// RunSummary describes the current run as reported when it ends.
func (s *Session) RunSummary() RunSummary {
	return RunSummary{
		Score:        s.totalScore + s.levelScore,
		LevelReached: s.level,
		Difficulty:   s.difficulty,
		Died:         true,
	}
}

// Start begins a new run at level 1 with the given difficulty.
func (s *Session) Start(d config.Difficulty) {
	s.difficulty = d
	s.level = 1
	s.totalScore = 0
	s.Reset()
}

// Reset regenerates the current level. The level score returns to 0;
// the total score is kept. The session resumes running.
func (s *Session) Reset() {
	s.reset()
	s.state = StateRunning
}

// Advance moves from a cleared level to the next one.
func (s *Session) Advance() {
	if s.state != StateWon {
		return
	}
	s.totalScore += s.levelScore
	s.level++
	s.Reset()
}

// Restart begins again at level 1 after a loss.
func (s *Session) Restart() {
	if s.state != StateLost {
		return
	}
	s.level = 1
	s.totalScore = 0
	s.Reset()
}

// TogglePause switches between running and paused.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// SetDifficulty swaps difficulty. In the menu it starts a run; during a
// run it keeps the live player (hearts clamped to the new cap), recomputes
// scaling and regenerates the layout, keeping the level score.
func (s *Session) SetDifficulty(d config.Difficulty) {
	switch s.state {
	case StateMenu:
		s.Start(d)
		return
	case StateRunning, StatePaused:
	default:
		return
	}
	if d == s.difficulty {
		return
	}
	s.difficulty = d
	prof := s.cfg.Profile(d)
	s.player.SetDifficulty(prof.MaxHearts, prof.InvulnWindow)
	s.loadLevel()
	s.player.MoveTo(s.spawn())
	s.logger.Debug("difficulty changed", "difficulty", d, "level", s.level, "damagePerHit", s.scaling.DamagePerHit)
}

// ApplyConfig queues new tuning for the next level reset. The world size
// of a running session never changes, so the tuning is validated against
// the session's world; on failure the current tuning stays in effect.
func (s *Session) ApplyConfig(cfg config.GameConfig) error {
	cfg.World = s.cfg.World
	if err := config.Validate(cfg); err != nil {
		s.logger.Warn("tuning rejected for this world", "width", cfg.World.Width, "height", cfg.World.Height, "err", err)
		return fmt.Errorf("game: tuning rejected: %w", err)
	}
	s.pending = &cfg
	return nil
}

// reset rebuilds the player and the level without touching the state.
func (s *Session) reset() {
	if s.pending != nil {
		s.cfg = *s.pending
		s.pending = nil
		s.logger.Info("tuning reloaded")
	}
	prof := s.cfg.Profile(s.difficulty)
	x, y := s.spawn()
	s.player = NewPlayer(x, y, s.cfg.Player, prof.MaxHearts, prof.InvulnWindow)
	s.levelScore = 0
	s.damageBoost = 0
	s.loadLevel()
}

// loadLevel replaces every entity collection with a freshly generated level.
func (s *Session) loadLevel() {
	lvl := GenerateLevel(s.bounds, s.cfg, s.difficulty, s.level, s.rng)
	s.scaling = lvl.Scaling
	s.platforms = lvl.Platforms
	s.pickups = lvl.Pickups
	s.enemies = lvl.Enemies
	s.goal = lvl.Goal
	s.projectiles = nil
	s.bullets = nil
}

func (s *Session) spawn() (float64, float64) {
	return s.cfg.Player.SpawnX, s.bounds.H - s.cfg.Player.SpawnOffsetY
}

// Accessors.

func (s *Session) State() State { return s.state }
func (s *Session) Level() int { return s.level }
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }
func (s *Session) LevelScore() int { return s.levelScore }
func (s *Session) TotalScore() int { return s.totalScore }
func (s *Session) Elapsed() float64 { return s.elapsed }
func (s *Session) DamageBoost() float64 { return s.damageBoost }
func (s *Session) Scaling() config.Scaling { return s.scaling }
func (s *Session) DamagePerHit() int { return s.scaling.DamagePerHit }
func (s *Session) KillPoints() int { return s.scaling.KillPoints }
func (s *Session) Player() *Player { return s.player }
func (s *Session) Platforms() []*Platform { return s.platforms }
func (s *Session) Pickups() []*Pickup { return s.pickups }
func (s *Session) Enemies() []*Enemy { return s.enemies }
func (s *Session) Projectiles() []*Projectile { return s.projectiles }
func (s *Session) Bullets() []*Bullet { return s.bullets }
func (s *Session) Goal() core.Rect { return s.goal }
func (s *Session) Bounds() core.Bounds { return s.bounds }
func (s *Session) Config() config.GameConfig { return s.cfg }

// sessionContext is the Context handed to entities during a frame.
type sessionContext struct {
	s *Session
}

func (c sessionContext) Running() bool { return c.s.state == StateRunning }
func (c sessionContext) Bounds() core.Bounds { return c.s.bounds }
func (c sessionContext) Rand() Rand { return c.s.rng }
func (c sessionContext) PlayerRect() core.Rect { return c.s.player.Rect() }
func (c sessionContext) HurtPlayer() bool { return c.s.hurtPlayer() }
func (c sessionContext) Enemies() []*Enemy { return c.s.enemies }

func (c sessionContext) SpawnProjectile(x, y, vx, vy float64) {
	c.s.projectiles = append(c.s.projectiles, NewProjectile(x, y, vx, vy, c.s.cfg.Projectile))
}

func (c sessionContext) AwardKill(boss bool) {
	if boss {
		c.s.levelScore += c.s.scaling.BossKillPoints
		return
	}
	c.s.levelScore += c.s.scaling.KillPoints
}

func (c sessionContext) ApplyPickup(kind PickupKind) {
	pc := c.s.cfg.Pickup
	switch kind {
	case PickupSpeed:
		c.s.player.PickupBoost(pc.SpeedBoost)
	case PickupLife:
		c.s.player.Heal()
	case PickupDamage:
		c.s.damageBoost = max(c.s.damageBoost, pc.DamageBoost)
	}
	c.s.levelScore += pc.Points
}
