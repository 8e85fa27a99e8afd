package game

import (
	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
)

// InputSource is the read side of a per-frame input snapshot.
type InputSource interface {
	IsDown(a core.Action) bool
	WasPressed(a core.Action) bool
}

// Player is the controllable character.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Speed           float64
	JumpImpulse     float64
	Gravity         float64
	MaxFall         float64
	BoostMultiplier float64

	OnGround    bool
	AirJumps    int // Remaining air jumps
	MaxAirJumps int

	Hearts       int
	MaxHearts    int
	Invuln       float64 // Seconds of invulnerability left
	InvulnWindow float64
	Boost        float64 // Seconds of speed boost left

	Facing int // -1 or +1

	ground *Platform
}

// NewPlayer creates a player at (x, y) with full hearts.
func NewPlayer(x, y float64, pc config.PlayerConfig, maxHearts int, invulnWindow float64) *Player {
	return &Player{
		X:               x,
		Y:               y,
		W:               pc.Width,
		H:               pc.Height,
		Speed:           pc.Speed,
		JumpImpulse:     pc.JumpImpulse,
		Gravity:         pc.Gravity,
		MaxFall:         pc.MaxFallSpeed,
		BoostMultiplier: pc.BoostMultiplier,
		AirJumps:        pc.AirJumps,
		MaxAirJumps:     pc.AirJumps,
		Hearts:          maxHearts,
		MaxHearts:       maxHearts,
		InvulnWindow:    invulnWindow,
		Facing:          1,
	}
}

// Rect returns the player's hitbox.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Update advances the player by dt seconds.
// Horizontal motion is resolved before vertical motion.
func (p *Player) Update(dt float64, in InputSource, platforms []*Platform, bounds core.Bounds) {
	move := 0
	if in.IsDown(core.ActionLeft) {
		move--
	}
	if in.IsDown(core.ActionRight) {
		move++
	}
	mul := 1.0
	if p.Boost > 0 {
		mul = p.BoostMultiplier
	}
	p.VX = float64(move) * p.Speed * mul
	if move != 0 {
		p.Facing = move
	}

	if in.WasPressed(core.ActionJump) {
		switch {
		case p.OnGround:
			p.VY = p.JumpImpulse
			p.OnGround = false
		case p.AirJumps > 0:
			p.VY = p.JumpImpulse
			p.AirJumps--
		}
	}

	p.VY += p.Gravity * dt
	if p.VY > p.MaxFall {
		p.VY = p.MaxFall
	}

	// Horizontal
	p.X += p.VX * dt
	for _, pl := range platforms {
		if !p.Rect().Overlaps(pl.Rect()) {
			continue
		}
		if p.VX > 0 {
			p.X = pl.X - p.W
		} else if p.VX < 0 {
			p.X = pl.X + pl.W
		}
	}
	p.clampX(bounds)

	// Vertical
	p.Y += p.VY * dt
	p.OnGround = false
	p.ground = nil
	for _, pl := range platforms {
		if !p.Rect().Overlaps(pl.Rect()) {
			continue
		}
		if p.VY > 0 {
			p.Y = pl.Y - p.H
			p.VY = 0
			p.OnGround = true
			p.ground = pl
			p.AirJumps = p.MaxAirJumps
		} else if p.VY < 0 {
			p.Y = pl.Y + pl.H
			p.VY = 0
		}
	}

	// Ride moving platforms
	if p.OnGround && p.ground != nil && p.ground.Moved() {
		p.X += p.ground.DX
		p.Y += p.ground.DY
		p.clampX(bounds)
	}

	p.Invuln = core.Approach(p.Invuln, dt)
	p.Boost = core.Approach(p.Boost, dt)
}

func (p *Player) clampX(bounds core.Bounds) {
	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.W > bounds.W {
		p.X = bounds.W - p.W
	}
}

// Hurt takes one heart unless the player is invulnerable.
// It reports whether damage was applied.
func (p *Player) Hurt() bool {
	if p.Invuln > 0 {
		return false
	}
	p.Hearts = max(0, p.Hearts-1)
	p.Invuln = p.InvulnWindow
	return true
}

// Heal restores one heart, up to MaxHearts.
func (p *Player) Heal() {
	p.Hearts = min(p.MaxHearts, p.Hearts+1)
}

// PickupBoost extends the speed boost to at least d seconds.
func (p *Player) PickupBoost(d float64) {
	p.Boost = max(p.Boost, d)
}

// SetDifficulty applies a new heart cap and invulnerability window.
// Current hearts are clamped to the new cap; an active invulnerability
// countdown is shortened to fit the new window.
func (p *Player) SetDifficulty(maxHearts int, invulnWindow float64) {
	p.MaxHearts = maxHearts
	p.Hearts = core.Clamp(p.Hearts, 0, maxHearts)
	p.InvulnWindow = invulnWindow
	p.Invuln = min(p.Invuln, invulnWindow)
}

// Dead reports whether the player has no hearts left.
func (p *Player) Dead() bool {
	return p.Hearts <= 0
}

// MoveTo places the player at rest at (x, y).
func (p *Player) MoveTo(x, y float64) {
	p.X, p.Y = x, y
	p.VX, p.VY = 0, 0
	p.OnGround = false
	p.ground = nil
}
