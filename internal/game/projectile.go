package game

import (
	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
)

// Projectile is an enemy shot. It hurts the player on contact.
type Projectile struct {
	X, Y, W, H float64
	VX, VY     float64
	Dead       bool

	margin float64
}

// NewProjectile creates a projectile with its top-left corner at (x, y).
func NewProjectile(x, y, vx, vy float64, pc config.ProjectileConfig) *Projectile {
	return &Projectile{X: x, Y: y, W: pc.Width, H: pc.Height, VX: vx, VY: vy, margin: pc.CullMargin}
}

// Rect returns the projectile's hitbox.
func (p *Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Update moves the projectile, applies contact damage and culls it once
// it leaves the world by more than the cull margin on any side.
func (p *Projectile) Update(dt float64, ctx Context) {
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if !p.Dead && ctx.Running() && p.Rect().Overlaps(ctx.PlayerRect()) {
		ctx.HurtPlayer()
		p.Dead = true
	}

	b := ctx.Bounds()
	if p.X < -p.margin || p.X > b.W+p.margin || p.Y < -p.margin || p.Y > b.H+p.margin {
		p.Dead = true
	}
}

// Bullet is a player shot travelling horizontally.
type Bullet struct {
	X, Y, W, H float64
	VX         float64
	Damage     int
	Dead       bool

	margin float64
}

// NewBullet creates a bullet with its top-left corner at (x, y).
func NewBullet(x, y, vx float64, damage int, bc config.BulletConfig, margin float64) *Bullet {
	return &Bullet{X: x, Y: y, W: bc.Width, H: bc.Height, VX: vx, Damage: damage, margin: margin}
}

// Rect returns the bullet's hitbox.
func (b *Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Update moves the bullet and hits the first live enemy it overlaps.
// The bullet is consumed on any hit; kill points are awarded only when
// the hit is the one that killed the enemy.
func (b *Bullet) Update(dt float64, ctx Context) {
	if b.Dead {
		return
	}
	b.X += b.VX * dt

	r := b.Rect()
	for _, e := range ctx.Enemies() {
		if e.Dead || !r.Overlaps(e.Rect()) {
			continue
		}
		if e.Damage(b.Damage) {
			ctx.AwardKill(e.Boss)
		}
		b.Dead = true
		break
	}

	w := ctx.Bounds().W
	if b.X < -b.margin || b.X > w+b.margin {
		b.Dead = true
	}
}
