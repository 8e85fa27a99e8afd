package game

import (
	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
)

// Enemy is a stationary turret that fires toward the player.
type Enemy struct {
	X, Y, W, H float64

	BaseInterval    float64
	Jitter          float64 // +/- fraction of BaseInterval
	Timer           float64 // Seconds until the next volley
	ProjectileSpeed float64
	Dir             int // Last fire direction, -1 or +1

	Boss bool
	HP   int // Zero means no pool: any hit kills
	Dead bool

	tune config.EnemyConfig
	shot config.ProjectileConfig
}

// NewEnemy creates a regular enemy. The first volley is staggered by a
// random fraction of the interval.
func NewEnemy(x, y float64, ec config.EnemyConfig, pc config.ProjectileConfig, interval, speed float64, dir int, rng Rand) *Enemy {
	return &Enemy{
		X:               x,
		Y:               y,
		W:               ec.Width,
		H:               ec.Height,
		BaseInterval:    interval,
		Jitter:          ec.Jitter,
		Timer:           rng.Float64() * interval,
		ProjectileSpeed: speed,
		Dir:             dir,
		tune:            ec,
		shot:            pc,
	}
}

// NewBoss creates a boss with a hit-point pool and a triple-shot fan.
func NewBoss(x, y float64, ec config.EnemyConfig, pc config.ProjectileConfig, speed float64, hp int, rng Rand) *Enemy {
	e := NewEnemy(x, y, ec, pc, ec.BossInterval, speed, -1, rng)
	e.W, e.H = ec.BossWidth, ec.BossHeight
	e.Boss = true
	e.HP = hp
	return e
}

// Rect returns the enemy's hitbox.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Update counts down and fires a volley when the timer expires.
// Nothing is fired unless the session is running.
func (e *Enemy) Update(dt float64, ctx Context) {
	if e.Dead {
		return
	}
	e.Timer -= dt
	if e.Timer > 0 || !ctx.Running() {
		return
	}

	jitter := (ctx.Rand().Float64()*2 - 1) * e.Jitter
	e.Timer = core.ClampF(e.BaseInterval*(1+jitter), e.tune.MinInterval, e.tune.MaxInterval)

	player := ctx.PlayerRect()
	playerMid, _ := player.Center()
	mid, _ := e.Rect().Center()
	e.Dir = -1
	if playerMid >= mid {
		e.Dir = 1
	}

	vx := float64(e.Dir) * e.ProjectileSpeed
	px := e.X - e.shot.Width
	if e.Dir > 0 {
		px = e.X + e.W
	}
	py := e.Y + e.H/2 - e.tune.ShotOffsetY

	if !e.Boss {
		ctx.SpawnProjectile(px, py, vx, 0)
		return
	}
	fan, off := e.tune.BossFanSpeed, e.tune.BossFanOffsetY
	ctx.SpawnProjectile(px, py-off, vx, -fan)
	ctx.SpawnProjectile(px, py, vx, 0)
	ctx.SpawnProjectile(px, py+off, vx, fan)
}

// Damage applies n points of damage. It returns true only for the hit
// that moves the enemy from alive to dead, so kill points are awarded
// once no matter how many bullets land in the same frame.
func (e *Enemy) Damage(n int) bool {
	if e.Dead {
		return false
	}
	if e.HP <= 0 {
		e.Dead = true
		return true
	}
	e.HP -= n
	if e.HP <= 0 {
		e.HP = 0
		e.Dead = true
		return true
	}
	return false
}
