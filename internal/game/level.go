package game

import (
	"math"
	"slices"

	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
)

// Level is one generated arrangement of platforms, donuts, enemies and goal.
type Level struct {
	Number     int
	Difficulty config.Difficulty
	Scaling    config.Scaling

	// Platforms[0] is the ground; Platforms[1:] are the generated steps
	// in left-to-right order.
	Platforms []*Platform
	Pickups   []*Pickup
	Enemies   []*Enemy
	Goal      core.Rect

	// Oscillating is the step index (into Steps) of the moving platform, or -1.
	Oscillating int
}

// Steps returns the generated platforms without the ground.
func (l *Level) Steps() []*Platform {
	return l.Platforms[1:]
}

// Ground returns the full-width ground platform.
func (l *Level) Ground() *Platform {
	return l.Platforms[0]
}

// GenerateLevel builds a fresh level. Every call produces new entities;
// nothing is shared with earlier levels. Bounds must be positive and the
// tuning must pass config.Validate.
func GenerateLevel(bounds core.Bounds, cfg config.GameConfig, d config.Difficulty, number int, rng Rand) *Level {
	if number < 1 {
		number = 1
	}
	prof := cfg.Profile(d)
	lc := cfg.Level
	lvl := &Level{
		Number:      number,
		Difficulty:  d,
		Scaling:     config.NewScaling(cfg, prof, number),
		Oscillating: -1,
	}

	groundTop := bounds.H - lc.GroundHeight
	ground := NewPlatform(0, groundTop, bounds.W, lc.GroundHeight)
	ground.Ground = true
	lvl.Platforms = append(lvl.Platforms, ground)

	steps := generateSteps(bounds, lc, prof, groundTop, rng)
	lvl.Platforms = append(lvl.Platforms, steps...)

	// Donuts hover above their platform's center.
	for _, slot := range prof.PickupSlots {
		if slot < 0 || slot >= len(steps) {
			continue
		}
		p := steps[slot]
		kind := PickupKind(rng.Intn(pickupKinds))
		pk := NewPickup(p.X+p.W/2, p.Y-cfg.Pickup.Lift, cfg.Pickup.Radius, kind)
		pk.Host = p
		lvl.Pickups = append(lvl.Pickups, pk)
	}

	// Base enemies stand centered on their platform, except on the last
	// one, where they keep to the left edge and leave the goal clear.
	sc := lvl.Scaling
	lastIdx := len(steps) - 1
	hosted := make(map[int]bool)
	for i, slot := range prof.EnemySlots {
		if slot < 0 || slot >= len(steps) {
			continue
		}
		p := steps[slot]
		dir := 1
		if i%2 == 0 {
			dir = -1
		}
		x := p.X + (p.W-cfg.Enemy.Width)/2
		if slot == lastIdx {
			x = p.X
		}
		y := p.Y - cfg.Enemy.Height
		lvl.Enemies = append(lvl.Enemies, NewEnemy(x, y, cfg.Enemy, cfg.Projectile, sc.EnemyInterval, sc.EnemySpeed, dir, rng))
		hosted[slot] = true
	}

	last := steps[lastIdx]
	lvl.Goal = core.NewRect(last.X+last.W-lc.GoalWidth, last.Y-lc.GoalHeight, lc.GoalWidth, lc.GoalHeight)

	// The boss hovers over the last platform, above the goal and any
	// enemy standing there.
	if sc.BossHP > 0 {
		boss := NewBoss(last.X, last.Y-config.BossHover(cfg), cfg.Enemy, cfg.Projectile, sc.BossSpeed, sc.BossHP, rng)
		lvl.Enemies = append(lvl.Enemies, boss)
	}

	// Middle platforms exclude the first and last step.
	var mids []int
	for i := 1; i < lastIdx; i++ {
		mids = append(mids, i)
	}

	if lc.OscillateFromLevel > 0 && number >= lc.OscillateFromLevel {
		for _, i := range mids {
			if hosted[i] {
				continue
			}
			steps[i].Oscillate(Oscillation{
				Axis:      AxisX,
				Amplitude: prof.OscillationAmplitude,
				Speed:     lc.OscillationSpeed,
				Phase:     rng.Float64() * 2 * math.Pi,
			})
			lvl.Oscillating = i
			break
		}
	}

	slots := slices.DeleteFunc(slices.Clone(mids), func(i int) bool { return i == lvl.Oscillating })
	if len(slots) > 0 && sc.ExtraEnemies > 0 {
		rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })
		used := make(map[int]int)
		for k := 0; k < sc.ExtraEnemies; k++ {
			slot := slots[k%len(slots)]
			p := steps[slot]
			n := used[slot]
			used[slot]++

			// Alternate edges; later arrivals on the same platform step inward.
			inset := 2 + float64(n/2)*(cfg.Enemy.Width+4)
			x := p.X + inset
			dir := 1
			if n%2 == 1 {
				x = p.X + p.W - cfg.Enemy.Width - inset
				dir = -1
			}
			x = core.ClampF(x, p.X, p.X+p.W-cfg.Enemy.Width)
			y := p.Y - cfg.Enemy.Height
			lvl.Enemies = append(lvl.Enemies, NewEnemy(x, y, cfg.Enemy, cfg.Projectile, sc.EnemyInterval, sc.EnemySpeed, dir, rng))
		}
	}

	return lvl
}

// generateSteps lays out the platforms between the ground and the goal.
// Each step differs from the previous one (the ground for the first) by
// at least MinVerticalDelta and stays inside the vertical band.
func generateSteps(bounds core.Bounds, lc config.LevelConfig, prof config.DifficultyProfile, groundTop float64, rng Rand) []*Platform {
	n := max(prof.PlatformCount, 2)
	spanL := lc.SpanLeft
	spanR := bounds.W - lc.SpanRightMargin
	stride := (spanR - spanL) / float64(n-1)
	top, bottom := lc.BandTop, lc.BandBottom(bounds.H)

	steps := make([]*Platform, 0, n)
	prevY := groundTop
	for i := 0; i < n; i++ {
		w := math.Round(uniform(rng, prof.PlatformWidthMin, prof.PlatformWidthMax))
		x := spanL + stride*float64(i) + uniform(rng, -lc.XJitter, lc.XJitter)
		x = math.Round(core.ClampF(x, 0, bounds.W-w))

		y := nextStepY(prevY, top, bottom, prof, lc.AscendBias, rng)
		steps = append(steps, NewPlatform(x, y, w, lc.PlatformHeight))
		prevY = y
	}
	return steps
}

// nextStepY picks a platform height relative to prev. Climbing is chosen
// with probability bias when both directions are possible.
func nextStepY(prev, top, bottom float64, prof config.DifficultyProfile, bias float64, rng Rand) float64 {
	upLo := math.Max(top, prev-prof.MaxAscend)
	upHi := math.Min(bottom, prev-prof.MinVerticalDelta)
	downLo := math.Max(top, prev+prof.MinVerticalDelta)
	downHi := math.Min(bottom, prev+prof.MaxDescend)

	canUp := upLo <= upHi
	canDown := downLo <= downHi

	switch {
	case canUp && canDown:
		if rng.Float64() < bias {
			return roundWithin(uniform(rng, upLo, upHi), upLo, upHi)
		}
		return roundWithin(uniform(rng, downLo, downHi), downLo, downHi)
	case canUp:
		return roundWithin(uniform(rng, upLo, upHi), upLo, upHi)
	case canDown:
		return roundWithin(uniform(rng, downLo, downHi), downLo, downHi)
	default:
		// Unreachable with validated tuning.
		return core.ClampF(prev, top, bottom)
	}
}

// roundWithin rounds v to a whole pixel without leaving [lo, hi].
func roundWithin(v, lo, hi float64) float64 {
	r := math.Round(v)
	if r < lo || r > hi {
		return v
	}
	return r
}
