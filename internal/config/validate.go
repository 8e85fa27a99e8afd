package config

import (
	"errors"
	"fmt"
)

// Validate reports tuning that would break the simulation or the level
// generator. All problems are joined into one error.
func Validate(cfg GameConfig) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	w, h := cfg.World.Width, cfg.World.Height
	if w <= 0 || h <= 0 {
		fail("world: size must be positive, got %vx%v", w, h)
	}
	if cfg.World.MaxFrameDT <= 0 {
		fail("world: max_frame_dt must be positive")
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		fail("player: size must be positive")
	}
	if cfg.Player.JumpImpulse >= 0 {
		fail("player: jump_impulse must be negative (up)")
	}
	if cfg.Player.Gravity <= 0 || cfg.Player.MaxFallSpeed <= 0 {
		fail("player: gravity and max_fall_speed must be positive")
	}
	if cfg.Player.AirJumps < 0 {
		fail("player: air_jumps must not be negative")
	}
	if cfg.Enemy.MinInterval <= 0 || cfg.Enemy.MaxInterval < cfg.Enemy.MinInterval {
		fail("enemy: need 0 < min_interval <= max_interval")
	}
	if cfg.Enemy.Jitter < 0 || cfg.Enemy.Jitter >= 1 {
		fail("enemy: jitter must be in [0, 1)")
	}
	if cfg.Level.BossEvery < 1 {
		fail("level: boss_every must be at least 1")
	}
	if cfg.Level.AscendBias < 0 || cfg.Level.AscendBias > 1 {
		fail("level: ascend_bias must be in [0, 1]")
	}
	if cfg.Level.SpanLeft >= w-cfg.Level.SpanRightMargin {
		fail("level: platform span is empty")
	}
	if hover := BossHover(cfg); cfg.Level.BandTop < hover {
		fail("level: band_top %v leaves no room for the boss above the goal (need %v)", cfg.Level.BandTop, hover)
	}

	for _, d := range []Difficulty{DifficultyEasy, DifficultyHard} {
		errs = append(errs, validateProfile(d, cfg.Profile(d), cfg, h)...)
	}
	return errors.Join(errs...)
}

// GoalClearance is the horizontal and vertical gap kept between the goal
// and the enemies placed around it.
const GoalClearance = 4

// BossHover is how far above the last platform's top the boss's top edge
// sits: clear of both the goal and a base enemy standing there.
func BossHover(cfg GameConfig) float64 {
	return cfg.Enemy.BossHeight + max(cfg.Enemy.Height, cfg.Level.GoalHeight) + GoalClearance
}

func validateProfile(d Difficulty, p DifficultyProfile, cfg GameConfig, worldH float64) []error {
	lvl := cfg.Level
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("difficulty.%s: "+format, append([]any{d}, args...)...))
	}

	if p.MaxHearts < 1 {
		fail("max_hearts must be at least 1")
	}
	if p.InvulnWindow < 0 {
		fail("invuln_window must not be negative")
	}
	if p.DamageFactor < 1 {
		fail("damage_factor must be at least 1")
	}
	if p.DamageCap < 1 {
		fail("damage_cap must be at least 1")
	}
	if p.PlatformCount < 2 {
		fail("platform_count must be at least 2")
	}
	if p.PlatformWidthMin <= 0 || p.PlatformWidthMax < p.PlatformWidthMin {
		fail("need 0 < platform_width_min <= platform_width_max")
	}
	// The goal platform may also carry a base enemy at its left edge.
	if need := cfg.Enemy.Width + GoalClearance + lvl.GoalWidth; p.PlatformWidthMin < need {
		fail("platform_width_min %v cannot hold an enemy beside the goal (need %v)", p.PlatformWidthMin, need)
	}
	if p.MinVerticalDelta <= 0 {
		fail("min_vertical_delta must be positive")
	}
	if p.MaxAscend < p.MinVerticalDelta || p.MaxDescend < p.MinVerticalDelta {
		fail("max_ascend and max_descend must be at least min_vertical_delta")
	}

	// Every band position must leave room for a legal step up or down.
	top, bottom := lvl.BandTop, lvl.BandBottom(worldH)
	if bottom-top < 2*p.MinVerticalDelta {
		fail("vertical band [%v, %v] narrower than twice min_vertical_delta %v", top, bottom, p.MinVerticalDelta)
	}
	// The first platform is placed relative to the ground.
	ground := lvl.GroundTop(worldH)
	if ground-p.MinVerticalDelta < top || ground-p.MaxAscend > bottom {
		fail("first platform cannot be placed between ground %v and band [%v, %v]", ground, top, bottom)
	}

	for _, slot := range p.PickupSlots {
		if slot < 0 || slot >= p.PlatformCount {
			fail("pickup slot %d out of range", slot)
		}
	}
	for _, slot := range p.EnemySlots {
		if slot < 0 || slot >= p.PlatformCount {
			fail("enemy slot %d out of range", slot)
		}
	}
	if p.EnemyInterval <= 0 || p.EnemyIntervalDecay <= 0 {
		fail("enemy_interval and enemy_interval_decay must be positive")
	}
	if p.MaxExtraEnemies < 0 || p.ExtraEnemiesPerLevel < 0 {
		fail("extra enemy settings must not be negative")
	}
	return errs
}
