package config

import "math"

// Scaling holds the values derived from a difficulty profile and a level number.
// It is recomputed whenever the level or the difficulty changes.
type Scaling struct {
	Level int

	DamagePerHit   int // Base player bullet damage
	KillPoints     int // Points for a regular enemy kill
	BossKillPoints int

	EnemySpeed    float64 // Projectile speed of regular enemies
	EnemyInterval float64 // Base fire interval of regular enemies
	BossSpeed     float64
	BossHP        int // Zero when the level has no boss

	ExtraEnemies int
}

// NewScaling computes the scaling for level (1-based) under the given tuning.
func NewScaling(cfg GameConfig, p DifficultyProfile, level int) Scaling {
	if level < 1 {
		level = 1
	}
	s := Scaling{
		Level:        level,
		DamagePerHit: DamagePerHit(p, level),
		KillPoints:   KillPoints(p, level),
		EnemySpeed:   EnemySpeed(p, level),
		ExtraEnemies: ExtraEnemies(p, level),
	}
	s.BossKillPoints = s.KillPoints * max(1, p.BossKillMultiplier)
	s.EnemyInterval = EnemyInterval(p, level, cfg.Enemy.MinInterval)
	s.BossSpeed = s.EnemySpeed * cfg.Enemy.BossSpeedFactor
	if IsBossLevel(cfg.Level, level) {
		s.BossHP = BossHP(p, level, cfg.Level.BossEvery, s.DamagePerHit)
	}
	return s
}

// BulletDamage returns the damage of a player bullet, doubled (by the
// configured factor) while the damage boost is active.
func (s Scaling) BulletDamage(boosted bool, factor int) int {
	if boosted && factor > 1 {
		return s.DamagePerHit * factor
	}
	return s.DamagePerHit
}

// DamagePerHit returns ceil(factor^(level-1)) clamped to [1, cap].
func DamagePerHit(p DifficultyProfile, level int) int {
	raw := math.Pow(p.DamageFactor, float64(level-1))
	// Trim float noise so exact integers do not round up.
	dmg := int(math.Ceil(raw - 1e-9))
	return clamp(dmg, 1, max(1, p.DamageCap))
}

// KillPoints returns round(base * (1 + growth*(level-1))).
func KillPoints(p DifficultyProfile, level int) int {
	return int(math.Round(float64(p.KillPoints) * (1 + p.KillPointsGrowth*float64(level-1))))
}

// EnemySpeed returns base + step*(level-1), capped at the profile maximum.
func EnemySpeed(p DifficultyProfile, level int) float64 {
	speed := p.EnemySpeed + p.EnemySpeedStep*float64(level-1)
	if p.EnemyMaxSpeed > 0 && speed > p.EnemyMaxSpeed {
		speed = p.EnemyMaxSpeed
	}
	return speed
}

// EnemyInterval returns base * decay^(level-1), floored at minInterval.
func EnemyInterval(p DifficultyProfile, level int, minInterval float64) float64 {
	interval := p.EnemyInterval * math.Pow(p.EnemyIntervalDecay, float64(level-1))
	return math.Max(interval, minInterval)
}

// IsBossLevel reports whether level ends with a boss.
func IsBossLevel(lvl LevelConfig, level int) bool {
	return lvl.BossEvery > 0 && level >= lvl.BossEvery && level%lvl.BossEvery == 0
}

// BossHP returns (base + step*(tier-1)) * damagePerHit, where tier counts
// boss levels so far. Scaling by damage keeps the number of hits stable.
func BossHP(p DifficultyProfile, level, every, damagePerHit int) int {
	tier := 1
	if every > 0 {
		tier = max(1, level/every)
	}
	return (p.BossBaseHP + p.BossHPStep*(tier-1)) * damagePerHit
}

// ExtraEnemies returns floor((level-1) * perLevel), capped.
func ExtraEnemies(p DifficultyProfile, level int) int {
	n := int(math.Floor(float64(level-1) * p.ExtraEnemiesPerLevel))
	return clamp(n, 0, p.MaxExtraEnemies)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
