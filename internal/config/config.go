// Package config provides YAML-based game tuning, difficulty profiles and
// the level-scaling formulas used by the simulation.
package config

import (
	"fmt"
	"strings"
)

// GameConfig contains all tuning for Donut Dash.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Pickup     PickupConfig     `yaml:"pickup"`
	Level      LevelConfig      `yaml:"level"`
	Difficulty DifficultySet    `yaml:"difficulty"`
}

// WorldConfig defines the playable area and frame pacing.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MaxFrameDT float64 `yaml:"max_frame_dt"` // Upper bound on a single update step (seconds)
}

// PlayerConfig defines the player body and movement.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`        // px/s
	JumpImpulse     float64 `yaml:"jump_impulse"` // negative = up
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	AirJumps        int     `yaml:"air_jumps"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnOffsetY    float64 `yaml:"spawn_offset_y"` // Spawn y measured up from the world bottom
}

// EnemyConfig defines enemy bodies and firing behavior.
type EnemyConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Jitter          float64 `yaml:"jitter"`       // +/- fraction applied to each interval
	MinInterval     float64 `yaml:"min_interval"` // Seconds
	MaxInterval     float64 `yaml:"max_interval"` // Seconds
	ShotOffsetY     float64 `yaml:"shot_offset_y"`
	BossWidth       float64 `yaml:"boss_width"`
	BossHeight      float64 `yaml:"boss_height"`
	BossInterval    float64 `yaml:"boss_interval"`
	BossFanSpeed    float64 `yaml:"boss_fan_speed"`
	BossFanOffsetY  float64 `yaml:"boss_fan_offset_y"`
	BossSpeedFactor float64 `yaml:"boss_speed_factor"`
}

// ProjectileConfig defines enemy-fired projectiles.
type ProjectileConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CullMargin float64 `yaml:"cull_margin"`
}

// BulletConfig defines player-fired bullets.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// PickupConfig defines donut pickups and their effects.
type PickupConfig struct {
	Radius            float64 `yaml:"radius"`
	Lift              float64 `yaml:"lift"`               // Height of the donut center above its platform
	SpeedBoost        float64 `yaml:"speed_boost"`        // Seconds
	DamageBoost       float64 `yaml:"damage_boost"`       // Seconds
	DamageBoostFactor int     `yaml:"damage_boost_factor"` // Bullet damage multiplier while boosted
	Points            int     `yaml:"points"`
}

// LevelConfig defines the geometry used by the level generator.
type LevelConfig struct {
	GroundHeight       float64 `yaml:"ground_height"`
	PlatformHeight     float64 `yaml:"platform_height"`
	SpanLeft           float64 `yaml:"span_left"`
	SpanRightMargin    float64 `yaml:"span_right_margin"`
	BandTop            float64 `yaml:"band_top"`
	BandBottomOffset   float64 `yaml:"band_bottom_offset"` // Band bottom measured up from the world bottom
	XJitter            float64 `yaml:"x_jitter"`
	AscendBias         float64 `yaml:"ascend_bias"` // Probability of climbing when both directions fit
	OscillateFromLevel int     `yaml:"oscillate_from_level"`
	OscillationSpeed   float64 `yaml:"oscillation_speed"` // rad/s
	BossEvery          int     `yaml:"boss_every"`
	GoalWidth          float64 `yaml:"goal_width"`
	GoalHeight         float64 `yaml:"goal_height"`
}

// BandBottom returns the lowest allowed platform y for a world of the given height.
func (l LevelConfig) BandBottom(worldH float64) float64 {
	return worldH - l.BandBottomOffset
}

// GroundTop returns the y of the ground surface for a world of the given height.
func (l LevelConfig) GroundTop(worldH float64) float64 {
	return worldH - l.GroundHeight
}

// DifficultySet holds one profile per difficulty.
type DifficultySet struct {
	Easy DifficultyProfile `yaml:"easy"`
	Hard DifficultyProfile `yaml:"hard"`
}

// DifficultyProfile holds everything that changes between easy and hard.
type DifficultyProfile struct {
	MaxHearts    int     `yaml:"max_hearts"`
	InvulnWindow float64 `yaml:"invuln_window"` // Seconds of invulnerability after a hit

	DamageFactor float64 `yaml:"damage_factor"` // Per-level growth of damage per hit
	DamageCap    int     `yaml:"damage_cap"`

	KillPoints         int     `yaml:"kill_points"`
	KillPointsGrowth   float64 `yaml:"kill_points_growth"` // Fraction added per level
	BossKillMultiplier int     `yaml:"boss_kill_multiplier"`

	PlatformCount    int     `yaml:"platform_count"`
	PlatformWidthMin float64 `yaml:"platform_width_min"`
	PlatformWidthMax float64 `yaml:"platform_width_max"`
	MinVerticalDelta float64 `yaml:"min_vertical_delta"`
	MaxAscend        float64 `yaml:"max_ascend"`
	MaxDescend       float64 `yaml:"max_descend"`

	PickupSlots []int `yaml:"pickup_slots"`
	EnemySlots  []int `yaml:"enemy_slots"`

	EnemySpeed         float64 `yaml:"enemy_speed"`
	EnemySpeedStep     float64 `yaml:"enemy_speed_step"`
	EnemyMaxSpeed      float64 `yaml:"enemy_max_speed"`
	EnemyInterval      float64 `yaml:"enemy_interval"`
	EnemyIntervalDecay float64 `yaml:"enemy_interval_decay"`

	BossBaseHP int `yaml:"boss_base_hp"`
	BossHPStep int `yaml:"boss_hp_step"`

	ExtraEnemiesPerLevel float64 `yaml:"extra_enemies_per_level"`
	MaxExtraEnemies      int     `yaml:"max_extra_enemies"`

	OscillationAmplitude float64 `yaml:"oscillation_amplitude"`
}

// Difficulty is the player-selected difficulty of a session.
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty converts user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e", "1":
		return DifficultyEasy, nil
	case "hard", "h", "2":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy or hard)", s)
	}
}

// Label returns the display name of the difficulty.
func (d Difficulty) Label() string {
	if d == DifficultyHard {
		return "Hard"
	}
	return "Easy"
}

// Profile returns the profile for the given difficulty.
// Anything other than hard resolves to easy.
func (c GameConfig) Profile(d Difficulty) DifficultyProfile {
	if d == DifficultyHard {
		return c.Difficulty.Hard
	}
	return c.Difficulty.Easy
}
