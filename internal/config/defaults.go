package config

import (
	_ "embed"
)

//go:embed defaults/donutdash.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in Donut Dash tuning.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:      960,
			Height:     540,
			MaxFrameDT: 0.05,
		},
		Player: PlayerConfig{
			Width:           28,
			Height:          40,
			Speed:           180,
			JumpImpulse:     -400,
			Gravity:         1000,
			MaxFallSpeed:    600,
			AirJumps:        1,
			BoostMultiplier: 1.4,
			SpawnX:          20,
			SpawnOffsetY:    80,
		},
		Enemy: EnemyConfig{
			Width:           30,
			Height:          30,
			Jitter:          0.25,
			MinInterval:     0.6,
			MaxInterval:     2.5,
			ShotOffsetY:     4,
			BossWidth:       50,
			BossHeight:      50,
			BossInterval:    1.0,
			BossFanSpeed:    140,
			BossFanOffsetY:  10,
			BossSpeedFactor: 1.15,
		},
		Projectile: ProjectileConfig{
			Width:      10,
			Height:     10,
			CullMargin: 50,
		},
		Bullet: BulletConfig{
			Width:  8,
			Height: 4,
			Speed:  520,
		},
		Pickup: PickupConfig{
			Radius:            10,
			Lift:              20,
			SpeedBoost:        3,
			DamageBoost:       6,
			DamageBoostFactor: 2,
			Points:            10,
		},
		Level: LevelConfig{
			GroundHeight:       30,
			PlatformHeight:     14,
			SpanLeft:           120,
			SpanRightMargin:    160,
			BandTop:            120,
			BandBottomOffset:   90,
			XJitter:            12,
			AscendBias:         0.7,
			OscillateFromLevel: 2,
			OscillationSpeed:   1.5,
			BossEvery:          3,
			GoalWidth:          40,
			GoalHeight:         24,
		},
		Difficulty: DifficultySet{
			Easy: DifficultyProfile{
				MaxHearts:            5,
				InvulnWindow:         1.0,
				DamageFactor:         1.25,
				DamageCap:            4,
				KillPoints:           50,
				KillPointsGrowth:     0.25,
				BossKillMultiplier:   4,
				PlatformCount:        5,
				PlatformWidthMin:     100,
				PlatformWidthMax:     140,
				MinVerticalDelta:     40,
				MaxAscend:            100,
				MaxDescend:           140,
				PickupSlots:          []int{0, 2, 4},
				EnemySlots:           []int{1, 3},
				EnemySpeed:           220,
				EnemySpeedStep:       15,
				EnemyMaxSpeed:        360,
				EnemyInterval:        1.6,
				EnemyIntervalDecay:   0.93,
				BossBaseHP:           3,
				BossHPStep:           1,
				ExtraEnemiesPerLevel: 0.5,
				MaxExtraEnemies:      3,
				OscillationAmplitude: 30,
			},
			Hard: DifficultyProfile{
				MaxHearts:            3,
				InvulnWindow:         0.55,
				DamageFactor:         1.4,
				DamageCap:            6,
				KillPoints:           75,
				KillPointsGrowth:     0.25,
				BossKillMultiplier:   4,
				PlatformCount:        4,
				PlatformWidthMin:     80,
				PlatformWidthMax:     110,
				MinVerticalDelta:     55,
				MaxAscend:            110,
				MaxDescend:           140,
				PickupSlots:          []int{0, 2},
				EnemySlots:           []int{1, 3},
				EnemySpeed:           260,
				EnemySpeedStep:       20,
				EnemyMaxSpeed:        420,
				EnemyInterval:        1.3,
				EnemyIntervalDecay:   0.9,
				BossBaseHP:           4,
				BossHPStep:           2,
				ExtraEnemiesPerLevel: 0.75,
				MaxExtraEnemies:      4,
				OscillationAmplitude: 45,
			},
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
