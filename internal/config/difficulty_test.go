package config

import "testing"

func TestDamagePerHit(t *testing.T) {
	cfg := DefaultGameConfig()
	easy, hard := cfg.Difficulty.Easy, cfg.Difficulty.Hard

	tests := []struct {
		name  string
		p     DifficultyProfile
		level int
		want  int
	}{
		{"easy level 1", easy, 1, 1},
		{"easy level 2", easy, 2, 2},
		{"easy level 5", easy, 5, 3},
		{"easy capped", easy, 30, 4},
		{"hard level 1", hard, 1, 1},
		{"hard level 4", hard, 4, 3},
		{"hard capped", hard, 30, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DamagePerHit(tt.p, tt.level); got != tt.want {
				t.Errorf("DamagePerHit(level %d) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestDamagePerHitMonotonicAndCapped(t *testing.T) {
	cfg := DefaultGameConfig()
	for _, d := range []Difficulty{DifficultyEasy, DifficultyHard} {
		p := cfg.Profile(d)
		prev := 0
		for level := 1; level <= 60; level++ {
			got := DamagePerHit(p, level)
			if got < prev {
				t.Fatalf("%s: damage dropped from %d to %d at level %d", d, prev, got, level)
			}
			if got < 1 || got > p.DamageCap {
				t.Fatalf("%s: damage %d outside [1, %d] at level %d", d, got, p.DamageCap, level)
			}
			prev = got
		}
	}
}

func TestKillPoints(t *testing.T) {
	cfg := DefaultGameConfig()
	tests := []struct {
		d     Difficulty
		level int
		want  int
	}{
		{DifficultyEasy, 1, 50},
		{DifficultyEasy, 2, 63}, // 62.5 rounds half away from zero
		{DifficultyEasy, 5, 100},
		{DifficultyHard, 1, 75},
		{DifficultyHard, 3, 113},
	}
	for _, tt := range tests {
		if got := KillPoints(cfg.Profile(tt.d), tt.level); got != tt.want {
			t.Errorf("KillPoints(%s, %d) = %d, want %d", tt.d, tt.level, got, tt.want)
		}
	}
}

func TestEnemyScaling(t *testing.T) {
	cfg := DefaultGameConfig()
	p := cfg.Difficulty.Easy

	if got := EnemySpeed(p, 1); got != 220 {
		t.Errorf("EnemySpeed(1) = %v, want 220", got)
	}
	if got := EnemySpeed(p, 3); got != 250 {
		t.Errorf("EnemySpeed(3) = %v, want 250", got)
	}
	if got := EnemySpeed(p, 100); got != p.EnemyMaxSpeed {
		t.Errorf("EnemySpeed(100) = %v, want cap %v", got, p.EnemyMaxSpeed)
	}
	if got := EnemyInterval(p, 1, 0.6); got != 1.6 {
		t.Errorf("EnemyInterval(1) = %v, want 1.6", got)
	}
	if got := EnemyInterval(p, 100, 0.6); got != 0.6 {
		t.Errorf("EnemyInterval(100) = %v, want floor 0.6", got)
	}
	if a, b := EnemyInterval(p, 2, 0.6), EnemyInterval(p, 3, 0.6); b >= a {
		t.Errorf("interval should shrink with level: %v then %v", a, b)
	}
}

func TestBossAndExtras(t *testing.T) {
	cfg := DefaultGameConfig()
	easy := cfg.Difficulty.Easy

	for level, want := range map[int]bool{1: false, 2: false, 3: true, 4: false, 6: true, 9: true} {
		if got := IsBossLevel(cfg.Level, level); got != want {
			t.Errorf("IsBossLevel(%d) = %v, want %v", level, got, want)
		}
	}

	// Level 3 easy: tier 1, damage 2 -> 3*2.
	if got := BossHP(easy, 3, 3, 2); got != 6 {
		t.Errorf("BossHP(level 3) = %d, want 6", got)
	}
	// Level 6 easy: tier 2 -> (3+1)*3.
	if got := BossHP(easy, 6, 3, 3); got != 12 {
		t.Errorf("BossHP(level 6) = %d, want 12", got)
	}

	if got := ExtraEnemies(easy, 1); got != 0 {
		t.Errorf("ExtraEnemies(1) = %d, want 0", got)
	}
	if got := ExtraEnemies(easy, 4); got != 1 {
		t.Errorf("ExtraEnemies(4) = %d, want 1", got)
	}
	if got := ExtraEnemies(easy, 50); got != easy.MaxExtraEnemies {
		t.Errorf("ExtraEnemies(50) = %d, want cap %d", got, easy.MaxExtraEnemies)
	}
}

func TestNewScaling(t *testing.T) {
	cfg := DefaultGameConfig()

	s := NewScaling(cfg, cfg.Difficulty.Easy, 1)
	if s.DamagePerHit != 1 || s.KillPoints != 50 || s.BossKillPoints != 200 {
		t.Errorf("level 1 easy scaling = %+v", s)
	}
	if s.BossHP != 0 {
		t.Errorf("level 1 should have no boss, BossHP = %d", s.BossHP)
	}
	if s.BulletDamage(false, 2) != 1 || s.BulletDamage(true, 2) != 2 {
		t.Error("bullet damage should double while boosted")
	}

	s = NewScaling(cfg, cfg.Difficulty.Hard, 3)
	if s.BossHP == 0 {
		t.Error("level 3 should have a boss")
	}
	if s.BossSpeed <= s.EnemySpeed {
		t.Errorf("boss speed %v should exceed enemy speed %v", s.BossSpeed, s.EnemySpeed)
	}

	if got := NewScaling(cfg, cfg.Difficulty.Easy, 0).Level; got != 1 {
		t.Errorf("level below 1 should clamp to 1, got %d", got)
	}
}
