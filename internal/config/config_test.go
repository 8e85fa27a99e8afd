package config

import (
	"reflect"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"EASY", DifficultyEasy, false},
		{" e ", DifficultyEasy, false},
		{"1", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"H", DifficultyHard, false},
		{"2", DifficultyHard, false},
		{"nightmare", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProfileSelection(t *testing.T) {
	cfg := DefaultGameConfig()

	if got := cfg.Profile(DifficultyHard).MaxHearts; got != 3 {
		t.Errorf("hard MaxHearts = %d, want 3", got)
	}
	if got := cfg.Profile(DifficultyEasy).MaxHearts; got != 5 {
		t.Errorf("easy MaxHearts = %d, want 5", got)
	}
	if got := cfg.Profile("").MaxHearts; got != 5 {
		t.Errorf("unknown difficulty MaxHearts = %d, want easy's 5", got)
	}
	if DifficultyHard.Label() != "Hard" || DifficultyEasy.Label() != "Easy" {
		t.Error("unexpected difficulty labels")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML and DefaultGameConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultGameConfig())
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := Validate(DefaultGameConfig()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero world", func(c *GameConfig) { c.World.Width = 0 }},
		{"band too narrow", func(c *GameConfig) {
			c.Level.BandTop = 300
			c.Level.BandBottomOffset = 200 // band [300, 340]
		}},
		{"delta above ascend", func(c *GameConfig) { c.Difficulty.Hard.MaxAscend = 20 }},
		{"slot out of range", func(c *GameConfig) { c.Difficulty.Easy.PickupSlots = []int{0, 5} }},
		{"no hearts", func(c *GameConfig) { c.Difficulty.Easy.MaxHearts = 0 }},
		{"upward gravity", func(c *GameConfig) { c.Player.JumpImpulse = 400 }},
		{"ground far below band", func(c *GameConfig) { c.Level.BandBottomOffset = 300 }},
		{"inverted intervals", func(c *GameConfig) { c.Enemy.MaxInterval = 0.1 }},
		{"goal platform too narrow", func(c *GameConfig) { c.Difficulty.Hard.PlatformWidthMin = 60 }},
		{"no room for boss", func(c *GameConfig) { c.Level.BandTop = 60 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
