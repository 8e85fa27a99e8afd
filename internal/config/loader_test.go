package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("player:\n  speed: 240\ndifficulty:\n  hard:\n    max_hearts: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.Speed != 240 {
		t.Errorf("Player.Speed = %v, want 240", cfg.Player.Speed)
	}
	if cfg.Difficulty.Hard.MaxHearts != 2 {
		t.Errorf("hard MaxHearts = %d, want 2", cfg.Difficulty.Hard.MaxHearts)
	}
	// Untouched keys keep defaults.
	if cfg.Player.Gravity != 1000 {
		t.Errorf("Player.Gravity = %v, want default 1000", cfg.Player.Gravity)
	}
	if cfg.Difficulty.Hard.InvulnWindow != 0.55 {
		t.Errorf("hard InvulnWindow = %v, want default 0.55", cfg.Difficulty.Hard.InvulnWindow)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  width: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 960 {
		t.Errorf("embedded World.Width = %v, want 960", cfg.World.Width)
	}

	// Local ./configs beats embedded.
	writeFile(t, filepath.Join(work, "configs", FileName), "world:\n  width: 800\n")
	cfg, _ = Load("")
	if cfg.World.Width != 800 {
		t.Errorf("local World.Width = %v, want 800", cfg.World.Width)
	}

	// User directory beats local.
	writeFile(t, filepath.Join(home, ".donutdash", "configs", FileName), "world:\n  width: 1024\n")
	cfg, _ = Load("")
	if cfg.World.Width != 1024 {
		t.Errorf("user World.Width = %v, want 1024", cfg.World.Width)
	}

	// An invalid user file is skipped in favour of the next location.
	writeFile(t, filepath.Join(home, ".donutdash", "configs", FileName), "world: {width: 0}\n")
	cfg, _ = Load("")
	if cfg.World.Width != 800 {
		t.Errorf("after invalid user file World.Width = %v, want 800", cfg.World.Width)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/.donutdash/scores.db"); got != filepath.Join(home, ".donutdash", "scores.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := HomeDir(); got != filepath.Join(home, ".donutdash") {
		t.Errorf("HomeDir = %q", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
