package game

import (
	"testing"

	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
)

func TestDriverClampsStep(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"normal frame", 0.016, 0.016},
		{"slow frame", 0.5, 0.05},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			s.Start(config.DifficultyEasy)
			d := NewDriver(s, core.NewInput())
			d.Step(tt.dt)
			if got := s.Elapsed(); got != tt.want {
				t.Fatalf("Elapsed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDriverClearsEdges(t *testing.T) {
	s := newTestSession()
	s.Start(config.DifficultyEasy)
	in := core.NewInput()
	d := NewDriver(s, in)

	in.Press(core.ActionPause)
	d.Step(0.016)
	if s.State() != StatePaused {
		t.Fatalf("state = %s, want paused", s.State())
	}
	if in.WasPressed(core.ActionPause) {
		t.Fatal("edge survived the frame")
	}
	if !in.IsDown(core.ActionPause) {
		t.Fatal("held key released by the frame boundary")
	}

	// A held key does not toggle again.
	d.Step(0.016)
	if s.State() != StatePaused {
		t.Fatalf("held pause toggled the state to %s", s.State())
	}
}

func TestDriverDefaultsMaxStep(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.World.MaxFrameDT = 0
	s := NewSession(cfg, WithSeed(1))
	if d := NewDriver(s, core.NewInput()); d.MaxStep != DefaultMaxStep {
		t.Fatalf("MaxStep = %v, want %v", d.MaxStep, DefaultMaxStep)
	}
}
