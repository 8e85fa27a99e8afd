package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/donut-dash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"f", runeKey('f'), core.ActionShoot, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionReset, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"1", runeKey('1'), core.ActionEasy, false},
		{"h", runeKey('h'), core.ActionHard, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestKeyStateHoldWindow(t *testing.T) {
	in := core.NewInput()
	ks := NewKeyState(in)
	t0 := time.Unix(1000, 0)

	ks.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, t0)
	if !in.WasPressed(core.ActionRight) || !in.IsDown(core.ActionRight) {
		t.Fatal("first press not recorded")
	}
	in.BeginFrame()

	// Still held inside the initial window.
	ks.EndFrame(t0.Add(DefaultInitialHold - time.Millisecond))
	if !in.IsDown(core.ActionRight) {
		t.Fatal("released before the initial hold elapsed")
	}

	// A repeat extends the hold by the shorter window without a new edge.
	repeat := t0.Add(DefaultInitialHold - time.Millisecond)
	ks.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, repeat)
	if in.WasPressed(core.ActionRight) {
		t.Fatal("key repeat produced a new edge")
	}
	ks.EndFrame(repeat.Add(DefaultRepeatHold - time.Millisecond))
	if !in.IsDown(core.ActionRight) {
		t.Fatal("released inside the repeat window")
	}
	ks.EndFrame(repeat.Add(DefaultRepeatHold))
	if in.IsDown(core.ActionRight) {
		t.Fatal("still held after the repeat window")
	}
}

func TestKeyStateReverseDirection(t *testing.T) {
	in := core.NewInput()
	ks := NewKeyState(in)
	now := time.Unix(1000, 0)

	ks.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, now)
	ks.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, now.Add(10*time.Millisecond))
	if in.IsDown(core.ActionLeft) || !in.IsDown(core.ActionRight) {
		t.Fatal("opposite direction still held")
	}
}

func TestKeyStateTapsReleaseAfterFrame(t *testing.T) {
	in := core.NewInput()
	ks := NewKeyState(in)
	now := time.Unix(1000, 0)

	for i := 0; i < 2; i++ {
		ks.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, now)
		if !in.WasPressed(core.ActionJump) {
			t.Fatalf("tap %d produced no edge", i)
		}
		in.BeginFrame()
		ks.EndFrame(now)
		if in.IsDown(core.ActionJump) {
			t.Fatalf("tap %d still held after the frame", i)
		}
	}
}
