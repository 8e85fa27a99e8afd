package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/donut-dash/internal/core"
)

// Hold windows for movement keys. Terminals report key repeats but never
// releases, so a movement key counts as held until no repeat has arrived
// for the window. The first press waits out the keyboard's repeat delay.
const (
	DefaultInitialHold = 500 * time.Millisecond
	DefaultRepeatHold  = 150 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "up", "w":
		return core.ActionJump, false
	case "f", "x":
		return core.ActionShoot, false
	case "esc", "p":
		return core.ActionPause, false
	case "r":
		return core.ActionReset, false
	case "enter":
		return core.ActionConfirm, false
	case "1", "e":
		return core.ActionEasy, false
	case "2", "h":
		return core.ActionHard, false
	}
	return core.ActionNone, false
}

// isHeld reports whether an action is continuous rather than a tap.
func isHeld(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// KeyState feeds terminal key messages into a core.Input, synthesizing
// releases. Movement keys are held for a window after each message;
// every other action is a tap released after one frame.
type KeyState struct {
	Input       *core.Input
	InitialHold time.Duration
	RepeatHold  time.Duration

	mapper  *KeyMapper
	expires map[core.Action]time.Time
	taps    []core.Action
}

// NewKeyState creates a key state with the default hold windows.
func NewKeyState(in *core.Input) *KeyState {
	return &KeyState{
		Input:       in,
		InitialHold: DefaultInitialHold,
		RepeatHold:  DefaultRepeatHold,
		mapper:      NewKeyMapper(),
		expires:     make(map[core.Action]time.Time),
	}
}

// HandleKey records a key message received at now. It returns the mapped
// action and whether it was a quit request.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, now time.Time) (core.Action, bool) {
	action, isQuit := ks.mapper.MapKey(msg)
	if isQuit || action == core.ActionNone {
		return action, isQuit
	}

	if !isHeld(action) {
		ks.Input.Press(action)
		ks.taps = append(ks.taps, action)
		return action, false
	}

	hold := ks.RepeatHold
	if !ks.Input.IsDown(action) {
		hold = ks.InitialHold
		// Reversing direction drops the opposite key immediately.
		opposite := core.ActionLeft
		if action == core.ActionLeft {
			opposite = core.ActionRight
		}
		ks.Input.Release(opposite)
		delete(ks.expires, opposite)
	}
	ks.Input.Press(action)
	ks.expires[action] = now.Add(hold)
	return action, false
}

// EndFrame runs after the simulation consumed the frame: taps are released
// and held keys whose window has passed are let go.
func (ks *KeyState) EndFrame(now time.Time) {
	for _, a := range ks.taps {
		ks.Input.Release(a)
	}
	ks.taps = ks.taps[:0]

	for a, until := range ks.expires {
		if !now.Before(until) {
			ks.Input.Release(a)
			delete(ks.expires, a)
		}
	}
}
