package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionJump           // Space, Up - jump / double jump
	ActionShoot          // F, X - fire a bullet
	ActionPause          // Escape, P - pause/unpause
	ActionReset          // R - regenerate the current level
	ActionConfirm        // Enter - advance after a win, restart after a loss
	ActionEasy           // 1, E - select easy difficulty
	ActionHard           // 2, H - select hard difficulty
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionConfirm:
		return "Confirm"
	case ActionEasy:
		return "Easy"
	case ActionHard:
		return "Hard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is a per-frame input snapshot.
//
// IsDown is level-triggered: true for as long as an action is held.
// WasPressed is edge-triggered: true only during the frame in which the
// action went from up to down. BeginFrame clears the edge set and must run
// exactly once per frame, after every consumer has read it.
type Input struct {
	down    map[Action]bool
	pressed map[Action]bool
}

// NewInput creates an empty input snapshot.
func NewInput() *Input {
	return &Input{
		down:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Press records a down transition. Repeated presses while already held
// do not generate a new edge.
func (in *Input) Press(a Action) {
	if a == ActionNone {
		return
	}
	if !in.down[a] {
		in.pressed[a] = true
	}
	in.down[a] = true
}

// Release records an up transition.
func (in *Input) Release(a Action) {
	delete(in.down, a)
}

// IsDown returns true while the action is held.
func (in *Input) IsDown(a Action) bool {
	return in.down[a]
}

// WasPressed returns true only on the frame the action was pressed.
func (in *Input) WasPressed(a Action) bool {
	return in.pressed[a]
}

// BeginFrame clears edge-triggered presses for the next frame.
func (in *Input) BeginFrame() {
	for k := range in.pressed {
		delete(in.pressed, k)
	}
}

// ReleaseAll drops every held action, e.g. when a window loses focus.
func (in *Input) ReleaseAll() {
	for k := range in.down {
		delete(in.down, k)
	}
}
