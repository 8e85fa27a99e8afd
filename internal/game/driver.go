package game

import "github.com/vovakirdan/donut-dash/internal/core"

// DefaultMaxStep caps a single update so slow frames cannot tunnel
// entities through platforms.
const DefaultMaxStep = 0.05

// Driver runs one frame at a time: update with a clamped dt, then clear
// the input edge set. Drawing is separate so front ends can render at
// their own cadence.
type Driver struct {
	Session *Session
	Input   *core.Input
	MaxStep float64
}

// NewDriver creates a driver using the session's configured frame cap.
func NewDriver(s *Session, in *core.Input) *Driver {
	maxStep := s.Config().World.MaxFrameDT
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Driver{Session: s, Input: in, MaxStep: maxStep}
}

// Step advances the session by dt seconds, clamped to [0, MaxStep].
func (d *Driver) Step(dt float64) {
	d.Session.Update(core.ClampF(dt, 0, d.MaxStep), d.Input)
	d.Input.BeginFrame()
}

// Draw renders the session onto surf.
func (d *Driver) Draw(surf core.Surface) {
	d.Session.Draw(surf)
}
