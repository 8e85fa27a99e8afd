package game

import (
	"math"

	"github.com/vovakirdan/donut-dash/internal/core"
)

// Axis selects the direction of a platform's oscillation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Oscillation moves a platform along Axis as origin + sin(t*Speed+Phase)*Amplitude.
type Oscillation struct {
	Axis      Axis
	Amplitude float64
	Speed     float64 // rad/s
	Phase     float64
}

// Platform is a solid rectangle, optionally oscillating.
type Platform struct {
	X, Y, W, H float64
	Ground     bool
	Osc        *Oscillation

	originX, originY float64
	time             float64

	// DX and DY hold the displacement of the last update.
	DX, DY float64
}

// NewPlatform creates a static platform.
func NewPlatform(x, y, w, h float64) *Platform {
	return &Platform{X: x, Y: y, W: w, H: h, originX: x, originY: y}
}

// Oscillate attaches an oscillation centered on the platform's current
// position and moves the platform to its phase-zero point.
func (p *Platform) Oscillate(o Oscillation) {
	p.originX, p.originY = p.X, p.Y
	p.time = 0
	p.Osc = &o
	s := math.Sin(o.Phase) * o.Amplitude
	switch o.Axis {
	case AxisX:
		p.X = p.originX + s
	case AxisY:
		p.Y = p.originY + s
	}
}

// Rect returns the platform's current rectangle.
func (p *Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Origin returns the resting position the oscillation is centered on.
func (p *Platform) Origin() (float64, float64) {
	return p.originX, p.originY
}

// Update advances the oscillation and records this frame's displacement.
func (p *Platform) Update(dt float64) {
	lastX, lastY := p.X, p.Y
	if p.Osc != nil {
		p.time += dt
		s := math.Sin(p.time*p.Osc.Speed+p.Osc.Phase) * p.Osc.Amplitude
		switch p.Osc.Axis {
		case AxisX:
			p.X = p.originX + s
		case AxisY:
			p.Y = p.originY + s
		}
	}
	p.DX = p.X - lastX
	p.DY = p.Y - lastY
}

// Moved reports whether the platform moved during the last update.
func (p *Platform) Moved() bool {
	return p.DX != 0 || p.DY != 0
}
