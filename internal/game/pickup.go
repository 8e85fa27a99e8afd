package game

import "github.com/vovakirdan/donut-dash/internal/core"

// PickupKind selects a donut's effect.
type PickupKind int

const (
	PickupSpeed PickupKind = iota
	PickupLife
	PickupDamage

	pickupKinds = 3
)

func (k PickupKind) String() string {
	switch k {
	case PickupSpeed:
		return "speed"
	case PickupLife:
		return "life"
	case PickupDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// Pickup is a collectible donut.
type Pickup struct {
	X, Y   float64 // Center
	Radius float64
	Kind   PickupKind
	Dead   bool

	// Host is the platform the donut hovers over; it follows the
	// platform's displacement.
	Host *Platform
}

// NewPickup creates a donut centered at (x, y).
func NewPickup(x, y, radius float64, kind PickupKind) *Pickup {
	return &Pickup{X: x, Y: y, Radius: radius, Kind: kind}
}

// Rect returns the donut's bounding square.
func (p *Pickup) Rect() core.Rect {
	return core.NewRect(p.X-p.Radius, p.Y-p.Radius, p.Radius*2, p.Radius*2)
}

// Update moves the donut with its host and collects it on first contact
// with the player. Hosts must be updated first in the frame.
func (p *Pickup) Update(ctx Context) {
	if p.Host != nil {
		p.X += p.Host.DX
		p.Y += p.Host.DY
	}
	if p.Dead || !p.Rect().Overlaps(ctx.PlayerRect()) {
		return
	}
	ctx.ApplyPickup(p.Kind)
	p.Dead = true
}
