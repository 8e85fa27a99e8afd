package game

import "github.com/vovakirdan/donut-dash/internal/core"

// Context is the slice of session state an entity may read or change
// during its own update. Entities never hold a reference to the session.
type Context interface {
	// Running reports whether the session is in the running state.
	Running() bool
	Bounds() core.Bounds
	Rand() Rand

	// PlayerRect returns the player's current hitbox.
	PlayerRect() core.Rect
	// HurtPlayer applies the damage contract and triggers a loss when
	// the last heart is gone. It reports whether a heart was taken.
	HurtPlayer() bool

	// Enemies returns the live enemy list; entries may be dead until purged.
	Enemies() []*Enemy
	SpawnProjectile(x, y, vx, vy float64)
	// AwardKill adds kill points for the given tier.
	AwardKill(boss bool)
	// ApplyPickup applies a collected donut's effect and points.
	ApplyPickup(kind PickupKind)
}
