package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/donut-dash/internal/core"
)

// bindings maps each action to the keys that trigger it.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionShoot:   {ebiten.KeyF, ebiten.KeyX},
	core.ActionPause:   {ebiten.KeyEscape, ebiten.KeyP},
	core.ActionReset:   {ebiten.KeyR},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionEasy:    {ebiten.KeyDigit1, ebiten.KeyE},
	core.ActionHard:    {ebiten.KeyDigit2, ebiten.KeyH},
	core.ActionQuit:    {ebiten.KeyQ},
}

// KeySource reports whether a key is held. ebiten.IsKeyPressed satisfies it.
type KeySource func(ebiten.Key) bool

// PollInput mirrors the keyboard into in. Down transitions produce edges
// through in.Press; keys no longer held are released.
func PollInput(in *core.Input, pressed KeySource) {
	for action, keys := range bindings {
		down := false
		for _, k := range keys {
			if pressed(k) {
				down = true
				break
			}
		}
		if down {
			in.Press(action)
		} else {
			in.Release(action)
		}
	}
}
