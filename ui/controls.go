package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
)

// KeyDown reports whether a raylib key is held.
type KeyDown func(key int32) bool

// Key bindings. Each direction accepts WASD and the arrow keys.
var (
	upKeys    = []int32{rl.KeyW, rl.KeyUp}
	downKeys  = []int32{rl.KeyS, rl.KeyDown}
	leftKeys  = []int32{rl.KeyA, rl.KeyLeft}
	rightKeys = []int32{rl.KeyD, rl.KeyRight}
)

// ControlsHelp is the legend shown while playing.
const ControlsHelp = "WASD/Arrows: move | Space: split | P: perf | Esc: quit"

// IntentFrom maps held keys to a movement intent.
func IntentFrom(down KeyDown) game.Intent {
	held := func(keys []int32) bool {
		for _, k := range keys {
			if down(k) {
				return true
			}
		}
		return false
	}
	return game.Intent{
		Up:    held(upKeys),
		Down:  held(downKeys),
		Left:  held(leftKeys),
		Right: held(rightKeys),
	}
}

// ReadIntent samples the keyboard.
func ReadIntent() game.Intent {
	return IntentFrom(rl.IsKeyDown)
}

// SplitPressed reports whether the split key went down this frame.
func SplitPressed() bool {
	return rl.IsKeyPressed(rl.KeySpace)
}

// StartPressed reports whether the keyboard shortcut for Start went down this frame.
func StartPressed() bool {
	return rl.IsKeyPressed(rl.KeyEnter)
}

// PerfTogglePressed reports whether the perf panel key went down this frame.
func PerfTogglePressed() bool {
	return rl.IsKeyPressed(rl.KeyP)
}
