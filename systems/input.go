package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
)

// cursor position from the previous tick, for mouse look deltas
var (
	lastCursorX, lastCursorY int
	cursorPrimed             bool
)

// UpdateInput polls raw input into the PlayerInput component.
// Must run BEFORE the locomotion systems in the system order.
func UpdateInput(e *ecs.ECS) {
	cx, cy := ebiten.CursorPosition()
	dx, dy := 0, 0
	if cursorPrimed {
		dx = cx - lastCursorX
		dy = cy - lastCursorY
	}
	lastCursorX, lastCursorY = cx, cy
	cursorPrimed = true

	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)

		// Swap buffers: current becomes previous, then re-poll
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}
		}

		input.MoveX, input.MoveY = 0, 0
		if input.Current[cfg.ActionMoveRight] {
			input.MoveX += 1
		}
		if input.Current[cfg.ActionMoveLeft] {
			input.MoveX -= 1
		}
		if input.Current[cfg.ActionMoveForward] {
			input.MoveY += 1
		}
		if input.Current[cfg.ActionMoveBack] {
			input.MoveY -= 1
		}

		input.LookX = float64(dx) * cfg.Input.MouseSensitivityScale
		input.LookY = float64(dy) * cfg.Input.MouseSensitivityScale
	})
}
