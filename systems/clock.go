package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
)

// UpdateClock advances the simulation time singleton by one fixed tick.
// Must run before every other system.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Now += clock.DT
}
