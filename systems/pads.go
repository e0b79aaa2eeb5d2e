package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	"github.com/automoto/strafe/tags"
)

// UpdatePads launches grounded players whose footprint overlaps a bounce
// pad. Pads act only through the public Bounce/ResetJumps operations.
func UpdatePads(e *ecs.ECS) {
	components.Locomotion.Each(e.World, func(entry *donburi.Entry) {
		loc := components.Locomotion.Get(entry)
		if !loc.Grounded {
			return
		}
		obj := components.Object.Get(entry)
		check := obj.Check(0, 0, tags.ResolvPad)
		if check == nil {
			return
		}
		for _, o := range check.Objects {
			pad, ok := o.Data.(*components.PadData)
			if !ok {
				continue
			}
			Bounce(entry, pad.ForceMultiplier, pad.HeldMultiplier)
			if pad.ResetJumps {
				ResetJumps(entry)
			}
			return
		}
	})
}
