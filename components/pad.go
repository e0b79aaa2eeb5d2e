package components

import "github.com/yohamta/donburi"

// PadData is a bounce pad trigger volume. When the player's footprint
// overlaps it while grounded, the pad launches them through the public
// bounce operation instead of touching locomotion state directly.
type PadData struct {
	ForceMultiplier float64 // applied when jump is not held
	HeldMultiplier  float64 // applied when jump is held
	ResetJumps      bool    // pads that should not grant a free double jump
}

var Pad = donburi.NewComponentType[PadData]()
