package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// LocomotionData is the controller-owned movement state. It is mutated only
// by the stance and movement systems; collaborators such as bounce pads go
// through systems.Bounce / systems.ResetJumps.
type LocomotionData struct {
	// Velocity persists across ticks. The Y component carries jump and
	// gravity; X and Z are overwritten from input every tick.
	Velocity mgl64.Vec3

	// Stance. Sliding implies Crouching at every observation point.
	Crouching bool
	Sliding   bool

	SlideEndsAt      float64 // seconds since session start
	LastSlideEndedAt float64

	JumpLeniencyUntil float64
	DoubleJumpReady   bool

	// PrevY is last tick's feet height, used to classify the falling phase.
	PrevY float64

	// Grounded is read back from the collision mover each tick.
	Grounded bool
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
