package components

import (
	cfg "github.com/automoto/strafe/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// PlayerInputData stores the current and previous tick's pressed state for
// all actions plus the analog axes. JustPressed/JustReleased are computed
// on demand by comparing ticks, so edge signals fire for exactly one
// queried tick per physical press.
type PlayerInputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Move axis: X strafe, Y forward, each in [-1, 1].
	MoveX float64
	MoveY float64

	// Look axis deltas for this tick. Only X drives yaw.
	LookX float64
	LookY float64
}

// Action returns the full ActionState for an action ID.
func (in *PlayerInputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
