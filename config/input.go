package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionSlide
	ActionSensitivityDown
	ActionSensitivityUp
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// MouseSensitivityScale converts raw cursor-delta pixels into the
	// look-axis units fed to the yaw formula.
	MouseSensitivityScale float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		MouseSensitivityScale: 0.08,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
			},
			ActionCrouch: {
				Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
			},
			ActionSlide: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft},
			},
			ActionSensitivityDown: {
				Keys: []ebiten.Key{ebiten.KeyBracketLeft},
			},
			ActionSensitivityUp: {
				Keys: []ebiten.Key{ebiten.KeyBracketRight},
			},
		},
	}
}
