package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EyeCameraData is the first-person camera attachment: a smoothed vertical
// offset above the feet plus a slide roll driven by a tween.
type EyeCameraData struct {
	LocalY float64
	Roll   float64 // radians

	RollTween  *gween.Tween // nil when the roll is at rest
	WasSliding bool         // last stance observed by the presentation system
}

var EyeCamera = donburi.NewComponentType[EyeCameraData]()
