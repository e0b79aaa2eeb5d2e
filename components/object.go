package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the character's footprint in the XZ collision space.
// resolv's Y axis maps to world Z; the object is a square of side 2*radius
// centered on the body position.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
