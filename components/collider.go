package components

import "github.com/yohamta/donburi"

// ColliderData holds the continuously smoothed capsule presentation values.
// CenterY is recomputed from Height every tick so the feet stay anchored
// while only the top of the capsule moves.
type ColliderData struct {
	Height  float64
	CenterY float64 // offset from the feet up to the capsule center
}

var Collider = donburi.NewComponentType[ColliderData]()
