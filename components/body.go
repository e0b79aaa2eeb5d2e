package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BodyData is the character's place in the world: feet position and facing.
// Y is up; yaw rotates about the Y axis, zero facing +Z.
type BodyData struct {
	Position mgl64.Vec3 // capsule bottom center
	Yaw      float64    // radians
}

// Forward returns the horizontal facing direction.
func (b *BodyData) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(b.Yaw), 0, math.Cos(b.Yaw)}
}

// Right returns the horizontal direction 90 degrees clockwise of Forward.
func (b *BodyData) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(b.Yaw), 0, -math.Sin(b.Yaw)}
}

// MoveWorld transforms a local move axis (x strafe, y forward) into a world
// space horizontal direction using the current facing.
func (b *BodyData) MoveWorld(axisX, axisY float64) mgl64.Vec3 {
	f := b.Forward()
	r := b.Right()
	return mgl64.Vec3{
		r[0]*axisX + f[0]*axisY,
		0,
		r[2]*axisX + f[2]*axisY,
	}
}

var Body = donburi.NewComponentType[BodyData]()
