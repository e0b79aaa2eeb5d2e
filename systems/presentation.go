package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
)

// UpdatePresentation eases the collider height and the camera's vertical
// offset toward the stance targets, and rolls the camera while sliding.
// Values approach asymptotically; they are never snapped after spawn.
// Runs after the movement system so it sees this tick's settled stance.
func UpdatePresentation(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(clockEntry).DT
	p := cfg.Player

	t := p.SmoothRate * dt
	if t > 1 {
		t = 1
	}

	components.Collider.Each(e.World, func(entry *donburi.Entry) {
		loc := components.Locomotion.Get(entry)
		col := components.Collider.Get(entry)
		cam := components.EyeCamera.Get(entry)

		heightTarget := p.StandingHeight
		camTarget := p.CameraStandingY
		if loc.Crouching {
			heightTarget = p.CrouchHeight
			camTarget = p.CameraCrouchingY
		}

		col.Height += (heightTarget - col.Height) * t
		// Feet stay anchored; only the top of the capsule moves.
		col.CenterY = col.Height / 2

		cam.LocalY += (camTarget - cam.LocalY) * t

		if loc.Sliding != cam.WasSliding {
			rollTarget := 0.0
			if loc.Sliding {
				rollTarget = p.SlideRollRadians
			}
			cam.RollTween = gween.New(float32(cam.Roll), float32(rollTarget), float32(p.SlideRollTime), ease.OutQuad)
			cam.WasSliding = loc.Sliding
		}
		if cam.RollTween != nil {
			v, done := cam.RollTween.Update(float32(dt))
			cam.Roll = float64(v)
			if done {
				cam.RollTween = nil
			}
		}
	})
}
