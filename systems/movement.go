package systems

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
)

// slideSteerThreshold is the input magnitude below which a slide keeps
// going in the character's current forward direction.
const slideSteerThreshold = 0.1

// Mover is the motion-with-collision primitive. It applies one tick's
// displacement with collision resolution and reports the resulting
// grounded state; the controller treats it as opaque and authoritative.
type Mover interface {
	Move(obj *components.ObjectData, body *components.BodyData, height float64, disp mgl64.Vec3) bool
}

// MovementSystem integrates stance, input and gravity into one velocity
// vector per tick and hands the displacement to the mover. It runs after
// the stance system.
type MovementSystem struct {
	mover Mover
}

func NewMovementSystem(mover Mover) (*MovementSystem, error) {
	if mover == nil {
		return nil, errors.New("movement system: nil mover")
	}
	return &MovementSystem{mover: mover}, nil
}

func (s *MovementSystem) Update(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	components.Locomotion.Each(e.World, func(entry *donburi.Entry) {
		loc := components.Locomotion.Get(entry)
		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)
		col := components.Collider.Get(entry)
		input := components.PlayerInput.Get(entry)

		integrate(loc, body, moveInput{
			AxisX:    input.MoveX,
			AxisY:    input.MoveY,
			JumpEdge: input.Action(cfg.ActionJump).JustPressed,
		}, clock.Now, clock.DT)

		loc.Grounded = s.mover.Move(obj, body, col.Height, loc.Velocity.Mul(clock.DT))
	})
}

type moveInput struct {
	AxisX, AxisY float64
	JumpEdge     bool
}

// integrate computes this tick's velocity from the settled stance. The
// grounded rule branch only applies while not rising, so the tick a jump
// launches on already steers with airborne rules.
func integrate(loc *components.LocomotionData, body *components.BodyData, in moveInput, now, dt float64) {
	p := cfg.Player

	if loc.Grounded && loc.Velocity[1] <= 0 {
		loc.DoubleJumpReady = false
		loc.JumpLeniencyUntil = now + p.JumpLeniency

		speed := p.MoveSpeed
		switch {
		case loc.Sliding:
			speed = p.SlideSpeed
		case loc.Crouching:
			speed = p.CrouchSpeed
		}

		var dir mgl64.Vec3
		mag := math.Hypot(in.AxisX, in.AxisY)
		switch {
		case loc.Sliding && mag < slideSteerThreshold:
			// A slide with no steering input keeps going forward.
			dir = body.Forward()
		case mag > 0:
			dir = body.MoveWorld(in.AxisX/mag, in.AxisY/mag)
		}
		loc.Velocity[0] = dir[0] * speed
		loc.Velocity[2] = dir[2] * speed

		if in.JumpEdge {
			loc.Velocity[1] = p.JumpPower
			loc.DoubleJumpReady = true
		}
	} else {
		// Airborne steering is full strength but always at MoveSpeed;
		// crouch and slide are ground-only mechanics.
		ax, ay := in.AxisX, in.AxisY
		if mag := math.Hypot(ax, ay); mag > 1 {
			ax, ay = ax/mag, ay/mag
		}
		dir := body.MoveWorld(ax, ay)
		loc.Velocity[0] = dir[0] * p.MoveSpeed
		loc.Velocity[2] = dir[2] * p.MoveSpeed

		if in.JumpEdge {
			if now < loc.JumpLeniencyUntil {
				// Coyote jump: the character only just left the ground.
				loc.Velocity[1] = p.JumpPower
				loc.DoubleJumpReady = true
			} else if loc.DoubleJumpReady {
				loc.Velocity[1] = p.JumpPower
				loc.DoubleJumpReady = false
			}
		}
	}

	// Standing still must not accumulate fall speed on flat ground.
	if loc.Grounded && loc.Velocity[1] < 0 {
		loc.Velocity[1] = p.GroundStick
	}

	// The position lookback, not the velocity sign, classifies falling.
	gravity := p.Gravity * dt
	if body.Position.Y() < loc.PrevY {
		gravity *= p.FallingMultiplier
	}
	loc.Velocity[1] -= gravity

	loc.PrevY = body.Position.Y()
}

// Bounce overrides the vertical velocity for external trigger volumes such
// as springboards: JumpPower x heldMultiplier if jump is currently held,
// JumpPower x forceMultiplier otherwise. Horizontal velocity and stance
// are untouched.
func Bounce(entry *donburi.Entry, forceMultiplier, heldMultiplier float64) {
	loc := components.Locomotion.Get(entry)
	m := forceMultiplier
	if entry.HasComponent(components.PlayerInput) {
		if components.PlayerInput.Get(entry).Action(cfg.ActionJump).Pressed {
			m = heldMultiplier
		}
	}
	loc.Velocity[1] = cfg.Player.JumpPower * m
}

// ResetJumps revokes the double jump, for collaborators that should not
// grant a free extra jump.
func ResetJumps(entry *donburi.Entry) {
	components.Locomotion.Get(entry).DoubleJumpReady = false
}
