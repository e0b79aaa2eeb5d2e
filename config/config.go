package config

import (
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// LocomotionConfig contains all character movement tuning values.
// Set once in init(); read-only afterwards.
type LocomotionConfig struct {
	// Capsule dimensions (meters)
	StandingHeight float64
	CrouchHeight   float64
	Radius         float64

	// Speeds (meters/second)
	MoveSpeed   float64
	CrouchSpeed float64
	SlideSpeed  float64

	// Slide mechanics (seconds)
	SlideDuration float64
	SlideCooldown float64

	// Camera offsets above the feet (meters)
	CameraStandingY  float64
	CameraCrouchingY float64

	// Camera roll while sliding
	SlideRollRadians float64
	SlideRollTime    float64 // seconds to ease the roll in or out

	// Exponential smoothing rate for collider height and camera offset
	SmoothRate float64 // per second

	// Jumping
	JumpPower    float64 // initial vertical velocity (m/s)
	JumpLeniency float64 // coyote window after leaving the ground (seconds)

	// Gravity
	Gravity           float64 // m/s^2, positive down
	FallingMultiplier float64 // applied while vertical position is decreasing

	// GroundStick clamps negative vertical velocity while grounded so a
	// standing character does not accumulate fall speed on flat ground.
	GroundStick float64

	// Look
	LookSpeed float64 // radians per look-axis unit per second
}

// Validate rejects tuning values that would produce a broken character.
func (c LocomotionConfig) Validate() error {
	if c.CrouchHeight <= 0 || c.CrouchHeight >= c.StandingHeight {
		return fmt.Errorf("crouch height %.2f must be in (0, %.2f)", c.CrouchHeight, c.StandingHeight)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("capsule radius %.2f must be positive", c.Radius)
	}
	if c.MoveSpeed <= 0 || c.CrouchSpeed <= 0 || c.SlideSpeed <= 0 {
		return fmt.Errorf("speeds must be positive (move %.2f, crouch %.2f, slide %.2f)",
			c.MoveSpeed, c.CrouchSpeed, c.SlideSpeed)
	}
	if c.SlideDuration <= 0 || c.SlideCooldown < 0 {
		return fmt.Errorf("slide duration %.2f must be positive and cooldown %.2f non-negative",
			c.SlideDuration, c.SlideCooldown)
	}
	if c.CameraCrouchingY >= c.CameraStandingY {
		return fmt.Errorf("crouching camera height %.2f must be below standing %.2f",
			c.CameraCrouchingY, c.CameraStandingY)
	}
	if c.SmoothRate <= 0 {
		return fmt.Errorf("smooth rate %.2f must be positive", c.SmoothRate)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity %.2f must be positive", c.Gravity)
	}
	if c.FallingMultiplier < 1 {
		return fmt.Errorf("falling multiplier %.2f must be at least 1", c.FallingMultiplier)
	}
	if c.JumpLeniency < 0 {
		return fmt.Errorf("jump leniency %.2f must be non-negative", c.JumpLeniency)
	}
	return nil
}

// ViewConfig contains top-down debug view tuning.
type ViewConfig struct {
	PixelsPerMeter float64
	FacingLineLen  float64 // meters
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player LocomotionConfig
var View ViewConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		Title:  "strafe",
	}

	Player = LocomotionConfig{
		StandingHeight: 1.8,
		CrouchHeight:   0.9,
		Radius:         0.35,

		MoveSpeed:   8.0,
		CrouchSpeed: 3.5,
		SlideSpeed:  12.0,

		SlideDuration: 0.8,
		SlideCooldown: 1.5,

		CameraStandingY:  1.6,
		CameraCrouchingY: 0.75,

		// ~12 degrees, eased over a tenth of a second
		SlideRollRadians: 0.21,
		SlideRollTime:    0.12,

		SmoothRate: 12.0,

		JumpPower:    7.5,
		JumpLeniency: 0.2,

		Gravity:           20.0,
		FallingMultiplier: 2.5,
		GroundStick:       -2.0,

		LookSpeed: 0.22,
	}

	View = ViewConfig{
		PixelsPerMeter: 24.0,
		FacingLineLen:  1.2,
	}
}
