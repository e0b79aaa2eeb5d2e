package config

import "testing"

func TestDefaultsValidate(t *testing.T) {
	if err := Player.Validate(); err != nil {
		t.Fatalf("default tuning rejected: %v", err)
	}
}

func TestValidateRejectsBrokenTuning(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*LocomotionConfig)
	}{
		{"crouch_taller_than_standing", func(c *LocomotionConfig) { c.CrouchHeight = c.StandingHeight }},
		{"zero_crouch_height", func(c *LocomotionConfig) { c.CrouchHeight = 0 }},
		{"zero_radius", func(c *LocomotionConfig) { c.Radius = 0 }},
		{"negative_move_speed", func(c *LocomotionConfig) { c.MoveSpeed = -1 }},
		{"zero_slide_duration", func(c *LocomotionConfig) { c.SlideDuration = 0 }},
		{"negative_slide_cooldown", func(c *LocomotionConfig) { c.SlideCooldown = -0.1 }},
		{"camera_order_inverted", func(c *LocomotionConfig) { c.CameraCrouchingY = c.CameraStandingY }},
		{"zero_smooth_rate", func(c *LocomotionConfig) { c.SmoothRate = 0 }},
		{"zero_gravity", func(c *LocomotionConfig) { c.Gravity = 0 }},
		{"falling_multiplier_below_one", func(c *LocomotionConfig) { c.FallingMultiplier = 0.5 }},
		{"negative_jump_leniency", func(c *LocomotionConfig) { c.JumpLeniency = -0.1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning := Player
			c.mutate(&tuning)
			if err := tuning.Validate(); err == nil {
				t.Fatalf("broken tuning accepted")
			}
		})
	}
}

func TestActionBindingsComplete(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		if _, ok := Input.Bindings[id]; !ok {
			t.Fatalf("action %d has no binding", id)
		}
	}
}
