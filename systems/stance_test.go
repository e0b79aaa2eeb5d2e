package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
)

func clearYes() bool { return true }
func clearNo() bool  { return false }

func stanceConfig(t *testing.T) {
	t.Helper()
	old := cfg.Player
	cfg.Player.SlideDuration = 0.8
	cfg.Player.SlideCooldown = 1.5
	t.Cleanup(func() { cfg.Player = old })
}

func TestSlideStartForcesCrouch(t *testing.T) {
	stanceConfig(t)

	loc := &components.LocomotionData{Grounded: true}
	advanceStance(loc, true, false, 10.0, clearYes)

	if !loc.Sliding {
		t.Fatalf("slide edge while grounded should start a slide")
	}
	if !loc.Crouching {
		t.Fatalf("starting a slide must force crouch in the same tick")
	}
	if got, want := loc.SlideEndsAt, 10.0+cfg.Player.SlideDuration; got != want {
		t.Fatalf("slide end time = %.2f, want %.2f", got, want)
	}
}

func TestSlideIgnoredWhileAirborneOrSliding(t *testing.T) {
	stanceConfig(t)

	cases := []struct {
		name string
		loc  components.LocomotionData
	}{
		{"airborne", components.LocomotionData{Grounded: false}},
		{"already_sliding", components.LocomotionData{Grounded: true, Sliding: true, Crouching: true, SlideEndsAt: 99}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			loc := c.loc
			before := loc.SlideEndsAt
			advanceStance(&loc, true, false, 10.0, clearYes)
			if loc.SlideEndsAt != before {
				t.Fatalf("slide edge should not restart the slide timer")
			}
			if !c.loc.Sliding && loc.Sliding {
				t.Fatalf("slide should not start from %s", c.name)
			}
		})
	}
}

func TestSlideCooldown(t *testing.T) {
	stanceConfig(t)

	loc := &components.LocomotionData{Grounded: true}
	advanceStance(loc, true, false, 10.0, clearYes)

	// Let the slide run out.
	endTick := 10.0 + cfg.Player.SlideDuration + 0.01
	advanceStance(loc, false, false, endTick, clearYes)
	if loc.Sliding {
		t.Fatalf("slide should have ended at %.2f", endTick)
	}
	if loc.LastSlideEndedAt != endTick {
		t.Fatalf("last slide end = %.2f, want %.2f", loc.LastSlideEndedAt, endTick)
	}

	// Still inside the cooldown window.
	within := loc.LastSlideEndedAt + 0.1*cfg.Player.SlideCooldown
	advanceStance(loc, true, false, within, clearYes)
	if loc.Sliding {
		t.Fatalf("slide restarted at %.2f, inside the cooldown", within)
	}

	// Just past the cooldown.
	after := loc.LastSlideEndedAt + cfg.Player.SlideCooldown + 0.01
	advanceStance(loc, true, false, after, clearYes)
	if !loc.Sliding {
		t.Fatalf("slide should be allowed again at %.2f", after)
	}
}

func TestSlideEndStaysCrouchedWithoutHeadroom(t *testing.T) {
	stanceConfig(t)

	loc := &components.LocomotionData{Grounded: true}
	advanceStance(loc, true, false, 10.0, clearYes)
	advanceStance(loc, false, false, 11.0, clearNo)

	if loc.Sliding {
		t.Fatalf("slide should have ended")
	}
	if !loc.Crouching {
		t.Fatalf("blocked headroom must keep the character crouched after a slide")
	}

	// Headroom opens up later; the next crouch edge stands up.
	advanceStance(loc, false, true, 11.5, clearYes)
	if loc.Crouching {
		t.Fatalf("crouch edge with clear headroom should stand up")
	}
}

func TestCrouchToggleHeadroomGating(t *testing.T) {
	stanceConfig(t)

	loc := &components.LocomotionData{Grounded: true}

	// Crouching never needs headroom.
	advanceStance(loc, false, true, 1.0, clearNo)
	if !loc.Crouching {
		t.Fatalf("crouch edge while standing should always crouch")
	}

	// Standing up does.
	advanceStance(loc, false, true, 2.0, clearNo)
	if !loc.Crouching {
		t.Fatalf("crouch edge with blocked headroom must stay crouched")
	}
	advanceStance(loc, false, true, 3.0, clearYes)
	if loc.Crouching {
		t.Fatalf("crouch edge with clear headroom must stand up")
	}
}

func TestCrouchToggleIgnoredWhileSliding(t *testing.T) {
	stanceConfig(t)

	loc := &components.LocomotionData{Grounded: true}
	advanceStance(loc, true, false, 10.0, clearYes)

	advanceStance(loc, false, true, 10.1, clearYes)
	if !loc.Sliding || !loc.Crouching {
		t.Fatalf("crouch toggle must not interrupt an active slide")
	}
}

type fakeProber struct {
	clear          bool
	standingHeight float64
}

func (p *fakeProber) Headroom(obj *components.ObjectData, body *components.BodyData, standingHeight float64) bool {
	p.standingHeight = standingHeight
	return p.clear
}

func TestStanceSystemUpdate(t *testing.T) {
	stanceConfig(t)
	old := cfg.Player.StandingHeight
	cfg.Player.StandingHeight = 1.8
	t.Cleanup(func() { cfg.Player.StandingHeight = old })

	e := ecs.NewECS(donburi.NewWorld())
	clockEntry := e.World.Entry(e.World.Create(components.Clock))
	components.Clock.Get(clockEntry).Now = 5

	entry := e.World.Entry(e.World.Create(
		components.Body, components.Locomotion, components.PlayerInput, components.Object,
	))
	components.Locomotion.Get(entry).Grounded = true
	components.Locomotion.Get(entry).Crouching = true
	components.PlayerInput.Get(entry).Current[cfg.ActionCrouch] = true

	prober := &fakeProber{clear: true}
	sys, err := NewStanceSystem(prober)
	if err != nil {
		t.Fatalf("NewStanceSystem: %v", err)
	}
	sys.Update(e)

	if components.Locomotion.Get(entry).Crouching {
		t.Fatalf("crouch edge with clear headroom should stand up")
	}
	if prober.standingHeight != 1.8 {
		t.Fatalf("prober asked with height %.2f, want 1.8", prober.standingHeight)
	}
}

func TestSlidingImpliesCrouchingInvariant(t *testing.T) {
	stanceConfig(t)

	loc := &components.LocomotionData{Grounded: true}
	steps := []struct {
		slide, crouch bool
		now           float64
		clear         func() bool
	}{
		{true, false, 10.0, clearYes},
		{false, true, 10.2, clearYes},
		{true, true, 10.5, clearNo},
		{false, false, 11.0, clearNo},
		{false, true, 11.2, clearNo},
		{true, false, 13.0, clearYes},
		{false, false, 14.5, clearYes},
		{false, true, 14.6, clearYes},
	}
	for i, s := range steps {
		advanceStance(loc, s.slide, s.crouch, s.now, s.clear)
		if loc.Sliding && !loc.Crouching {
			t.Fatalf("step %d: sliding without crouching", i)
		}
	}
}
