package systems

import (
	"errors"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
)

// HeadroomProber checks whether the column above the character is clear up
// to nearly the standing height. An ambiguous result must read as blocked.
type HeadroomProber interface {
	Headroom(obj *components.ObjectData, body *components.BodyData, standingHeight float64) bool
}

// StanceSystem resolves crouch and slide transitions. It runs after input
// and before the movement system so velocity integration always sees a
// settled stance.
type StanceSystem struct {
	prober HeadroomProber
}

func NewStanceSystem(prober HeadroomProber) (*StanceSystem, error) {
	if prober == nil {
		return nil, errors.New("stance system: nil headroom prober")
	}
	return &StanceSystem{prober: prober}, nil
}

func (s *StanceSystem) Update(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	now := components.Clock.Get(clockEntry).Now

	components.Locomotion.Each(e.World, func(entry *donburi.Entry) {
		loc := components.Locomotion.Get(entry)
		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)
		input := components.PlayerInput.Get(entry)

		clear := func() bool {
			return s.prober.Headroom(obj, body, cfg.Player.StandingHeight)
		}
		advanceStance(loc,
			input.Action(cfg.ActionSlide).JustPressed,
			input.Action(cfg.ActionCrouch).JustPressed,
			now, clear)
	})
}

// advanceStance applies the slide/crouch transition rules in their fixed
// order: slide start, slide end, then crouch toggle. Slide owns the crouch
// flag for its duration; standing back up always requires headroom.
func advanceStance(loc *components.LocomotionData, slideEdge, crouchEdge bool, now float64, headroomClear func() bool) {
	// Slide start
	if slideEdge && loc.Grounded && !loc.Sliding && now >= loc.LastSlideEndedAt+cfg.Player.SlideCooldown {
		loc.Sliding = true
		loc.SlideEndsAt = now + cfg.Player.SlideDuration
		loc.Crouching = true
	}

	// Slide end
	if loc.Sliding && now > loc.SlideEndsAt {
		loc.Sliding = false
		loc.LastSlideEndedAt = now
		if headroomClear() {
			loc.Crouching = false
		}
	}

	// Crouch toggle, only when not sliding
	if !loc.Sliding && crouchEdge {
		if loc.Crouching {
			if headroomClear() {
				loc.Crouching = false
			}
		} else {
			loc.Crouching = true
		}
	}
}
