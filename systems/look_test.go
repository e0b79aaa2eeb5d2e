package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
)

type fixedSensitivity float64

func (f fixedSensitivity) LookSensitivity() float64 { return float64(f) }

func lookRig(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	clockEntry := e.World.Entry(e.World.Create(components.Clock))
	components.Clock.Get(clockEntry).DT = 0.05

	entry := e.World.Entry(e.World.Create(components.Body, components.PlayerInput))
	return e, entry
}

func TestLookYawScalesWithSensitivity(t *testing.T) {
	old := cfg.Player
	cfg.Player.LookSpeed = 0.22
	t.Cleanup(func() { cfg.Player = old })

	e, entry := lookRig(t)
	components.PlayerInput.Get(entry).LookX = 2

	sys, err := NewLookSystem(fixedSensitivity(1.5))
	if err != nil {
		t.Fatalf("NewLookSystem: %v", err)
	}
	sys.Update(e)

	want := 2 * 1.5 * 0.22 * 0.05
	if got := components.Body.Get(entry).Yaw; math.Abs(got-want) > 1e-12 {
		t.Fatalf("yaw = %.6f, want %.6f", got, want)
	}

	// Opposite axis sign turns the other way.
	components.PlayerInput.Get(entry).LookX = -2
	sys.Update(e)
	if got := components.Body.Get(entry).Yaw; math.Abs(got) > 1e-12 {
		t.Fatalf("yaw should return to zero, got %.6f", got)
	}
}

func TestLookSystemRequiresSettings(t *testing.T) {
	if _, err := NewLookSystem(nil); err == nil {
		t.Fatalf("nil settings source must be rejected")
	}
}

func TestSensitivityAdjustClamps(t *testing.T) {
	e, entry := lookRig(t)
	input := components.PlayerInput.Get(entry)

	s := &SettingsStore{sensitivity: cfg.Settings.SensitivityMax - cfg.Settings.SensitivityStep/2}

	input.Current[cfg.ActionSensitivityUp] = true
	s.Update(e)
	if got := s.LookSensitivity(); got != cfg.Settings.SensitivityMax {
		t.Fatalf("sensitivity = %.2f, want clamped to %.2f", got, cfg.Settings.SensitivityMax)
	}

	// Held key is not a fresh press; nothing changes.
	input.Previous[cfg.ActionSensitivityUp] = true
	s.Update(e)
	if got := s.LookSensitivity(); got != cfg.Settings.SensitivityMax {
		t.Fatalf("held key changed sensitivity to %.2f", got)
	}

	s.sensitivity = cfg.Settings.SensitivityMin
	input.Current[cfg.ActionSensitivityUp] = false
	input.Previous[cfg.ActionSensitivityUp] = false
	input.Current[cfg.ActionSensitivityDown] = true
	s.Update(e)
	if got := s.LookSensitivity(); got != cfg.Settings.SensitivityMin {
		t.Fatalf("sensitivity = %.2f, want clamped to %.2f", got, cfg.Settings.SensitivityMin)
	}
}
