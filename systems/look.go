package systems

import (
	"errors"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
)

// SettingsSource supplies the persisted horizontal look sensitivity.
type SettingsSource interface {
	LookSensitivity() float64
}

// LookSystem rotates the body yaw from the look axis. Pitch is left to a
// separate camera collaborator.
type LookSystem struct {
	settings SettingsSource
}

func NewLookSystem(settings SettingsSource) (*LookSystem, error) {
	if settings == nil {
		return nil, errors.New("look system: nil settings source")
	}
	return &LookSystem{settings: settings}, nil
}

func (s *LookSystem) Update(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(clockEntry).DT
	sens := s.settings.LookSensitivity()

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.PlayerInput) {
			return
		}
		body := components.Body.Get(entry)
		input := components.PlayerInput.Get(entry)
		body.Yaw += input.LookX * sens * cfg.Player.LookSpeed * dt
	})
}
