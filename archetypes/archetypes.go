package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
	"github.com/automoto/strafe/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Locomotion,
		components.Collider,
		components.EyeCamera,
		components.PlayerInput,
		components.Object,
	)
	Pad = newArchetype(
		tags.Pad,
		components.Pad,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
