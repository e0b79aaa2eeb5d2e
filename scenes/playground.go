package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/archetypes"
	"github.com/automoto/strafe/assets"
	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
	"github.com/automoto/strafe/systems"
	"github.com/automoto/strafe/world"
)

// PlaygroundScene runs the locomotion playground: one first-person
// character in the embedded block level, drawn top-down with a HUD.
type PlaygroundScene struct {
	ecs *ecs.ECS
}

// NewPlaygroundScene loads the level and wires the systems in tick order.
// It fails rather than starting with a missing collaborator.
func NewPlaygroundScene(settings *systems.SettingsStore) (*PlaygroundScene, error) {
	w, err := world.Load(assets.Levels, "levels/playground.tmx")
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	look, err := systems.NewLookSystem(settings)
	if err != nil {
		return nil, err
	}
	stance, err := systems.NewStanceSystem(w)
	if err != nil {
		return nil, err
	}
	movement, err := systems.NewMovementSystem(w)
	if err != nil {
		return nil, err
	}

	e := ecs.NewECS(donburi.NewWorld())

	clockEntry := archetypes.Clock.Spawn(e)
	components.Clock.Get(clockEntry).DT = 1.0 / float64(ebiten.TPS())

	spawnPlayer(e, w)
	spawnPads(e, w)

	// Tick order per the locomotion contract: transitions settle before
	// velocity integration, motion before presentation.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(settings.Update)
	e.AddSystem(look.Update)
	e.AddSystem(stance.Update)
	e.AddSystem(movement.Update)
	e.AddSystem(systems.UpdatePads)
	e.AddSystem(systems.UpdatePresentation)

	e.AddRenderer(cfg.Default, systems.NewDrawWorld(w))
	e.AddRenderer(cfg.Default, systems.NewDrawHUD(settings))

	return &PlaygroundScene{ecs: e}, nil
}

func spawnPlayer(e *ecs.ECS, w *world.World) {
	p := cfg.Player
	entry := archetypes.Player.Spawn(e)

	body := components.Body.Get(entry)
	body.Position = w.SpawnPos
	body.Yaw = w.SpawnYaw

	loc := components.Locomotion.Get(entry)
	loc.PrevY = w.SpawnPos.Y()

	// Baseline presentation values are sampled once at spawn and only
	// ever smoothed afterwards.
	col := components.Collider.Get(entry)
	col.Height = p.StandingHeight
	col.CenterY = p.StandingHeight / 2

	cam := components.EyeCamera.Get(entry)
	cam.LocalY = p.CameraStandingY

	obj := components.Object.Get(entry)
	obj.Object = w.NewFootprint(w.SpawnPos.X(), w.SpawnPos.Z(), p.Radius)
}

func spawnPads(e *ecs.ECS, w *world.World) {
	for _, spawn := range w.Pads {
		entry := archetypes.Pad.Spawn(e)
		pad := components.Pad.Get(entry)
		pad.ForceMultiplier = spawn.ForceMultiplier
		pad.HeldMultiplier = spawn.HeldMultiplier
		pad.ResetJumps = spawn.ResetJumps

		trigger := w.NewTrigger(spawn.X, spawn.Z, spawn.W, spawn.D)
		trigger.Data = pad
	}
}

func (ps *PlaygroundScene) Update() {
	ps.ecs.Update()
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}
