package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
	"github.com/automoto/strafe/world"
)

// NewDrawWorld returns a renderer for the top-down debug view: blocks
// shaded by their vertical extent, pads, and the player footprint with a
// facing line.
func NewDrawWorld(w *world.World) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		ppm := float32(cfg.View.PixelsPerMeter)

		for _, b := range w.Blocks() {
			c := colornames.Dimgray
			if b.Bottom > 0 {
				// Overhead geometry the player can walk or crouch under.
				c = colornames.Slategray
			} else if b.Top < cfg.Player.StandingHeight {
				c = colornames.Gray
			}
			vector.DrawFilledRect(screen,
				float32(b.Object.X)*ppm, float32(b.Object.Y)*ppm,
				float32(b.Object.W)*ppm, float32(b.Object.H)*ppm,
				c, false)
		}

		for _, p := range w.Pads {
			vector.DrawFilledRect(screen,
				float32(p.X)*ppm, float32(p.Z)*ppm,
				float32(p.W)*ppm, float32(p.D)*ppm,
				colornames.Seagreen, false)
		}

		components.Body.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(components.Object) {
				return
			}
			body := components.Body.Get(entry)
			obj := components.Object.Get(entry)

			c := cfg.Orange
			if entry.HasComponent(components.Locomotion) && components.Locomotion.Get(entry).Crouching {
				c = cfg.BrightOrange
			}
			vector.DrawFilledRect(screen,
				float32(obj.X)*ppm, float32(obj.Y)*ppm,
				float32(obj.W)*ppm, float32(obj.H)*ppm,
				c, false)

			f := body.Forward()
			cx := float32(body.Position.X()) * ppm
			cz := float32(body.Position.Z()) * ppm
			vector.StrokeLine(screen,
				cx, cz,
				cx+float32(f.X()*cfg.View.FacingLineLen)*ppm,
				cz+float32(f.Z()*cfg.View.FacingLineLen)*ppm,
				2, cfg.White, false)
		})
	}
}

// NewDrawHUD returns the debug readout renderer.
func NewDrawHUD(settings *SettingsStore) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		entry, ok := components.Locomotion.First(e.World)
		if !ok {
			return
		}
		loc := components.Locomotion.Get(entry)
		body := components.Body.Get(entry)
		col := components.Collider.Get(entry)
		cam := components.EyeCamera.Get(entry)

		stance := "standing"
		switch {
		case loc.Sliding:
			stance = "sliding"
		case loc.Crouching:
			stance = "crouching"
		}
		air := "grounded"
		if !loc.Grounded {
			air = "airborne"
		}

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"%s / %s\npos  (%.2f, %.2f, %.2f)\nvel  (%.2f, %.2f, %.2f)\ncapsule %.2fm  eye %.2fm  roll %.2f\nsensitivity %.1f  ([ / ] adjust)",
			stance, air,
			body.Position.X(), body.Position.Y(), body.Position.Z(),
			loc.Velocity.X(), loc.Velocity.Y(), loc.Velocity.Z(),
			col.Height, cam.LocalY, cam.Roll,
			settings.LookSensitivity(),
		), 8, 8)
	}
}
