package world

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// PixelsPerMeter converts Tiled pixel coordinates into world meters.
const PixelsPerMeter = 32.0

// WallTop is the default vertical extent of a full-height wall.
const WallTop = 4.0

// Load parses a TMX file into a World. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
//
// Object layers:
//   - "walls": solid from the ground up; optional float property "top".
//   - "blocks": solids with float properties "bottom" and "top" (meters),
//     used for platforms and crouch tunnels.
//   - "pads": bounce pads with float properties "force" and "held" and an
//     optional bool "resetJumps".
//   - "spawns": the object named "player" places the character; optional
//     float property "yaw" (radians).
func Load(fsys fs.FS, tmxPath string) (*World, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	w := New(
		float64(levelMap.Width*levelMap.TileWidth)/PixelsPerMeter,
		float64(levelMap.Height*levelMap.TileHeight)/PixelsPerMeter,
	)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "walls":
			for _, o := range og.Objects {
				top := WallTop
				if o.Properties.GetString("top") != "" {
					top = o.Properties.GetFloat("top")
				}
				w.AddBlock(
					o.X/PixelsPerMeter, o.Y/PixelsPerMeter,
					o.Width/PixelsPerMeter, o.Height/PixelsPerMeter,
					0, top,
				)
			}

		case "blocks":
			for _, o := range og.Objects {
				bottom := o.Properties.GetFloat("bottom")
				top := o.Properties.GetFloat("top")
				if top <= bottom {
					return nil, fmt.Errorf("block %d in %s: top %.2f must exceed bottom %.2f",
						o.ID, tmxPath, top, bottom)
				}
				w.AddBlock(
					o.X/PixelsPerMeter, o.Y/PixelsPerMeter,
					o.Width/PixelsPerMeter, o.Height/PixelsPerMeter,
					bottom, top,
				)
			}

		case "pads":
			for _, o := range og.Objects {
				pad := PadSpawn{
					X:               o.X / PixelsPerMeter,
					Z:               o.Y / PixelsPerMeter,
					W:               o.Width / PixelsPerMeter,
					D:               o.Height / PixelsPerMeter,
					ForceMultiplier: o.Properties.GetFloat("force"),
					HeldMultiplier:  o.Properties.GetFloat("held"),
					ResetJumps:      o.Properties.GetBool("resetJumps"),
				}
				if pad.ForceMultiplier <= 0 {
					return nil, fmt.Errorf("pad %d in %s: force multiplier must be positive", o.ID, tmxPath)
				}
				if pad.HeldMultiplier <= 0 {
					pad.HeldMultiplier = pad.ForceMultiplier
				}
				w.Pads = append(w.Pads, pad)
			}

		case "spawns":
			for _, o := range og.Objects {
				if o.Name != "player" {
					continue
				}
				w.SpawnPos = mgl64.Vec3{o.X / PixelsPerMeter, 0, o.Y / PixelsPerMeter}
				w.SpawnYaw = o.Properties.GetFloat("yaw")
			}
		}
	}

	return w, nil
}
