// Package world is the playground's collision world: axis-aligned blocks
// with a footprint in a resolv XZ space plus a vertical extent. It supplies
// the motion-with-collision primitive and the headroom probe the locomotion
// systems consume; the controller itself never resolves collision.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"

	"github.com/automoto/strafe/components"
	"github.com/automoto/strafe/tags"
)

const (
	// supportEpsilon is how far below the feet a block top may sit and
	// still count as standing on it.
	supportEpsilon = 0.05

	// headroomOffset shrinks the probed column slightly at both ends,
	// mirroring an upward ray cast from just above the feet.
	headroomOffset = 0.1

	// contactSlop bounds the pushback accepted from a contact opposing the
	// motion, so float error at a flush face heals instead of tunneling.
	contactSlop = 1e-7
)

// Block is an axis-aligned obstacle: a rectangle on the XZ plane spanning
// [Bottom, Top] vertically.
type Block struct {
	Object *resolv.Object
	Bottom float64
	Top    float64
}

// blocksSpan reports whether the block occupies any part of the capsule's
// vertical extent. A block whose top is at or barely below the feet is a
// support, not an obstacle.
func (b *Block) blocksSpan(feetY, height float64) bool {
	return b.Bottom < feetY+height && b.Top > feetY+supportEpsilon
}

// PadSpawn is a bounce pad region read from the level.
type PadSpawn struct {
	X, Z, W, D      float64
	ForceMultiplier float64
	HeldMultiplier  float64
	ResetJumps      bool
}

// World holds the block set and the spawn data parsed from a level.
type World struct {
	space  *resolv.Space
	blocks []*Block

	Width float64
	Depth float64

	SpawnPos mgl64.Vec3
	SpawnYaw float64
	Pads     []PadSpawn
}

// New creates an empty world of the given horizontal extent in meters.
func New(width, depth float64) *World {
	return &World{
		space: resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(depth)), 1, 1),
		Width: width,
		Depth: depth,
	}
}

// AddBlock inserts a block with the given XZ rectangle and vertical span.
func (w *World) AddBlock(x, z, sx, sz, bottom, top float64) *Block {
	obj := resolv.NewObject(x, z, sx, sz, tags.ResolvBlock)
	obj.SetShape(resolv.NewRectangle(0, 0, sx, sz))
	b := &Block{Object: obj, Bottom: bottom, Top: top}
	obj.Data = b
	w.space.Add(obj)
	w.blocks = append(w.blocks, b)
	return b
}

// Blocks returns the world's obstacle list, for rendering.
func (w *World) Blocks() []*Block {
	return w.blocks
}

// NewFootprint creates the character's square footprint object centered on
// (x, z) and registers it in the collision space.
func (w *World) NewFootprint(x, z, radius float64) *resolv.Object {
	obj := resolv.NewObject(x-radius, z-radius, radius*2, radius*2, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, radius*2, radius*2))
	w.space.Add(obj)
	return obj
}

// NewTrigger creates a non-solid trigger region (bounce pads).
func (w *World) NewTrigger(x, z, sx, sz float64) *resolv.Object {
	obj := resolv.NewObject(x, z, sx, sz, tags.ResolvPad)
	obj.SetShape(resolv.NewRectangle(0, 0, sx, sz))
	w.space.Add(obj)
	return obj
}

// Move performs swept collision resolution for one tick's displacement and
// reports whether the character ends the tick grounded. Horizontal axes are
// clipped independently against blocks overlapping the capsule's vertical
// span; vertical motion is clamped by supports below and ceilings above.
func (w *World) Move(obj *components.ObjectData, body *components.BodyData, height float64, disp mgl64.Vec3) bool {
	feetY := body.Position.Y()

	if dx := w.clipAxis(obj, feetY, height, disp.X(), 0); dx != 0 {
		obj.X += dx
		obj.Update()
	}
	if dz := w.clipAxis(obj, feetY, height, 0, disp.Z()); dz != 0 {
		obj.Y += dz
		obj.Update()
	}

	newY := feetY + disp.Y()
	if ceiling, ok := w.ceilingHeight(obj, feetY); ok && newY+height > ceiling {
		newY = ceiling - height
	}
	grounded := false
	if support := w.supportHeight(obj, feetY); newY <= support {
		newY = support
		grounded = true
	}

	body.Position = mgl64.Vec3{obj.X + obj.W/2, newY, obj.Y + obj.H/2}
	return grounded
}

// clipAxis returns the allowed movement along one horizontal axis. Exactly
// one of dx, dz is nonzero; resolv's Y maps to world Z.
func (w *World) clipAxis(obj *components.ObjectData, feetY, height, dx, dz float64) float64 {
	d := dx + dz
	if d == 0 {
		return 0
	}
	check := obj.Check(dx, dz, tags.ResolvBlock)
	if check == nil {
		return d
	}
	for _, o := range check.Objects {
		b, ok := o.Data.(*Block)
		if !ok || !b.blocksSpan(feetY, height) {
			continue
		}
		contact := check.ContactWithObject(o)
		c := contact.X()
		if dz != 0 {
			c = contact.Y()
		}
		if math.Abs(c) >= math.Abs(d) {
			continue
		}
		if c == 0 || math.Signbit(c) == math.Signbit(d) || math.Abs(c) < contactSlop {
			d = c
		}
	}
	return d
}

// supportHeight returns the highest surface at or below the feet that the
// footprint rests on. The ground plane at y=0 is always a support.
func (w *World) supportHeight(obj *components.ObjectData, feetY float64) float64 {
	support := 0.0
	check := obj.Check(0, 0, tags.ResolvBlock)
	if check == nil {
		return support
	}
	for _, o := range check.Objects {
		b, ok := o.Data.(*Block)
		if ok && b.Top <= feetY+supportEpsilon && b.Top > support {
			support = b.Top
		}
	}
	return support
}

// ceilingHeight returns the lowest block bottom above the feet, if any.
func (w *World) ceilingHeight(obj *components.ObjectData, feetY float64) (float64, bool) {
	ceiling := math.Inf(1)
	check := obj.Check(0, 0, tags.ResolvBlock)
	if check == nil {
		return 0, false
	}
	for _, o := range check.Objects {
		b, ok := o.Data.(*Block)
		if ok && b.Bottom >= feetY+supportEpsilon && b.Bottom < ceiling {
			ceiling = b.Bottom
		}
	}
	if math.IsInf(ceiling, 1) {
		return 0, false
	}
	return ceiling, true
}

// Headroom reports whether the column above the character is clear up to
// nearly the standing height. A blocked or ambiguous result is "not clear";
// the caller stays crouched.
func (w *World) Headroom(obj *components.ObjectData, body *components.BodyData, standingHeight float64) bool {
	feetY := body.Position.Y()
	lo := feetY + headroomOffset
	hi := feetY + standingHeight - headroomOffset
	check := obj.Check(0, 0, tags.ResolvBlock)
	if check == nil {
		return true
	}
	for _, o := range check.Objects {
		b, ok := o.Data.(*Block)
		if ok && b.Bottom < hi && b.Top > lo {
			return false
		}
	}
	return true
}
