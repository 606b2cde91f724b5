package obj

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/prefabs"
)

var ErrInvalidBlueprint = errors.New("obj: invalid blueprint")

// BlueprintOffset is where a new blueprint appears relative to the player.
var BlueprintOffset = common.TilePos(2, 0)

// Blueprint is a structure being positioned in build mode. Valid is kept
// current by every method that moves or changes it.
type Blueprint struct {
	Spec     prefabs.StructureSpec
	Origin   cp.Vector
	Rotation int
	Valid    bool
}

func NewBlueprint(spec prefabs.StructureSpec, origin cp.Vector, c *Chunk) *Blueprint {
	b := &Blueprint{Spec: spec, Origin: common.Snap(origin)}
	b.UpdateValid(c)
	return b
}

// Size returns the footprint in tiles after rotation.
func (b *Blueprint) Size() (int, int) {
	return rotatedSize(b.Spec.Width, b.Spec.Height, b.Rotation)
}

func (b *Blueprint) BB() cp.BB {
	w, h := b.Size()
	return footprint(b.Origin, w, h)
}

// UpdateValid recomputes Valid: the blueprint may not overlap any wall or
// structure.
func (b *Blueprint) UpdateValid(c *Chunk) bool {
	b.Valid = true
	if c == nil {
		return b.Valid
	}
	bb := b.BB()
	for _, w := range c.Colliders {
		if w.BB().Intersects(bb) {
			b.Valid = false
			return b.Valid
		}
	}
	for _, s := range c.Structures {
		if s.BB().Intersects(bb) {
			b.Valid = false
			return b.Valid
		}
	}
	return b.Valid
}

func (b *Blueprint) Move(dir cp.Vector, c *Chunk) {
	b.Origin = b.Origin.Add(dir)
	b.UpdateValid(c)
}

// RotateLeft and RotateRight turn the footprint a quarter turn about its
// top-left tile.
func (b *Blueprint) RotateLeft(c *Chunk) {
	b.Rotation = normalizeRotation(b.Rotation - 1)
	b.UpdateValid(c)
}

func (b *Blueprint) RotateRight(c *Chunk) {
	b.Rotation = normalizeRotation(b.Rotation + 1)
	b.UpdateValid(c)
}

// Select swaps the structure being placed, keeping position and rotation.
func (b *Blueprint) Select(spec prefabs.StructureSpec, c *Chunk) {
	b.Spec = spec
	b.UpdateValid(c)
}

// Place adds the structure to c. It fails with ErrInvalidBlueprint when the
// footprint overlaps something.
func (b *Blueprint) Place(c *Chunk) (*Structure, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: no chunk", ErrInvalidBlueprint)
	}
	if !b.UpdateValid(c) {
		return nil, fmt.Errorf("%w: %s at %v overlaps", ErrInvalidBlueprint, b.Spec.Kind, b.Origin)
	}
	s := NewStructure(b.Spec, b.Origin, b.Rotation)
	c.AddStructure(s)
	b.UpdateValid(c)
	return s, nil
}
