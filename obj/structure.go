package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/component"
	"github.com/milk9111/delve/prefabs"
)

// structureInset shrinks a structure's box so that neighbours sharing an
// edge do not count as overlapping.
const structureInset = 1.0

// Structure is a placed building. Origin is its top-left tile and Width and
// Height are in tiles after rotation. Kobolds wear down colliding structures
// that stand in their way.
type Structure struct {
	// ID is negative so it never collides with entity ids in combat events.
	ID       int
	Kind     string
	Name     string
	Origin   cp.Vector
	Width    int
	Height   int
	Rotation int
	Collides bool
	HP       *component.Health
}

func NewStructure(spec prefabs.StructureSpec, origin cp.Vector, rotation int) *Structure {
	w, h := rotatedSize(spec.Width, spec.Height, rotation)
	return &Structure{
		Kind:     spec.Kind,
		Name:     spec.Name,
		Origin:   origin,
		Width:    w,
		Height:   h,
		Rotation: normalizeRotation(rotation),
		Collides: spec.Collides,
		HP:       component.NewHealth(spec.HP),
	}
}

func (s *Structure) TargetID() int                     { return s.ID }
func (s *Structure) HurtFaction() component.Faction    { return component.FactionEnvironment }
func (s *Structure) Health() component.HealthComponent { return s.HP }
func (s *Structure) Tile() cp.Vector                   { return s.Origin }

func (s *Structure) BB() cp.BB {
	return footprint(s.Origin, s.Width, s.Height)
}

// Contains reports whether the world point p lies inside the structure.
func (s *Structure) Contains(p cp.Vector) bool {
	return s != nil && s.BB().ContainsVect(p)
}

// Tiles lists every tile the structure covers.
func (s *Structure) Tiles() []cp.Vector {
	out := make([]cp.Vector, 0, s.Width*s.Height)
	for dy := 0; dy < s.Height; dy++ {
		for dx := 0; dx < s.Width; dx++ {
			out = append(out, s.Origin.Add(common.TilePos(dx, dy)))
		}
	}
	return out
}

func footprint(origin cp.Vector, w, h int) cp.BB {
	return cp.BB{
		L: origin.X + structureInset,
		B: origin.Y + structureInset,
		R: origin.X + float64(w)*common.TileSize - structureInset,
		T: origin.Y + float64(h)*common.TileSize - structureInset,
	}
}

// normalizeRotation maps any number of quarter turns into [0,4).
func normalizeRotation(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}

func rotatedSize(w, h, rotation int) (int, int) {
	if normalizeRotation(rotation)%2 == 1 {
		return h, w
	}
	return w, h
}
