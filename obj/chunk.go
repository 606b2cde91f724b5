package obj

import (
	"iter"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
)

type DecalKind int

const (
	DecalRubble DecalKind = iota
	DecalCrack
)

// CrackVariants is the number of crack decal images.
const CrackVariants = 4

// Decal marks a tile that was mined or damaged.
type Decal struct {
	Pos     cp.Vector
	Kind    DecalKind
	Variant int
}

// Chunk is a square block of cave. Tiles span [0, Size) on both axes and the
// chunk is ringed with bedrock so nothing can leave it.
type Chunk struct {
	Size       int
	Colliders  []*Wall
	Structures []*Structure
	Decals     []Decal

	rng             *rand.Rand
	lastStructureID int
}

func NewChunk(size int, rng *rand.Rand) *Chunk {
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}
	return &Chunk{Size: size, rng: rng}
}

// ColliderPositions yields the tile of every wall in collider order.
func (c *Chunk) ColliderPositions() iter.Seq[cp.Vector] {
	return func(yield func(cp.Vector) bool) {
		if c == nil {
			return
		}
		for _, w := range c.Colliders {
			if !yield(w.Pos) {
				return
			}
		}
	}
}

// WallAt returns the index and wall occupying pos, or -1 and nil.
func (c *Chunk) WallAt(pos cp.Vector) (int, *Wall) {
	if c == nil {
		return -1, nil
	}
	for i, w := range c.Colliders {
		if w.Pos == pos {
			return i, w
		}
	}
	return -1, nil
}

func (c *Chunk) InBounds(pos cp.Vector) bool {
	if c == nil || !common.IsTileAligned(pos) {
		return false
	}
	x, y := common.TileCoord(pos)
	return x >= 0 && y >= 0 && x < c.Size && y < c.Size
}

// IsFloor reports whether pos is inside the chunk with no wall or colliding
// structure on it.
func (c *Chunk) IsFloor(pos cp.Vector) bool {
	if !c.InBounds(pos) {
		return false
	}
	if _, w := c.WallAt(pos); w != nil {
		return false
	}
	if s := c.StructureAt(pos); s != nil && s.Collides {
		return false
	}
	return true
}

// FloorTiles lists every floor tile in row-major order.
func (c *Chunk) FloorTiles() []cp.Vector {
	if c == nil {
		return nil
	}
	walls := make(map[cp.Vector]struct{}, len(c.Colliders))
	for _, w := range c.Colliders {
		walls[w.Pos] = struct{}{}
	}
	var out []cp.Vector
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			p := common.TilePos(x, y)
			if _, ok := walls[p]; ok {
				continue
			}
			if s := c.StructureAt(p); s != nil && s.Collides {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// StructureAt returns the structure covering the centre of the tile at pos.
func (c *Chunk) StructureAt(pos cp.Vector) *Structure {
	if c == nil {
		return nil
	}
	center := common.TileCenter(pos)
	for _, s := range c.Structures {
		if s.Contains(center) {
			return s
		}
	}
	return nil
}

// DamageTerrain chips the collider at index i. A broken wall is removed, a
// rubble decal is left behind and the wall is returned. Otherwise a crack
// decal is added and nil is returned.
func (c *Chunk) DamageTerrain(i int, amount float32) *Wall {
	if c == nil || i < 0 || i >= len(c.Colliders) {
		return nil
	}
	w := c.Colliders[i]
	if !w.Mineable() {
		return nil
	}
	if w.Damage(amount) {
		c.Decals = append(c.Decals, Decal{Pos: w.Pos, Kind: DecalRubble})
		c.Colliders = append(c.Colliders[:i], c.Colliders[i+1:]...)
		return w
	}
	c.Decals = append(c.Decals, Decal{Pos: w.Pos, Kind: DecalCrack, Variant: c.rng.IntN(CrackVariants)})
	return nil
}

// AddStructure places s without checking for overlap and gives it an id.
func (c *Chunk) AddStructure(s *Structure) {
	c.lastStructureID--
	s.ID = c.lastStructureID
	c.Structures = append(c.Structures, s)
}

// RemoveDeadStructures drops structures whose health ran out.
func (c *Chunk) RemoveDeadStructures() {
	alive := c.Structures[:0]
	for _, s := range c.Structures {
		if s.HP.IsAlive() {
			alive = append(alive, s)
		}
	}
	clear(c.Structures[len(alive):])
	c.Structures = alive
}
