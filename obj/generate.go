package obj

import (
	"math/rand/v2"

	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/prefabs"
)

// floorThreshold is the number of floor neighbours a tile needs to stay open
// after a smoothing pass.
const floorThreshold = 4

// GenerateChunk fills a chunk at random and smooths it with a cellular
// automaton. Neighbours outside the chunk count as a random 0..3 floor tiles.
// Tile (0,0) is always floor. Walls are emitted in row-major order followed by
// the bedrock ring.
func GenerateChunk(spec prefabs.WorldSpec, rng *rand.Rand) *Chunk {
	size := spec.ChunkSize
	c := NewChunk(size, rng)
	rng = c.rng

	grid := newTerrain(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			grid[y][x] = rng.IntN(100) < spec.FillPercent
		}
	}
	if size > 0 {
		grid[0][0] = false
	}

	next := newTerrain(size)
	for i := 0; i < spec.SmoothIterations; i++ {
		smooth(grid, next, rng)
		grid, next = next, grid
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if grid[y][x] {
				c.Colliders = append(c.Colliders, newCaveWall(spec, x, y, rng))
			}
		}
	}
	c.Colliders = append(c.Colliders, bedrockRing(size)...)
	return c
}

// terrain[y][x] is true for wall.
type terrain [][]bool

func newTerrain(size int) terrain {
	t := make(terrain, size)
	for y := range t {
		t[y] = make([]bool, size)
	}
	return t
}

func smooth(src, dst terrain, rng *rand.Rand) {
	size := len(src)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 0 && y == 0 {
				dst[y][x] = false
				continue
			}
			dst[y][x] = floorNeighbours(src, x, y, rng) < floorThreshold
		}
	}
}

func floorNeighbours(t terrain, x, y int, rng *rand.Rand) int {
	size := len(t)
	n := 0
	for _, off := range common.Adjacent8 {
		ax := x + int(off.X/common.TileSize)
		ay := y + int(off.Y/common.TileSize)
		if ax < 0 || ay < 0 || ax >= size || ay >= size {
			n += rng.IntN(4)
			continue
		}
		if !t[ay][ax] {
			n++
		}
	}
	return n
}

func newCaveWall(spec prefabs.WorldSpec, x, y int, rng *rand.Rand) *Wall {
	if spec.OreChance > 0 && rng.IntN(100) < spec.OreChance {
		iron := spec.IronMin
		if spec.IronMax > spec.IronMin {
			iron += rng.IntN(spec.IronMax - spec.IronMin + 1)
		}
		return &Wall{Pos: common.TilePos(x, y), Kind: WallIronOre, Hardness: spec.OreHardness, Iron: iron}
	}
	return &Wall{Pos: common.TilePos(x, y), Kind: WallCave, Hardness: spec.WallHardness}
}

// bedrockRing surrounds [0,size) x [0,size) with unmineable walls.
func bedrockRing(size int) []*Wall {
	if size <= 0 {
		return nil
	}
	ring := make([]*Wall, 0, 4*size+4)
	for x := -1; x <= size; x++ {
		ring = append(ring, &Wall{Pos: common.TilePos(x, -1), Kind: WallBasic})
		ring = append(ring, &Wall{Pos: common.TilePos(x, size), Kind: WallBasic})
	}
	for y := 0; y < size; y++ {
		ring = append(ring, &Wall{Pos: common.TilePos(-1, y), Kind: WallBasic})
		ring = append(ring, &Wall{Pos: common.TilePos(size, y), Kind: WallBasic})
	}
	return ring
}
