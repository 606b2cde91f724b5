package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// TileSize is the edge length of one grid cell in world units.
const TileSize = 48.0

const (
	BaseWidth  = 1152
	BaseHeight = 648
)

// Adjacent8 holds the eight neighbour offsets in the order N, NE, E, SE, S, SW, W, NW.
// Y grows downwards. Planners iterate this slice, so the order decides ties.
var Adjacent8 = [8]cp.Vector{
	{X: 0, Y: -TileSize},
	{X: TileSize, Y: -TileSize},
	{X: TileSize, Y: 0},
	{X: TileSize, Y: TileSize},
	{X: 0, Y: TileSize},
	{X: -TileSize, Y: TileSize},
	{X: -TileSize, Y: 0},
	{X: -TileSize, Y: -TileSize},
}

// TilePos returns the world position of the tile at grid coordinates (x, y).
func TilePos(x, y int) cp.Vector {
	return cp.Vector{X: float64(x) * TileSize, Y: float64(y) * TileSize}
}

// TileCoord returns the grid coordinates of the tile containing p.
func TileCoord(p cp.Vector) (int, int) {
	return int(math.Floor(p.X / TileSize)), int(math.Floor(p.Y / TileSize))
}

// Snap moves p to the top-left corner of the tile containing it.
func Snap(p cp.Vector) cp.Vector {
	return TilePos(TileCoord(p))
}

// IsTileAligned reports whether p lies exactly on the tile lattice.
func IsTileAligned(p cp.Vector) bool {
	return math.Mod(p.X, TileSize) == 0 && math.Mod(p.Y, TileSize) == 0
}

// TileCenter returns the centre point of the tile whose top-left corner is p.
func TileCenter(p cp.Vector) cp.Vector {
	return cp.Vector{X: p.X + TileSize/2, Y: p.Y + TileSize/2}
}

// TileBB returns the bounding box covered by the tile at p.
func TileBB(p cp.Vector) cp.BB {
	return cp.BB{L: p.X, B: p.Y, R: p.X + TileSize, T: p.Y + TileSize}
}

// IsAdjacent reports whether a and b are exactly one 8-way step apart.
func IsAdjacent(a, b cp.Vector) bool {
	d := b.Sub(a)
	for _, off := range Adjacent8 {
		if d == off {
			return true
		}
	}
	return false
}
