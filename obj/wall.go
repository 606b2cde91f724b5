package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
)

type WallKind int

const (
	// WallBasic is bedrock. It cannot be mined.
	WallBasic WallKind = iota
	WallCave
	WallIronOre
)

func (k WallKind) String() string {
	switch k {
	case WallBasic:
		return "basic"
	case WallCave:
		return "cave"
	case WallIronOre:
		return "iron_ore"
	default:
		return "unknown"
	}
}

// Wall is a single collider tile.
type Wall struct {
	Pos  cp.Vector
	Kind WallKind
	// Hardness left before the wall breaks.
	Hardness float32
	// Iron dropped when an ore wall breaks.
	Iron int
}

func (w *Wall) Mineable() bool {
	return w != nil && w.Kind != WallBasic
}

// Damage chips amount off the wall and reports whether it broke.
func (w *Wall) Damage(amount float32) bool {
	if !w.Mineable() {
		return false
	}
	w.Hardness -= amount
	return w.Hardness <= 0
}

func (w *Wall) BB() cp.BB {
	return common.TileBB(w.Pos)
}
