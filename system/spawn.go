package system

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/obj"
)

var ErrNoFloor = errors.New("system: no floor tile to spawn on")

// SpawnKobolds places up to n kobolds on random free floor tiles at least
// World.SpawnMinDistance tiles from the player. It only fails when no tile
// qualifies at all.
func (w *World) SpawnKobolds(n int) error {
	if n <= 0 {
		return nil
	}
	candidates := w.spawnCandidates()
	if len(candidates) == 0 {
		return fmt.Errorf("spawn %d kobolds: %w", n, ErrNoFloor)
	}
	for i := 0; i < n && len(candidates) > 0; i++ {
		j := w.rng.IntN(len(candidates))
		w.SpawnKobold(candidates[j])
		candidates[j] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
	return nil
}

// SpawnKobold adds a kobold at pos without any checks.
func (w *World) SpawnKobold(pos cp.Vector) *obj.Kobold {
	k := obj.NewKobold(w.allocID(), pos, w.Specs.Kobold, w.Brain)
	w.Kobolds = append(w.Kobolds, k)
	return k
}

func (w *World) spawnCandidates() []cp.Vector {
	minDist := float64(w.Specs.World.SpawnMinDistance) * common.TileSize
	var origin cp.Vector
	if w.Player != nil {
		origin = w.Player.Pos
	}

	var out []cp.Vector
	for _, p := range w.Chunk.FloorTiles() {
		if p.Distance(origin) < minDist {
			continue
		}
		if w.KoboldAt(p) != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
