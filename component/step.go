package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
)

// NextStep picks the unblocked neighbour of current that is closest to target.
// Only the eight adjacent tiles are considered, so it can walk into dead ends.
// Ties go to the neighbour that comes first in common.Adjacent8. ok is false
// when every neighbour is blocked.
func NextStep(obstacles Obstacles, current, target cp.Vector) (next cp.Vector, ok bool) {
	if obstacles == nil {
		obstacles = ObstacleSet{}
	}

	shortest := 0.0
	for _, off := range common.Adjacent8 {
		pos := current.Add(off)
		if obstacles.IsBlocked(pos) {
			continue
		}
		dist := pos.Distance(target)
		if !ok || dist < shortest {
			next = pos
			shortest = dist
			ok = true
		}
	}
	return next, ok
}
