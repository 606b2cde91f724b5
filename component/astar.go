package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
)

// DefaultCutoffFactor bounds a search to this many created nodes per world unit
// of straight-line distance between start and goal.
const DefaultCutoffFactor = 10.0

// searchNode is one tile visited or queued during a single search. Parents are
// indices into the search arena; -1 marks the start node.
type searchNode struct {
	pos       cp.Vector
	parent    int
	fromStart float64
	toTarget  float64
	cost      float64
}

// PathSearch is the outcome of one A* run.
type PathSearch struct {
	// Path runs from the first step after start to goal. Empty means no path,
	// whether the goal is unreachable or the search was cut off.
	Path []cp.Vector
	// Visited lists tiles in the order they were selected for expansion.
	Visited []cp.Vector
	// Nodes counts every node created, including rejected candidates.
	Nodes int
}

// PlanPath finds a tile path from start to goal using the default cutoff.
func PlanPath(obstacles Obstacles, start, goal cp.Vector) []cp.Vector {
	return SearchPath(obstacles, start, goal, DefaultCutoffFactor).Path
}

// SearchPath runs A* on the 8-way tile lattice. Each step costs 1 and the
// heuristic is the squared world-space distance to goal. The search gives up
// once more than start.Distance(goal)*cutoffFactor nodes have been created.
// The start tile itself is never checked against obstacles.
func SearchPath(obstacles Obstacles, start, goal cp.Vector, cutoffFactor float64) PathSearch {
	if obstacles == nil {
		obstacles = ObstacleSet{}
	}
	limit := start.Distance(goal) * cutoffFactor

	arena := make([]searchNode, 0, 64)
	arena = append(arena, searchNode{pos: start, parent: -1})
	open := []int{0}
	visited := make(map[cp.Vector]struct{}, 64)

	var result PathSearch
	result.Nodes = 1

	for len(open) > 0 {
		if float64(result.Nodes) > limit {
			return result
		}

		best := 0
		for i := 1; i < len(open); i++ {
			if arena[open[i]].cost < arena[open[best]].cost {
				best = i
			}
		}
		currentIdx := open[best]
		open = append(open[:best], open[best+1:]...)
		current := arena[currentIdx]

		visited[current.pos] = struct{}{}
		result.Visited = append(result.Visited, current.pos)

		if current.pos == goal {
			result.Path = reconstructPath(arena, currentIdx)
			return result
		}

		for _, off := range common.Adjacent8 {
			pos := current.pos.Add(off)
			fromStart := current.fromStart + 1
			toTarget := pos.DistanceSq(goal)
			result.Nodes++

			if obstacles.IsBlocked(pos) {
				continue
			}
			if _, seen := visited[pos]; seen {
				continue
			}
			if hasCheaperNode(arena, pos, fromStart) {
				continue
			}

			arena = append(arena, searchNode{
				pos:       pos,
				parent:    currentIdx,
				fromStart: fromStart,
				toTarget:  toTarget,
				cost:      fromStart + toTarget,
			})
			open = append(open, len(arena)-1)
		}
	}

	return result
}

// hasCheaperNode reports whether the arena already holds a node at pos reached
// in fewer than fromStart steps. Duplicates of equal cost are kept.
func hasCheaperNode(arena []searchNode, pos cp.Vector, fromStart float64) bool {
	for i := range arena {
		if arena[i].pos == pos && arena[i].fromStart < fromStart {
			return true
		}
	}
	return false
}

// reconstructPath walks parents back from idx and returns the route in
// start-to-goal order without the start tile.
func reconstructPath(arena []searchNode, idx int) []cp.Vector {
	path := make([]cp.Vector, 0, 32)
	for idx >= 0 {
		path = append(path, arena[idx].pos)
		idx = arena[idx].parent
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path[1:]
}
