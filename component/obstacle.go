package component

import (
	"iter"

	"github.com/jakecoffman/cp"
)

// Obstacles answers whether a tile position is occupied by a collider.
type Obstacles interface {
	IsBlocked(pos cp.Vector) bool
}

// ColliderSource enumerates the tile positions of a collider set.
type ColliderSource interface {
	ColliderPositions() iter.Seq[cp.Vector]
}

// ObstacleSet is an immutable snapshot of blocked tile positions.
type ObstacleSet map[cp.Vector]struct{}

// NewObstacleSet builds a set from explicit positions.
func NewObstacleSet(positions ...cp.Vector) ObstacleSet {
	s := make(ObstacleSet, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

// SnapshotObstacles copies the current collider positions of src. Later
// mutations of src are not reflected in the returned set.
func SnapshotObstacles(src ColliderSource) ObstacleSet {
	s := ObstacleSet{}
	if src == nil {
		return s
	}
	for p := range src.ColliderPositions() {
		s[p] = struct{}{}
	}
	return s
}

// IsBlocked reports whether pos is in the set.
func (s ObstacleSet) IsBlocked(pos cp.Vector) bool {
	_, ok := s[pos]
	return ok
}
