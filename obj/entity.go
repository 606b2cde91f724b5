package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/component"
)

type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindKobold
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindKobold:
		return "kobold"
	default:
		return "unknown"
	}
}

// Entity is anything that takes a turn and can be hurt.
type Entity interface {
	component.Damageable
	Kind() EntityKind
	Update(ctx *TurnContext)
}

// TurnContext is the world as seen by an entity during its turn.
type TurnContext struct {
	Turn     int
	Chunk    *Chunk
	Entities []Entity
	Combat   *component.CombatResolver
}

// EntityAt returns the first living entity standing on pos.
func (ctx *TurnContext) EntityAt(pos cp.Vector) Entity {
	if ctx == nil {
		return nil
	}
	for _, e := range ctx.Entities {
		if e.Tile() == pos && e.Health().IsAlive() {
			return e
		}
	}
	return nil
}

// Obstacles snapshots the chunk's walls for one planning call.
func (ctx *TurnContext) Obstacles() component.ObstacleSet {
	if ctx == nil {
		return component.ObstacleSet{}
	}
	return component.SnapshotObstacles(ctx.Chunk)
}

func isAlive(e Entity) bool {
	return e != nil && e.Health() != nil && e.Health().IsAlive()
}
