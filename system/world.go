package system

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/component"
	"github.com/milk9111/delve/obj"
	"github.com/milk9111/delve/prefabs"
)

// World owns the cave, everything living in it and the turn loop.
type World struct {
	Specs   *prefabs.Specs
	Seed    uint64
	Chunk   *obj.Chunk
	Player  *obj.Player
	Kobolds []*obj.Kobold
	Combat  *component.CombatResolver
	Brain   obj.Brain
	Turn    int
	// Kills counts kobolds slain by the player.
	Kills int

	rng    *rand.Rand
	nextID int
}

// NewWorld generates a cave from seed, puts the player at tile (0,0) and
// scatters kobolds over the floor. A nil brain falls back to obj.GreedyBrain.
func NewWorld(specs *prefabs.Specs, seed uint64, brain obj.Brain) (*World, error) {
	if specs == nil {
		return nil, fmt.Errorf("system: new world: nil specs")
	}
	if brain == nil {
		brain = obj.GreedyBrain{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	w := &World{
		Specs:  specs,
		Seed:   seed,
		Chunk:  obj.GenerateChunk(specs.World, rng),
		Combat: component.NewCombatResolver(),
		Brain:  brain,
		rng:    rng,
		nextID: 1,
	}
	w.Player = obj.NewPlayer(w.allocID(), common.TilePos(0, 0), specs.Player)
	w.Combat.Emitter.Subscribe(w.onCombat)

	if err := w.SpawnKobolds(specs.World.Kobolds); err != nil {
		return nil, fmt.Errorf("system: new world: %w", err)
	}
	return w, nil
}

func (w *World) onCombat(evt component.CombatEvent) {
	if evt.Type != component.EventDeath || w.Player == nil {
		return
	}
	switch {
	case evt.TargetID == w.Player.ID:
		log.Printf("player: killed by %d on turn %d", evt.AttackerID, w.Turn)
	case evt.AttackerID == w.Player.ID:
		w.Kills++
	case evt.TargetID < 0:
		log.Printf("structure %d: destroyed by %d at %v", evt.TargetID, evt.AttackerID, evt.Pos)
	}
}

func (w *World) allocID() int {
	id := w.nextID
	w.nextID++
	return id
}

// Entities lists the player followed by every kobold in spawn order.
func (w *World) Entities() []obj.Entity {
	out := make([]obj.Entity, 0, len(w.Kobolds)+1)
	if w.Player != nil {
		out = append(out, w.Player)
	}
	for _, k := range w.Kobolds {
		out = append(out, k)
	}
	return out
}

func (w *World) turnContext() *obj.TurnContext {
	return &obj.TurnContext{
		Turn:     w.Turn,
		Chunk:    w.Chunk,
		Entities: w.Entities(),
		Combat:   w.Combat,
	}
}

// GameOver reports whether the player has died.
func (w *World) GameOver() bool {
	return w.Player == nil || !w.Player.HP.IsAlive()
}

// Act runs the player's move for this turn and then lets everyone else act.
// Waiting still ends the turn.
func (w *World) Act(dir cp.Vector) obj.PlayerAction {
	if w.GameOver() {
		return obj.PlayerWaited
	}
	w.Combat.BeginTurn()
	action := w.Player.Act(dir, w.turnContext())
	w.removeDead()
	w.EndTurn()
	return action
}

// EndTurn updates every living entity in order and then clears out the dead.
func (w *World) EndTurn() {
	w.Turn++
	ctx := w.turnContext()
	for _, e := range ctx.Entities {
		if !e.Health().IsAlive() {
			continue
		}
		e.Update(ctx)
	}
	w.removeDead()
	w.Chunk.RemoveDeadStructures()
}

func (w *World) removeDead() {
	alive := w.Kobolds[:0]
	for _, k := range w.Kobolds {
		if k.HP.IsAlive() {
			alive = append(alive, k)
			continue
		}
		log.Printf("kobold %d: died at %v", k.ID, k.Pos)
	}
	clear(w.Kobolds[len(alive):])
	w.Kobolds = alive
}

// SetBrain swaps the decision maker of every kobold, current and future.
func (w *World) SetBrain(b obj.Brain) {
	if b == nil {
		b = obj.GreedyBrain{}
	}
	w.Brain = b
	for _, k := range w.Kobolds {
		k.Brain = b
	}
}

// ApplyKoboldSpec updates live kobolds after kobold.yaml changes. Current hp
// is kept and clamped to the new maximum.
func (w *World) ApplyKoboldSpec(spec prefabs.KoboldSpec) {
	w.Specs.Kobold = spec
	for _, k := range w.Kobolds {
		k.Spec = spec
		k.HP.SetMaxHP(spec.MaxHP)
	}
}

// ApplyPlayerSpec updates the player after player.yaml changes.
func (w *World) ApplyPlayerSpec(spec prefabs.PlayerSpec) {
	w.Specs.Player = spec
	if w.Player == nil {
		return
	}
	w.Player.Spec = spec
	w.Player.HP.SetMaxHP(spec.MaxHP)
}

// KoboldAt returns the living kobold on pos.
func (w *World) KoboldAt(pos cp.Vector) *obj.Kobold {
	for _, k := range w.Kobolds {
		if k.Pos == pos && k.HP.IsAlive() {
			return k
		}
	}
	return nil
}
