package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/component"
	"github.com/milk9111/delve/prefabs"
)

// Kobold hunts the player once it comes within aggro range. The route it
// plans is followed until it runs out or the target dies. It is never
// replanned on the way, so a kobold may chase a tile the player has left.
type Kobold struct {
	ID    int
	Pos   cp.Vector
	Spec  prefabs.KoboldSpec
	HP    *component.Health
	Brain Brain

	Path []cp.Vector
	// LastSearch is the most recent A* run, kept for the debug overlay.
	LastSearch component.PathSearch
	LastAction Action

	target Entity
}

func NewKobold(id int, pos cp.Vector, spec prefabs.KoboldSpec, brain Brain) *Kobold {
	if brain == nil {
		brain = GreedyBrain{}
	}
	return &Kobold{
		ID:    id,
		Pos:   pos,
		Spec:  spec,
		HP:    component.NewHealth(spec.MaxHP),
		Brain: brain,
	}
}

func (k *Kobold) TargetID() int                     { return k.ID }
func (k *Kobold) HurtFaction() component.Faction    { return component.FactionEnemy }
func (k *Kobold) Health() component.HealthComponent { return k.HP }
func (k *Kobold) Tile() cp.Vector                   { return k.Pos }
func (k *Kobold) Kind() EntityKind                  { return KindKobold }
func (k *Kobold) Target() Entity                    { return k.target }
func (k *Kobold) SetTarget(e Entity)                { k.target = e; k.Path = nil }
func (k *Kobold) aggroRange() float64               { return k.Spec.AggroRange * common.TileSize }

// Update takes one turn. A kobold without a target spends its turn looking
// for one.
func (k *Kobold) Update(ctx *TurnContext) {
	if k == nil || !k.HP.IsAlive() {
		return
	}
	if k.target != nil && !isAlive(k.target) {
		k.SetTarget(nil)
	}
	if k.target == nil {
		k.LastAction = ActionWait
		k.acquireTarget(ctx)
		return
	}

	goal := k.target.Tile()
	view := BrainView{
		HasTarget: true,
		Distance:  k.Pos.Distance(goal) / common.TileSize,
		Adjacent:  common.IsAdjacent(k.Pos, goal),
		HasPath:   len(k.Path) > 0,
		HP:        k.HP.CurrentHP(),
		MaxHP:     k.HP.MaxHP(),
	}
	action := k.Brain.Decide(view)
	if action == ActionAttack && !view.Adjacent {
		action = ActionStep
	}
	k.LastAction = action

	switch action {
	case ActionAttack:
		ctx.Combat.Resolve(component.Attack{
			AttackerID: k.ID,
			Faction:    component.FactionEnemy,
			Amount:     k.Spec.AttackDamage,
		}, k.target)
	case ActionPath:
		k.followPath(ctx, goal)
	case ActionStep:
		k.step(ctx, goal)
	}
}

func (k *Kobold) acquireTarget(ctx *TurnContext) {
	if ctx == nil {
		return
	}
	center := common.TileCenter(k.Pos)
	for _, e := range ctx.Entities {
		if e.Kind() != KindPlayer || !isAlive(e) {
			continue
		}
		if center.Distance(common.TileCenter(e.Tile())) <= k.aggroRange() {
			k.SetTarget(e)
			return
		}
	}
}

func (k *Kobold) followPath(ctx *TurnContext, goal cp.Vector) {
	if len(k.Path) == 0 {
		k.LastSearch = component.SearchPath(ctx.Obstacles(), k.Pos, goal, k.Spec.PathCutoff)
		k.Path = k.LastSearch.Path
		if len(k.Path) == 0 {
			k.step(ctx, goal)
			return
		}
	}

	next := k.Path[0]
	if next == goal {
		// Standing next to the target already.
		k.Path = nil
		return
	}
	if k.moveTo(ctx, next) {
		k.Path = k.Path[1:]
		if len(k.Path) == 0 {
			k.Path = nil
		}
	}
}

func (k *Kobold) step(ctx *TurnContext, goal cp.Vector) {
	next, ok := component.NextStep(ctx.Obstacles(), k.Pos, goal)
	if !ok || next == goal {
		return
	}
	k.moveTo(ctx, next)
}

// moveTo moves onto pos unless a wall or another living entity is there.
// Planners do not see structures, so a colliding one on pos is attacked
// instead and the move waits until it falls.
func (k *Kobold) moveTo(ctx *TurnContext, pos cp.Vector) bool {
	if _, w := ctx.Chunk.WallAt(pos); w != nil {
		return false
	}
	if s := ctx.Chunk.StructureAt(pos); s != nil && s.Collides && s.HP.IsAlive() {
		ctx.Combat.Resolve(component.Attack{
			AttackerID: k.ID,
			Faction:    component.FactionEnemy,
			Amount:     k.Spec.AttackDamage,
		}, s)
		return false
	}
	if other := ctx.EntityAt(pos); other != nil && other != Entity(k) {
		return false
	}
	k.Pos = pos
	return true
}
