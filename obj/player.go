package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/component"
	"github.com/milk9111/delve/prefabs"
)

// KeypadDirections maps numpad keys 1..9 to moves, laid out like the pad.
// Key 5 waits in place.
var KeypadDirections = [9]cp.Vector{
	common.TilePos(-1, 1), common.TilePos(0, 1), common.TilePos(1, 1),
	common.TilePos(-1, 0), common.TilePos(0, 0), common.TilePos(1, 0),
	common.TilePos(-1, -1), common.TilePos(0, -1), common.TilePos(1, -1),
}

type PlayerAction int

const (
	PlayerWaited PlayerAction = iota
	PlayerMoved
	// PlayerMined hit a wall that is still standing.
	PlayerMined
	// PlayerDug broke through a wall.
	PlayerDug
	PlayerAttacked
	PlayerBlocked
)

func (a PlayerAction) String() string {
	switch a {
	case PlayerWaited:
		return "waited"
	case PlayerMoved:
		return "moved"
	case PlayerMined:
		return "mined"
	case PlayerDug:
		return "dug"
	case PlayerAttacked:
		return "attacked"
	case PlayerBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

type Player struct {
	ID   int
	Pos  cp.Vector
	Spec prefabs.PlayerSpec
	HP   *component.Health
	Iron int
}

func NewPlayer(id int, pos cp.Vector, spec prefabs.PlayerSpec) *Player {
	return &Player{
		ID:   id,
		Pos:  pos,
		Spec: spec,
		HP:   component.NewHealth(spec.MaxHP),
	}
}

func (p *Player) TargetID() int                     { return p.ID }
func (p *Player) HurtFaction() component.Faction    { return component.FactionPlayer }
func (p *Player) Health() component.HealthComponent { return p.HP }
func (p *Player) Tile() cp.Vector                   { return p.Pos }
func (p *Player) Kind() EntityKind                  { return KindPlayer }

// Update is a no-op; the player acts through Act.
func (p *Player) Update(ctx *TurnContext) {}

// Act resolves one keypad move. Walking into a wall mines it, into a colliding
// structure does nothing and into another entity attacks it.
func (p *Player) Act(dir cp.Vector, ctx *TurnContext) PlayerAction {
	if p == nil || !p.HP.IsAlive() || dir == (cp.Vector{}) || ctx == nil {
		return PlayerWaited
	}
	dest := p.Pos.Add(dir)

	if i, w := ctx.Chunk.WallAt(dest); w != nil {
		if !w.Mineable() {
			return PlayerBlocked
		}
		broken := ctx.Chunk.DamageTerrain(i, p.Spec.MiningSpeed)
		if broken == nil {
			return PlayerMined
		}
		p.Iron += broken.Iron
		return PlayerDug
	}

	if s := ctx.Chunk.StructureAt(dest); s != nil && s.Collides {
		return PlayerBlocked
	}

	if other := ctx.EntityAt(dest); other != nil && other != Entity(p) {
		ctx.Combat.Resolve(component.Attack{
			AttackerID: p.ID,
			Faction:    component.FactionPlayer,
			Amount:     p.Spec.AttackDamage,
		}, other)
		return PlayerAttacked
	}

	p.Pos = dest
	return PlayerMoved
}
