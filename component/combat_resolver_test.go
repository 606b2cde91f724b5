package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dummyTarget struct {
	id      int
	faction Faction
	health  *Health
	pos     cp.Vector
}

func (d *dummyTarget) TargetID() int           { return d.id }
func (d *dummyTarget) HurtFaction() Faction    { return d.faction }
func (d *dummyTarget) Health() HealthComponent { return d.health }
func (d *dummyTarget) Tile() cp.Vector         { return d.pos }

func TestCombatResolverResolve(t *testing.T) {
	r := NewCombatResolver()
	var seen []CombatEventType
	r.Emitter.Subscribe(func(evt CombatEvent) { seen = append(seen, evt.Type) })

	kobold := &dummyTarget{id: 2, faction: FactionEnemy, health: NewHealth(2), pos: tile(1, 0)}

	applied, killed := r.Resolve(Attack{AttackerID: 1, Faction: FactionPlayer, Amount: 1}, kobold)
	assert.True(t, applied)
	assert.False(t, killed)

	applied, killed = r.Resolve(Attack{AttackerID: 1, Faction: FactionPlayer, Amount: 1}, kobold)
	assert.True(t, applied)
	assert.True(t, killed)

	assert.Equal(t, []CombatEventType{
		EventHit, EventDamageApplied,
		EventHit, EventDamageApplied, EventDeath,
	}, seen)
	require.Len(t, r.Recent, 5)
	assert.Equal(t, tile(1, 0), r.Recent[4].Pos)
	assert.Equal(t, 2, r.Recent[4].TargetID)

	r.BeginTurn()
	assert.Empty(t, r.Recent)
}

func TestCombatResolverIgnores(t *testing.T) {
	r := NewCombatResolver()

	cases := []struct {
		name   string
		attack Attack
		target *dummyTarget
	}{
		{"friendly_fire", Attack{Faction: FactionEnemy, Amount: 1}, &dummyTarget{faction: FactionEnemy, health: NewHealth(3)}},
		{"already_dead", Attack{Faction: FactionPlayer, Amount: 1}, &dummyTarget{faction: FactionEnemy, health: &Health{Max: 3, Dead: true}}},
		{"no_health", Attack{Faction: FactionPlayer, Amount: 1}, &dummyTarget{faction: FactionEnvironment}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			applied, killed := r.Resolve(c.attack, c.target)
			assert.False(t, applied)
			assert.False(t, killed)
		})
	}
	assert.Empty(t, r.Recent)
}
