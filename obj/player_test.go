package obj

import (
	"testing"

	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/component"
	"github.com/milk9111/delve/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeypadDirections(t *testing.T) {
	assert.Equal(t, tile(0, 0), KeypadDirections[4])
	assert.Equal(t, tile(0, -1), KeypadDirections[7], "8 is up")
	assert.Equal(t, tile(-1, 1), KeypadDirections[0], "1 is down-left")
	for i, d := range KeypadDirections {
		if i == 4 {
			continue
		}
		assert.True(t, common.IsAdjacent(tile(0, 0), d), "key %d", i+1)
	}
}

func TestPlayerAct(t *testing.T) {
	w := newTestWorld(10)
	w.chunk.Colliders = []*Wall{
		{Pos: tile(1, 0), Kind: WallIronOre, Hardness: 2, Iron: 3},
		{Pos: tile(0, -1), Kind: WallBasic},
	}
	w.chunk.AddStructure(NewStructure(prefabs.StructureSpec{Kind: "steel_wall", Width: 1, Height: 1, HP: 10, Collides: true}, tile(0, 1), 0))
	k := w.addKobold(tile(1, 1), nil)

	p := w.player
	assert.Equal(t, PlayerWaited, p.Act(KeypadDirections[4], w.ctx()))
	assert.Equal(t, PlayerBlocked, p.Act(tile(0, -1), w.ctx()), "bedrock")
	assert.Equal(t, PlayerBlocked, p.Act(tile(0, 1), w.ctx()), "structure")

	assert.Equal(t, PlayerMined, p.Act(tile(1, 0), w.ctx()))
	assert.Equal(t, PlayerDug, p.Act(tile(1, 0), w.ctx()))
	assert.Equal(t, 3, p.Iron)
	assert.Equal(t, tile(0, 0), p.Pos, "digging does not move")

	assert.Equal(t, PlayerAttacked, p.Act(tile(1, 1), w.ctx()))
	assert.EqualValues(t, 8, k.HP.CurrentHP())
	require.Len(t, w.combat.Recent, 2)
	assert.Equal(t, component.EventDamageApplied, w.combat.Recent[1].Type)

	assert.Equal(t, PlayerMoved, p.Act(tile(1, 0), w.ctx()))
	assert.Equal(t, tile(1, 0), p.Pos)
}

func TestPlayerKillsKobold(t *testing.T) {
	w := newTestWorld(10)
	k := w.addKobold(tile(1, 0), nil)
	k.HP.ApplyDamage(8)

	assert.Equal(t, PlayerAttacked, w.player.Act(tile(1, 0), w.ctx()))
	assert.False(t, k.HP.IsAlive())

	// the corpse no longer blocks
	assert.Equal(t, PlayerMoved, w.player.Act(tile(1, 0), w.ctx()))
}

func TestDeadPlayerCannotAct(t *testing.T) {
	w := newTestWorld(10)
	w.player.HP.ApplyDamage(w.player.HP.MaxHP())
	assert.Equal(t, PlayerWaited, w.player.Act(tile(1, 0), w.ctx()))
	assert.Equal(t, tile(0, 0), w.player.Pos)
}
