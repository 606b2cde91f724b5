package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/obj"
	"github.com/milk9111/delve/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tile(x, y int) cp.Vector {
	return common.TilePos(x, y)
}

func testSpecs() *prefabs.Specs {
	return &prefabs.Specs{
		World: prefabs.WorldSpec{
			ChunkSize:        20,
			FillPercent:      45,
			SmoothIterations: 2,
			WallHardness:     3,
			Kobolds:          4,
			SpawnMinDistance: 4,
		},
		Player: prefabs.PlayerSpec{MaxHP: 10, MiningSpeed: 1, AttackDamage: 2},
		Kobold: prefabs.KoboldSpec{MaxHP: 10, AggroRange: 3, AttackDamage: 1, PathCutoff: 10},
	}
}

// openWorld is an empty cave with no kobolds.
func openWorld(t *testing.T) *World {
	t.Helper()
	specs := testSpecs()
	specs.World.FillPercent = 0
	specs.World.Kobolds = 0
	w, err := NewWorld(specs, 1, nil)
	require.NoError(t, err)
	return w
}

func TestNewWorldSpawns(t *testing.T) {
	specs := testSpecs()
	w, err := NewWorld(specs, 99, nil)
	require.NoError(t, err)

	assert.Equal(t, tile(0, 0), w.Player.Pos)
	assert.True(t, w.Chunk.IsFloor(w.Player.Pos))
	require.Len(t, w.Kobolds, specs.World.Kobolds)

	ids := map[int]bool{w.Player.ID: true}
	spots := map[cp.Vector]bool{}
	for _, k := range w.Kobolds {
		assert.False(t, ids[k.ID], "duplicate id %d", k.ID)
		ids[k.ID] = true
		assert.False(t, spots[k.Pos], "two kobolds on %v", k.Pos)
		spots[k.Pos] = true

		assert.True(t, w.Chunk.IsFloor(k.Pos))
		assert.GreaterOrEqual(t, k.Pos.Distance(w.Player.Pos), 4*common.TileSize)
		assert.IsType(t, obj.GreedyBrain{}, k.Brain)
	}
	assert.Len(t, w.Entities(), specs.World.Kobolds+1)
	assert.Same(t, w.Player, w.Entities()[0])
}

func TestNewWorldDeterministic(t *testing.T) {
	a, err := NewWorld(testSpecs(), 5, nil)
	require.NoError(t, err)
	b, err := NewWorld(testSpecs(), 5, nil)
	require.NoError(t, err)

	require.Equal(t, len(a.Chunk.Colliders), len(b.Chunk.Colliders))
	for i := range a.Chunk.Colliders {
		assert.Equal(t, a.Chunk.Colliders[i].Pos, b.Chunk.Colliders[i].Pos)
	}
	require.Equal(t, len(a.Kobolds), len(b.Kobolds))
	for i := range a.Kobolds {
		assert.Equal(t, a.Kobolds[i].Pos, b.Kobolds[i].Pos)
	}
}

func TestNewWorldErrors(t *testing.T) {
	_, err := NewWorld(nil, 1, nil)
	assert.Error(t, err)

	specs := testSpecs()
	specs.World.FillPercent = 100
	specs.World.SmoothIterations = 0
	_, err = NewWorld(specs, 1, nil)
	assert.ErrorIs(t, err, ErrNoFloor)
}

func TestWorldTurnLoop(t *testing.T) {
	w := openWorld(t)
	k := w.SpawnKobold(tile(2, 0))

	assert.Equal(t, obj.PlayerWaited, w.Act(cp.Vector{}))
	assert.Equal(t, 1, w.Turn)
	require.NotNil(t, k.Target(), "player is within aggro range")
	assert.Equal(t, tile(2, 0), k.Pos)

	w.Act(cp.Vector{})
	assert.Equal(t, tile(1, 0), k.Pos)

	w.Act(cp.Vector{})
	assert.EqualValues(t, 9, w.Player.HP.CurrentHP())

	for i := 0; i < 5; i++ {
		assert.Equal(t, obj.PlayerAttacked, w.Act(tile(1, 0)))
	}
	assert.Empty(t, w.Kobolds, "dead kobolds are removed")
	assert.Equal(t, 1, w.Kills)
	// the kobold hit back until it died
	assert.EqualValues(t, 5, w.Player.HP.CurrentHP())

	assert.Equal(t, obj.PlayerMoved, w.Act(tile(1, 0)))
	assert.Equal(t, tile(1, 0), w.Player.Pos)
	assert.Equal(t, 9, w.Turn)
}

func TestWorldGameOver(t *testing.T) {
	w := openWorld(t)
	w.Player.HP.ApplyDamage(w.Player.HP.MaxHP())
	assert.True(t, w.GameOver())
	assert.Equal(t, obj.PlayerWaited, w.Act(tile(1, 0)))
	assert.Equal(t, 0, w.Turn)
}

func TestWorldMining(t *testing.T) {
	w := openWorld(t)
	w.Chunk.Colliders = append(w.Chunk.Colliders, &obj.Wall{Pos: tile(1, 0), Kind: obj.WallCave, Hardness: 2})
	before := len(w.Chunk.Colliders)

	assert.Equal(t, obj.PlayerMined, w.Act(tile(1, 0)))
	assert.Equal(t, obj.PlayerDug, w.Act(tile(1, 0)))
	assert.Len(t, w.Chunk.Colliders, before-1)
	assert.True(t, w.Chunk.IsFloor(tile(1, 0)))
}

func TestWorldApplySpecs(t *testing.T) {
	w := openWorld(t)
	k := w.SpawnKobold(tile(5, 5))

	spec := w.Specs.Kobold
	spec.MaxHP = 4
	spec.AggroRange = 8
	w.ApplyKoboldSpec(spec)
	assert.EqualValues(t, 4, k.HP.CurrentHP())
	assert.EqualValues(t, 8, k.Spec.AggroRange)
	assert.EqualValues(t, 8, w.Specs.Kobold.AggroRange)

	pspec := w.Specs.Player
	pspec.MaxHP = 20
	w.ApplyPlayerSpec(pspec)
	assert.EqualValues(t, 20, w.Player.HP.MaxHP())
	assert.EqualValues(t, 10, w.Player.HP.CurrentHP())

	waiter := obj.BrainFunc(func(obj.BrainView) obj.Action { return obj.ActionWait })
	w.SetBrain(waiter)
	assert.NotNil(t, k.Brain)
	later := w.SpawnKobold(tile(6, 6))
	assert.NotNil(t, later.Brain)
	assert.Equal(t, obj.ActionWait, later.Brain.Decide(obj.BrainView{HasTarget: true}))

	w.SetBrain(nil)
	assert.IsType(t, obj.GreedyBrain{}, k.Brain)
}

func TestSpawnKobolds(t *testing.T) {
	w := openWorld(t)
	require.NoError(t, w.SpawnKobolds(0))
	require.NoError(t, w.SpawnKobolds(10))
	assert.Len(t, w.Kobolds, 10)
	for _, k := range w.Kobolds {
		assert.Same(t, k, w.KoboldAt(k.Pos))
	}
	assert.Nil(t, w.KoboldAt(tile(0, 0)))
}

func TestWorldKoboldsBreakStructures(t *testing.T) {
	w := openWorld(t)
	wall := obj.NewStructure(prefabs.StructureSpec{Kind: "steel_wall", Width: 1, Height: 1, HP: 2, Collides: true}, tile(2, 0), 0)
	w.Chunk.AddStructure(wall)
	k := w.SpawnKobold(tile(3, 0))

	w.Act(cp.Vector{}) // spotted
	w.Act(cp.Vector{})
	assert.Len(t, w.Chunk.Structures, 1)
	assert.Equal(t, tile(3, 0), k.Pos)

	w.Act(cp.Vector{})
	assert.Empty(t, w.Chunk.Structures, "broken structures are cleared at the end of the turn")
	assert.Zero(t, w.Kills)

	w.Act(cp.Vector{})
	assert.Equal(t, tile(2, 0), k.Pos)
}
