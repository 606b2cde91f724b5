package obj

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/delve/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkDamageTerrain(t *testing.T) {
	c := NewChunk(8, rand.New(rand.NewPCG(1, 1)))
	c.Colliders = []*Wall{
		{Pos: tile(1, 0), Kind: WallCave, Hardness: 2},
		{Pos: tile(2, 0), Kind: WallIronOre, Hardness: 1, Iron: 3},
		{Pos: tile(-1, 0), Kind: WallBasic},
	}

	assert.Nil(t, c.DamageTerrain(0, 1))
	require.Len(t, c.Decals, 1)
	assert.Equal(t, DecalCrack, c.Decals[0].Kind)
	assert.GreaterOrEqual(t, c.Decals[0].Variant, 0)
	assert.Less(t, c.Decals[0].Variant, CrackVariants)

	broken := c.DamageTerrain(0, 1)
	require.NotNil(t, broken)
	assert.Equal(t, tile(1, 0), broken.Pos)
	assert.Equal(t, DecalRubble, c.Decals[1].Kind)
	require.Len(t, c.Colliders, 2)

	i, _ := c.WallAt(tile(2, 0))
	require.Equal(t, 0, i)
	broken = c.DamageTerrain(i, 5)
	require.NotNil(t, broken)
	assert.Equal(t, 3, broken.Iron)

	// bedrock shrugs everything off
	assert.Nil(t, c.DamageTerrain(0, 100))
	assert.Len(t, c.Colliders, 1)
	assert.Len(t, c.Decals, 3)

	assert.Nil(t, c.DamageTerrain(5, 1))
	assert.Nil(t, c.DamageTerrain(-1, 1))
}

func TestChunkQueries(t *testing.T) {
	c := NewChunk(4, nil)
	c.Colliders = []*Wall{{Pos: tile(1, 1), Kind: WallCave, Hardness: 1}}
	c.AddStructure(NewStructure(prefabs.StructureSpec{Kind: "s", Width: 2, Height: 1, HP: 1, Collides: true}, tile(2, 3), 0))

	i, w := c.WallAt(tile(1, 1))
	assert.Equal(t, 0, i)
	assert.NotNil(t, w)
	i, w = c.WallAt(tile(0, 1))
	assert.Equal(t, -1, i)
	assert.Nil(t, w)

	assert.True(t, c.IsFloor(tile(0, 0)))
	assert.False(t, c.IsFloor(tile(1, 1)))
	assert.False(t, c.IsFloor(tile(3, 3)), "structure tile")
	assert.False(t, c.IsFloor(tile(4, 0)), "out of bounds")
	assert.False(t, c.IsFloor(tile(0, -1)))

	floor := c.FloorTiles()
	assert.Len(t, floor, 16-1-2)
	assert.Equal(t, tile(0, 0), floor[0])
	assert.NotContains(t, floor, tile(2, 3))

	assert.NotNil(t, c.StructureAt(tile(2, 3)))
	assert.Nil(t, c.StructureAt(tile(1, 3)))
}

func TestChunkRemoveDeadStructures(t *testing.T) {
	c := NewChunk(8, nil)
	spec := prefabs.StructureSpec{Kind: "s", Width: 1, Height: 1, HP: 2}
	a := NewStructure(spec, tile(0, 0), 0)
	b := NewStructure(spec, tile(2, 0), 0)
	c.AddStructure(a)
	c.AddStructure(b)

	a.HP.ApplyDamage(a.HP.MaxHP())
	c.RemoveDeadStructures()
	require.Len(t, c.Structures, 1)
	assert.Same(t, b, c.Structures[0])
}

func TestNilChunk(t *testing.T) {
	var c *Chunk
	i, w := c.WallAt(tile(0, 0))
	assert.Equal(t, -1, i)
	assert.Nil(t, w)
	assert.False(t, c.IsFloor(tile(0, 0)))
	assert.Nil(t, c.FloorTiles())
	assert.Nil(t, c.DamageTerrain(0, 1))
	for range c.ColliderPositions() {
		t.Fatal("nil chunk has no colliders")
	}
}
