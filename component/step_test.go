package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStep(t *testing.T) {
	cases := []struct {
		name      string
		obstacles ObstacleSet
		current   cp.Vector
		target    cp.Vector
		want      cp.Vector
	}{
		{
			name:      "straight_east",
			obstacles: NewObstacleSet(),
			current:   tile(0, 0),
			target:    tile(5, 0),
			want:      tile(1, 0),
		},
		{
			name:      "diagonal",
			obstacles: NewObstacleSet(),
			current:   tile(0, 0),
			target:    tile(-4, 4),
			want:      tile(-1, 1),
		},
		{
			name:      "blocked_east_prefers_northeast",
			obstacles: NewObstacleSet(tile(1, 0)),
			current:   tile(0, 0),
			target:    tile(3, 0),
			want:      tile(1, -1),
		},
		{
			name:      "tie_goes_to_north",
			obstacles: NewObstacleSet(),
			current:   tile(0, 0),
			target:    tile(0, 0),
			want:      tile(0, -1),
		},
		{
			name:      "tie_skips_blocked_north",
			obstacles: NewObstacleSet(tile(0, -1)),
			current:   tile(0, 0),
			target:    tile(0, 0),
			want:      tile(1, 0),
		},
		{
			name:      "off_grid_target",
			obstacles: NewObstacleSet(),
			current:   tile(2, 2),
			target:    cp.Vector{X: 1000, Y: 120},
			want:      tile(3, 2),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := NextStep(c.obstacles, c.current, c.target)
			require.True(t, ok)
			assert.Equal(t, c.want, got)
			assert.False(t, c.obstacles.IsBlocked(got))
		})
	}
}

func TestNextStepAllBlocked(t *testing.T) {
	current := tile(4, 4)
	obstacles := NewObstacleSet()
	for _, off := range common.Adjacent8 {
		obstacles[current.Add(off)] = struct{}{}
	}

	_, ok := NextStep(obstacles, current, tile(10, 10))
	assert.False(t, ok)
}

func TestNextStepTowardEnclosedGoal(t *testing.T) {
	goal := tile(5, 0)
	obstacles := NewObstacleSet()
	for _, off := range common.Adjacent8 {
		obstacles[goal.Add(off)] = struct{}{}
	}

	// Standing on the wall west of the goal, the goal itself is still open.
	got, ok := NextStep(obstacles, tile(4, 0), goal)
	require.True(t, ok)
	assert.Equal(t, goal, got)

	// Two tiles out, the best open neighbour sits just outside the ring.
	got, ok = NextStep(obstacles, tile(2, 0), goal)
	require.True(t, ok)
	assert.False(t, obstacles.IsBlocked(got))
	assert.Equal(t, tile(3, 0), got)
}

func TestNextStepNeverReturnsBlocked(t *testing.T) {
	current := tile(0, 0)
	for skip := range common.Adjacent8 {
		obstacles := NewObstacleSet()
		for i, off := range common.Adjacent8 {
			if i != skip {
				obstacles[current.Add(off)] = struct{}{}
			}
		}
		got, ok := NextStep(obstacles, current, tile(-7, 3))
		require.True(t, ok)
		assert.Equal(t, current.Add(common.Adjacent8[skip]), got)
	}
}
