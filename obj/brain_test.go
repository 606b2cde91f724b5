package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	for _, a := range []Action{ActionWait, ActionStep, ActionPath, ActionAttack} {
		got, ok := ParseAction(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}
	got, ok := ParseAction("dance")
	assert.False(t, ok)
	assert.Equal(t, ActionWait, got)
	assert.Equal(t, "unknown", Action(42).String())
}

func TestGreedyBrain(t *testing.T) {
	cases := []struct {
		name string
		view BrainView
		want Action
	}{
		{"no_target", BrainView{}, ActionWait},
		{"adjacent", BrainView{HasTarget: true, Adjacent: true, HasPath: true}, ActionAttack},
		{"has_path", BrainView{HasTarget: true, HasPath: true, Distance: 4}, ActionPath},
		{"far", BrainView{HasTarget: true, Distance: 4}, ActionStep},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, GreedyBrain{}.Decide(c.view))
		})
	}
}
