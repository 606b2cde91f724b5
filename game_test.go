package main

import (
	"testing"

	"github.com/milk9111/delve/system"
	"github.com/stretchr/testify/assert"
)

func TestCopySeedWithoutClipboard(t *testing.T) {
	g := &Game{world: &system.World{Seed: 18446744073709551615}}
	g.copySeed()
	assert.Equal(t, "seed 18446744073709551615", g.status)
}
