package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/obj"
)

// keypad lists the keys for obj.KeypadDirections in the same order. Arrow
// keys double for the orthogonal moves.
var keypad = [9][]ebiten.Key{
	{ebiten.KeyNumpad1},
	{ebiten.KeyNumpad2, ebiten.KeyArrowDown},
	{ebiten.KeyNumpad3},
	{ebiten.KeyNumpad4, ebiten.KeyArrowLeft},
	{ebiten.KeyNumpad5, ebiten.KeyPeriod},
	{ebiten.KeyNumpad6, ebiten.KeyArrowRight},
	{ebiten.KeyNumpad7},
	{ebiten.KeyNumpad8, ebiten.KeyArrowUp},
	{ebiten.KeyNumpad9},
}

// Input holds the keys pressed this tick. Every field is edge triggered.
type Input struct {
	// Direction is the keypad move; Moved is false when no move key was hit.
	Direction cp.Vector
	Moved     bool

	Build       bool
	Cancel      bool
	Menu        bool
	RotateLeft  bool
	RotateRight bool
	Place       bool
	Restart     bool
	ToggleDebug bool
	CopySeed    bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.Direction, i.Moved = cp.Vector{}, false
	for idx, keys := range keypad {
		if anyJustPressed(keys...) {
			i.Direction = obj.KeypadDirections[idx]
			i.Moved = true
			break
		}
	}

	i.Build = anyJustPressed(ebiten.KeyB)
	i.Cancel = anyJustPressed(ebiten.KeyEscape)
	i.Menu = anyJustPressed(ebiten.KeyTab)
	i.RotateLeft = anyJustPressed(ebiten.KeyQ)
	i.RotateRight = anyJustPressed(ebiten.KeyE)
	i.Place = anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter)
	i.Restart = anyJustPressed(ebiten.KeyR)
	i.ToggleDebug = anyJustPressed(ebiten.KeyF3)
	i.CopySeed = anyJustPressed(ebiten.KeyC)
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
