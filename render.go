package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/obj"
	"golang.org/x/image/colornames"
)

var (
	floorColor     = colornames.Dimgray
	caveWallColor  = colornames.Saddlebrown
	oreWallColor   = colornames.Peru
	bedrockColor   = colornames.Black
	rubbleColor    = colornames.Darkgray
	crackColor     = colornames.Black
	structureColor = colornames.Steelblue
	playerColor    = colornames.Gold
	koboldColor    = colornames.Crimson
	hunterColor    = colornames.Orangered
	validColor     = color.NRGBA{R: 0x32, G: 0xcd, B: 0x32, A: 0x80}
	invalidColor   = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0x80}
	visitedColor   = color.NRGBA{R: 0x93, G: 0x70, B: 0xdb, A: 0x60}
	pathColor      = colornames.Cyan
)

func (g *Game) drawWorld(dst *ebiten.Image) {
	dst.Fill(bedrockColor)
	w := g.world
	zoom := float32(g.camera.Zoom())
	size := float32(common.TileSize) * zoom

	ox, oy := g.camera.WorldToScreen(cp.Vector{})
	span := float32(w.Chunk.Size) * size
	vector.FillRect(dst, ox, oy, span, span, floorColor, false)

	for _, d := range w.Chunk.Decals {
		if !g.camera.Visible(d.Pos) {
			continue
		}
		x, y := g.camera.WorldToScreen(d.Pos)
		switch d.Kind {
		case obj.DecalRubble:
			vector.FillRect(dst, x+size/4, y+size/4, size/2, size/2, rubbleColor, false)
		case obj.DecalCrack:
			// odd variants mirror the crack
			x0, y0, x1, y1 := x+size/4, y+size/4, x+size*3/4, y+size*3/4
			if d.Variant%2 == 1 {
				x0, x1 = x1, x0
			}
			vector.StrokeLine(dst, x0, y0, x1, y1, 2, crackColor, false)
		}
	}

	for _, wall := range w.Chunk.Colliders {
		if !g.camera.Visible(wall.Pos) {
			continue
		}
		x, y := g.camera.WorldToScreen(wall.Pos)
		vector.FillRect(dst, x, y, size, size, wallColor(wall), false)
	}

	for _, s := range w.Chunk.Structures {
		bb := s.BB()
		x, y := g.camera.WorldToScreen(cp.Vector{X: bb.L, Y: bb.B})
		bw, bh := float32(bb.R-bb.L)*zoom, float32(bb.T-bb.B)*zoom
		vector.FillRect(dst, x, y, bw, bh, structureColor, false)
		vector.StrokeRect(dst, x, y, bw, bh, 2, colornames.White, false)
	}

	if g.debug {
		g.drawSearches(dst, size)
	}

	for _, k := range w.Kobolds {
		clr := koboldColor
		if k.Target() != nil {
			clr = hunterColor
		}
		drawActor(dst, g.camera, k.Pos, size, clr)
	}
	if w.Player.HP.IsAlive() {
		drawActor(dst, g.camera, w.Player.Pos, size, playerColor)
	}

	if g.mode == modeBuild && g.blueprint != nil {
		bb := g.blueprint.BB()
		x, y := g.camera.WorldToScreen(cp.Vector{X: bb.L, Y: bb.B})
		bw, bh := float32(bb.R-bb.L)*zoom, float32(bb.T-bb.B)*zoom
		clr := invalidColor
		if g.blueprint.Valid {
			clr = validColor
		}
		vector.FillRect(dst, x, y, bw, bh, clr, false)
		vector.StrokeRect(dst, x, y, bw, bh, 3, colornames.Blue, false)
	}
}

// drawSearches overlays each kobold's last A* run: expanded tiles and the
// route still to walk.
func (g *Game) drawSearches(dst *ebiten.Image, size float32) {
	for _, k := range g.world.Kobolds {
		for _, p := range k.LastSearch.Visited {
			if !g.camera.Visible(p) {
				continue
			}
			x, y := g.camera.WorldToScreen(p)
			vector.FillRect(dst, x+2, y+2, size-4, size-4, visitedColor, false)
		}
		prev := common.TileCenter(k.Pos)
		for _, p := range k.Path {
			next := common.TileCenter(p)
			x0, y0 := g.camera.WorldToScreen(prev)
			x1, y1 := g.camera.WorldToScreen(next)
			vector.StrokeLine(dst, x0, y0, x1, y1, 2, pathColor, false)
			prev = next
		}
	}
}

func wallColor(w *obj.Wall) color.Color {
	switch w.Kind {
	case obj.WallIronOre:
		return oreWallColor
	case obj.WallCave:
		return caveWallColor
	default:
		return bedrockColor
	}
}

func drawActor(dst *ebiten.Image, cam *Camera, pos cp.Vector, size float32, clr color.Color) {
	x, y := cam.WorldToScreen(pos)
	inset := size / 6
	vector.FillRect(dst, x+inset, y+inset, size-2*inset, size-2*inset, clr, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	p := w.Player
	hud := fmt.Sprintf("HP %.0f/%.0f  Iron %d  Turn %d  Mode %s  Kobolds %d  Kills %d",
		p.HP.CurrentHP(), p.HP.MaxHP(), p.Iron, w.Turn, g.mode, len(w.Kobolds), w.Kills)
	if g.mode == modeBuild {
		hud += fmt.Sprintf("  Blueprint %s", g.selected.Name)
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 8, 24)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("seed %d  FPS %.1f", w.Seed, ebiten.ActualFPS()), 8, 40)
	}
	if w.GameOver() {
		ebitenutil.DebugPrintAt(screen, "You died. Press R to dig again.", common.BaseWidth/2-90, common.BaseHeight/2)
	}
}
