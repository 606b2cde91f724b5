package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
)

// Camera follows a world point and maps world coordinates to the screen.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	off     *ebiten.Image

	// smoothing factor (0..1). higher -> faster follow
	smooth float64
	// world bounds in pixels; an empty box means unbounded
	bounds cp.BB
}

func NewCamera(screenW, screenH int, zoom float64) *Camera {
	return &Camera{
		screenW: screenW,
		screenH: screenH,
		zoom:    zoom,
		smooth:  0.2,
		PosX:    float64(screenW) / 2.0,
		PosY:    float64(screenH) / 2.0,
	}
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetWorldBounds limits how far the view may scroll.
func (c *Camera) SetWorldBounds(bb cp.BB) {
	c.bounds = bb
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(p cp.Vector) (float32, float32) {
	x, y := c.ViewTopLeft()
	return float32((p.X - x) * c.zoom), float32((p.Y - y) * c.zoom)
}

// Visible reports whether the tile at p intersects the view.
func (c *Camera) Visible(p cp.Vector) bool {
	x, y := c.ViewTopLeft()
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return p.X+common.TileSize >= x && p.X <= x+viewW && p.Y+common.TileSize >= y && p.Y <= y+viewH
}

// Update moves the camera toward the target world coordinate. Call once per
// tick for consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	c.settle()
}

// SnapTo centres the camera immediately.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.settle()
}

func (c *Camera) settle() {
	// snap position to 1/zoom grid to align texels to integer screen pixels
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}

	if c.bounds == (cp.BB{}) {
		return
	}
	halfW := float64(c.screenW) / c.zoom / 2.0
	halfH := float64(c.screenH) / c.zoom / 2.0
	if c.bounds.R-c.bounds.L < 2*halfW {
		c.PosX = (c.bounds.L + c.bounds.R) / 2.0
	} else {
		c.PosX = common.Clamp(c.PosX, c.bounds.L+halfW, c.bounds.R-halfW)
	}
	if c.bounds.T-c.bounds.B < 2*halfH {
		c.PosY = (c.bounds.B + c.bounds.T) / 2.0
	} else {
		c.PosY = common.Clamp(c.PosY, c.bounds.B+halfH, c.bounds.T-halfH)
	}
}

// Render lets drawWorld paint into an offscreen image sized to the screen and
// then copies it onto screen.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}
	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
