package world

import (
	"math"

	"github.com/younwookim/ld33/internal/domain/entity"
	"github.com/younwookim/ld33/internal/infrastructure/tween"
)

// Dead zone around the camera centre, in tiles
const (
	followBehind = 3.0
	followAhead  = 2.0
)

// Camera is an orthographic camera centred on (X, Y) in tile units.
// A Zoom below 1 magnifies the view.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera creates a camera showing the first screen of a map
func NewCamera() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

// Reset moves the camera back to the first screen at zoom 1
func (c *Camera) Reset() {
	c.X = float64(entity.ScreenTilesWide) / 2
	c.Y = float64(entity.ScreenTilesHigh) / 2
	c.Zoom = 1
}

// Follow drags the camera so that x stays inside the dead zone
func (c *Camera) Follow(x float64) {
	if x < c.X-followBehind {
		c.X = x + followBehind
	}
	if x > c.X+followAhead {
		c.X = x - followAhead
	}
}

// Clamp keeps the camera x within [lo, hi]
func (c *Camera) Clamp(lo, hi float64) {
	c.X = math.Min(hi, math.Max(lo, c.X))
}

// TweenTo builds a single tween over position and zoom
func (c *Camera) TweenTo(m *tween.Manager, duration, x, y, zoom float64) *tween.Tween {
	return m.To(duration, &c.X, &c.Y, &c.Zoom).Target(x, y, zoom)
}

// PixelsPerTile returns the on-screen size of one tile for a screen width
func (c *Camera) PixelsPerTile(screenW int) float64 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return float64(screenW) / float64(entity.ScreenTilesWide) / zoom
}

// ToScreen converts a world rectangle into screen pixels (top-left origin)
func (c *Camera) ToScreen(r entity.Rect, screenW, screenH int) (x, y, w, h float64) {
	scale := c.PixelsPerTile(screenW)
	x = (r.X-c.X)*scale + float64(screenW)/2
	y = float64(screenH)/2 - (r.Y+r.H-c.Y)*scale
	return x, y, r.W * scale, r.H * scale
}

// VisibleTiles returns the inclusive tile range the camera can see
func (c *Camera) VisibleTiles(screenW, screenH int) (startX, startY, endX, endY int) {
	scale := c.PixelsPerTile(screenW)
	halfW := float64(screenW) / 2 / scale
	halfH := float64(screenH) / 2 / scale
	return int(math.Floor(c.X - halfW)), int(math.Floor(c.Y - halfH)),
		int(math.Ceil(c.X + halfW)), int(math.Ceil(c.Y + halfH))
}
