package render

import (
	"math"

	"github.com/stuXoon/game-of-life/pkg/life"
)

// Zoom limits in screen pixels per cell.
const (
	MinZoom = 1.0
	MaxZoom = 64.0
)

// Camera maps the unbounded cell lattice onto the screen. X and Y are the
// world coordinates (in cells) of the screen origin; Zoom is pixels per cell.
// All view state lives here, never in the engine.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns a camera at the world origin with a readable zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 16}
}

// WorldToScreen projects a world position onto screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx - c.X) * c.Zoom, (wy - c.Y) * c.Zoom
}

// ScreenToWorld inverts WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return c.X + sx/c.Zoom, c.Y + sy/c.Zoom
}

// ScreenToCell returns the lattice cell under a screen pixel.
func (c *Camera) ScreenToCell(sx, sy int) life.Cell {
	wx, wy := c.ScreenToWorld(float64(sx), float64(sy))
	return life.Cell{X: int(math.Floor(wx)), Y: int(math.Floor(wy))}
}

// Pan shifts the view by a screen-pixel delta.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// ZoomAt scales the zoom by factor while keeping the world point under the
// screen position (sx, sy) fixed, so zooming follows the cursor.
func (c *Camera) ZoomAt(factor float64, sx, sy float64) {
	if factor <= 0 {
		return
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	zoom := c.Zoom * factor
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	c.Zoom = zoom
	c.X = wx - sx/c.Zoom
	c.Y = wy - sy/c.Zoom
}

// CenterOn frames the bounding rectangle in a screen of the given pixel
// size, leaving the zoom untouched.
func (c *Camera) CenterOn(r life.Rect, screenW, screenH int) {
	cx := float64(r.MinX+r.MaxX+1) / 2
	cy := float64(r.MinY+r.MaxY+1) / 2
	c.X = cx - float64(screenW)/(2*c.Zoom)
	c.Y = cy - float64(screenH)/(2*c.Zoom)
}
