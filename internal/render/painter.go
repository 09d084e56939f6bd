//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/stuXoon/game-of-life/pkg/life"
)

// gridLineZoom is the zoom above which individual grid lines are visible.
const gridLineZoom = 6.0

// Painter projects engine state through a Camera onto an ebiten screen. It
// is a pure consumer: it polls the engine's snapshots once per frame and
// never mutates simulation state.
type Painter struct {
	theme Theme
}

// NewPainter returns a painter using the given theme.
func NewPainter(theme Theme) *Painter {
	return &Painter{theme: theme}
}

// SetTheme swaps the palette.
func (p *Painter) SetTheme(theme Theme) { p.theme = theme }

// Theme returns the active palette.
func (p *Painter) Theme() Theme { return p.theme }

// Draw renders the background, grid, living cells and capture flashes.
func (p *Painter) Draw(screen *ebiten.Image, cam *Camera, cells []life.ColoredCell, battle bool, flashes []Flash) {
	screen.Fill(p.theme.Background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	p.drawGrid(screen, cam, w, h)

	size := float32(cam.Zoom)
	for _, cc := range cells {
		sx, sy := cam.WorldToScreen(float64(cc.X), float64(cc.Y))
		if sx < -cam.Zoom || sy < -cam.Zoom || sx > float64(w) || sy > float64(h) {
			continue
		}
		col := p.theme.Cell
		if battle {
			if cc.Color == life.Color2 {
				col = p.theme.Colony2
			} else {
				col = p.theme.Colony1
			}
		}
		vector.DrawFilledRect(screen, float32(sx), float32(sy), size, size, col, false)
	}

	for _, fl := range flashes {
		sx, sy := cam.WorldToScreen(float64(fl.Cell.X), float64(fl.Cell.Y))
		if sx < -cam.Zoom || sy < -cam.Zoom || sx > float64(w) || sy > float64(h) {
			continue
		}
		vector.DrawFilledRect(screen, float32(sx), float32(sy), size, size, scaleAlpha(p.theme.Flash, fl.Strength), false)
	}
}

// DrawGhost previews a pending pattern at absolute cell positions.
func (p *Painter) DrawGhost(screen *ebiten.Image, cam *Camera, cells []life.Cell) {
	size := float32(cam.Zoom)
	for _, c := range cells {
		sx, sy := cam.WorldToScreen(float64(c.X), float64(c.Y))
		vector.DrawFilledRect(screen, float32(sx), float32(sy), size, size, p.theme.Ghost, false)
	}
}

func (p *Painter) drawGrid(screen *ebiten.Image, cam *Camera, w, h int) {
	if cam.Zoom < gridLineZoom {
		return
	}
	// First lattice line at or left of / above the view origin.
	startX := math.Floor(cam.X)
	startY := math.Floor(cam.Y)
	for x := startX; ; x++ {
		sx, _ := cam.WorldToScreen(x, 0)
		if sx > float64(w) {
			break
		}
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(h), 1, p.theme.GridLine, false)
	}
	for y := startY; ; y++ {
		_, sy := cam.WorldToScreen(0, y)
		if sy > float64(h) {
			break
		}
		vector.StrokeLine(screen, 0, float32(sy), float32(w), float32(sy), 1, p.theme.GridLine, false)
	}
}

// scaleAlpha fades a premultiplied-alpha color by s in [0, 1].
func scaleAlpha(c color.RGBA, s float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * s),
		G: uint8(float64(c.G) * s),
		B: uint8(float64(c.B) * s),
		A: uint8(float64(c.A) * s),
	}
}
