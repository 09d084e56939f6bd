//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/stuXoon/game-of-life/pkg/life"
)

// Info is the per-frame snapshot the HUD renders. The app fills it by
// polling engine accessors once per tick; the HUD holds no simulation state.
type Info struct {
	Generation int
	Stats      life.StepStats
	Battle     bool
	Result     life.Result
	Paused     bool
	Interval   time.Duration
	Pattern    string
	Brush      life.Color
	Theme      string
}

// HUD paints the stats panel in the top-left corner of the screen.
type HUD struct {
	textColor color.Color
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	return &HUD{textColor: color.White}
}

// SetTextColor changes the panel text color, normally from the theme.
func (h *HUD) SetTextColor(c color.Color) { h.textColor = c }

// Draw renders the panel.
func (h *HUD) Draw(screen *ebiten.Image, info Info) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13

	lines := []string{
		fmt.Sprintf("gen %d  pop %d  +%d -%d",
			info.Generation, info.Stats.Population, info.Stats.Births, info.Stats.Deaths),
	}
	if info.Battle {
		lines = append(lines, fmt.Sprintf("battle  blue %d  red %d  brush %s",
			info.Stats.Population1, info.Stats.Population2, brushName(info.Brush)))
		if v := verdict(info.Result); v != "" {
			lines = append(lines, v)
		}
	}
	state := "running"
	if info.Paused {
		state = "paused"
	}
	lines = append(lines, fmt.Sprintf("%s  step %v  theme %s", state, info.Interval, info.Theme))
	if info.Pattern != "" {
		lines = append(lines, fmt.Sprintf("pattern %s (click stamps, R rotates)", info.Pattern))
	}

	y := lineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, panelPadding, y, h.textColor)
		y += lineHeight
	}
}

func brushName(c life.Color) string {
	if c == life.Color2 {
		return "red"
	}
	return "blue"
}

func verdict(r life.Result) string {
	switch r {
	case life.ResultColor1Wins:
		return "blue colony wins"
	case life.ResultColor2Wins:
		return "red colony wins"
	case life.ResultDraw:
		return "draw"
	}
	return ""
}

const (
	panelPadding = 8
	lineHeight   = 16
)
