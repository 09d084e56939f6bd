//go:build !ebiten

package ui

import (
	"image/color"
	"time"

	"github.com/stuXoon/game-of-life/pkg/life"
)

// Info mirrors the GUI build's HUD snapshot.
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

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// SetTextColor is a no-op in the headless build.
func (h *HUD) SetTextColor(color.Color) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Info) {}
