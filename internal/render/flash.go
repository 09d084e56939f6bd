package render

import (
	"time"

	"github.com/stuXoon/game-of-life/pkg/life"
)

// FlashDuration is how long a captured cell glows.
const FlashDuration = 400 * time.Millisecond

// Flash is an active capture highlight with its eased strength in [0, 1].
type Flash struct {
	Cell     life.Cell
	Strength float64
}

// Flasher turns the engine's captured-cell reports into timed, eased
// highlights. The engine only says which cells changed owner; everything
// about how that looks lives here.
type Flasher struct {
	remaining map[life.Cell]time.Duration
}

// NewFlasher returns an empty Flasher.
func NewFlasher() *Flasher {
	return &Flasher{remaining: make(map[life.Cell]time.Duration)}
}

// Add restarts the highlight for every captured cell of a step.
func (f *Flasher) Add(captured []life.Capture) {
	for _, c := range captured {
		f.remaining[life.Cell{X: c.X, Y: c.Y}] = FlashDuration
	}
}

// Advance ages all highlights by dt and drops expired ones.
func (f *Flasher) Advance(dt time.Duration) {
	for cell, left := range f.remaining {
		left -= dt
		if left <= 0 {
			delete(f.remaining, cell)
			continue
		}
		f.remaining[cell] = left
	}
}

// Active returns the current highlights with ease-out strength.
func (f *Flasher) Active() []Flash {
	if len(f.remaining) == 0 {
		return nil
	}
	out := make([]Flash, 0, len(f.remaining))
	for cell, left := range f.remaining {
		t := float64(left) / float64(FlashDuration)
		out = append(out, Flash{Cell: cell, Strength: easeOutQuad(t)})
	}
	return out
}

// Clear drops all active highlights.
func (f *Flasher) Clear() {
	f.remaining = make(map[life.Cell]time.Duration)
}

// easeOutQuad maps linear remaining-time t in [0,1] to a quadratic ease-out.
func easeOutQuad(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t * (2 - t)
}
