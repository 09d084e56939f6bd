package core

import (
	"math/rand/v2"

	"github.com/stuXoon/game-of-life/pkg/life"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding of soups.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Soup returns random living cells in the w×h box whose top-left corner is
// (x0, y0), with the given fill density in [0, 1].
func (r *RNG) Soup(x0, y0, w, h int, density float64) []life.Cell {
	var out []life.Cell
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if r.Chance(density) {
				out = append(out, life.Cell{X: x, Y: y})
			}
		}
	}
	return out
}
