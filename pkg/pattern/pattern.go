// Package pattern holds a registry of named cell patterns plus the rotation
// and placement helpers the input layer uses to stamp them onto an engine.
// The engine itself knows nothing about patterns.
package pattern

import (
	"sort"

	"github.com/stuXoon/game-of-life/pkg/life"
)

// Pattern is a static shape: cells relative to the top-left corner of a
// declared W×H bounding box.
type Pattern struct {
	Name  string
	W, H  int
	Cells []life.Cell
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name. Empty names are ignored.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists all registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rotate returns the pattern turned clockwise by the given number of quarter
// turns. Width and height swap on odd turns.
func Rotate(p Pattern, quarterTurns int) Pattern {
	quarterTurns = ((quarterTurns % 4) + 4) % 4
	for ; quarterTurns > 0; quarterTurns-- {
		cells := make([]life.Cell, len(p.Cells))
		for i, c := range p.Cells {
			cells[i] = life.Cell{X: p.H - 1 - c.Y, Y: c.X}
		}
		p = Pattern{Name: p.Name, W: p.H, H: p.W, Cells: cells}
	}
	return p
}

// PlaceAt centers the pattern's bounding box on the world cell (cx, cy) and
// returns the absolute coordinates, ready for Engine.SetCells.
func PlaceAt(p Pattern, cx, cy int) []life.Cell {
	dx := cx - p.W/2
	dy := cy - p.H/2
	out := make([]life.Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = life.Cell{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}
