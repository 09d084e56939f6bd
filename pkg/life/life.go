// Package life implements a sparse, unbounded Game of Life engine with an
// optional two-colony battle variant. The engine is a plain synchronous data
// structure: it is not safe for concurrent use and expects a single caller.
package life

// Cell is a coordinate on the unbounded integer lattice.
type Cell struct {
	X int
	Y int
}

// Color identifies the colony that owns a living cell. ColorNone marks
// classic-mode cells and battle-mode cells toggled alive without a colony.
type Color uint8

const (
	ColorNone Color = iota
	Color1
	Color2
)

// ColoredCell pairs a coordinate with its owning colony.
type ColoredCell struct {
	Cell
	Color Color
}

// Capture records a surviving cell that changed owner during a step.
type Capture struct {
	X    int
	Y    int
	From Color
	To   Color
}

// StepStats describes the outcome of the most recent generation advance.
// Births and Deaths cover that step only; they are not cumulative.
type StepStats struct {
	Births      int
	Deaths      int
	Population  int
	Population1 int
	Population2 int
	Captured    []Capture
}

// Rect is the axis-aligned bounding box of the living set.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Engine owns the living-cell set and advances it one generation at a time.
type Engine struct {
	cells      map[Cell]Color
	battle     bool
	generation int
	stats      StepStats
}

// New returns an empty engine in classic mode.
func New() *Engine {
	return &Engine{cells: make(map[Cell]Color)}
}

// NewFromCells returns a classic-mode engine pre-seeded with the given cells.
func NewFromCells(cells []Cell) *Engine {
	e := New()
	e.SetCells(cells)
	return e
}

// SetBattle switches between classic and battle mode. Leaving battle mode
// discards all color assignments; they are not restored on re-entry.
func (e *Engine) SetBattle(on bool) {
	if e.battle && !on {
		for c := range e.cells {
			e.cells[c] = ColorNone
		}
	}
	e.battle = on
}

// Battle reports whether the engine is in battle mode.
func (e *Engine) Battle() bool { return e.battle }

// SetCell marks a cell alive. Already-living cells are left untouched.
func (e *Engine) SetCell(x, y int) {
	c := Cell{x, y}
	if _, ok := e.cells[c]; !ok {
		e.cells[c] = ColorNone
	}
}

// SetColoredCell marks a cell alive and assigns it to a colony. The color is
// always (re)assigned, even when the cell was already alive. Outside battle
// mode the color argument is ignored; classic cells never carry one.
func (e *Engine) SetColoredCell(x, y int, color Color) {
	if !e.battle {
		color = ColorNone
	}
	e.cells[Cell{x, y}] = color
}

// SetCells marks every coordinate in cells alive. Duplicates are harmless.
func (e *Engine) SetCells(cells []Cell) {
	for _, c := range cells {
		e.SetCell(c.X, c.Y)
	}
}

// SetColoredCells marks every coordinate alive under the given colony.
func (e *Engine) SetColoredCells(cells []Cell, color Color) {
	if !e.battle {
		color = ColorNone
	}
	for _, c := range cells {
		e.cells[c] = color
	}
}

// KillCell removes a cell from the living set along with any color.
func (e *Engine) KillCell(x, y int) {
	delete(e.cells, Cell{x, y})
}

// ToggleCell flips a cell between alive and dead and reports the new state.
// A cell toggled alive this way carries no colony until it is captured.
func (e *Engine) ToggleCell(x, y int) bool {
	return e.ToggleColoredCell(x, y, ColorNone)
}

// ToggleColoredCell flips a cell and, when it becomes alive, assigns the
// given colony. It reports the new alive state.
func (e *Engine) ToggleColoredCell(x, y int, color Color) bool {
	c := Cell{x, y}
	if _, ok := e.cells[c]; ok {
		delete(e.cells, c)
		return false
	}
	if !e.battle {
		color = ColorNone
	}
	e.cells[c] = color
	return true
}

// IsAlive reports whether the cell is in the living set.
func (e *Engine) IsAlive(x, y int) bool {
	_, ok := e.cells[Cell{x, y}]
	return ok
}

// CellColor returns the colony owning the cell, or ColorNone for a dead or
// colorless cell.
func (e *Engine) CellColor(x, y int) Color {
	return e.cells[Cell{x, y}]
}

// LivingCells returns a fresh slice of all living coordinates. Order is
// unspecified.
func (e *Engine) LivingCells() []Cell {
	out := make([]Cell, 0, len(e.cells))
	for c := range e.cells {
		out = append(out, c)
	}
	return out
}

// ColoredCells returns a fresh slice of all living coordinates with their
// colony. In battle mode a colorless living cell is reported as Color1, the
// same default the step rules apply. Order is unspecified.
func (e *Engine) ColoredCells() []ColoredCell {
	out := make([]ColoredCell, 0, len(e.cells))
	for c, col := range e.cells {
		if e.battle {
			col = effectiveColor(col)
		}
		out = append(out, ColoredCell{Cell: c, Color: col})
	}
	return out
}

// Clear empties the living set and resets the generation counter and the
// last-step statistics to zero.
func (e *Engine) Clear() {
	e.cells = make(map[Cell]Color)
	e.generation = 0
	e.stats = StepStats{}
}

// Generation returns the number of completed advances since the last clear.
func (e *Engine) Generation() int { return e.generation }

// Population returns the current number of living cells.
func (e *Engine) Population() int { return len(e.cells) }

// Stats returns the statistics recorded by the most recent advance.
func (e *Engine) Stats() StepStats { return e.stats }

// Bounds returns the minimal rectangle covering all living cells. ok is
// false when the grid is empty.
func (e *Engine) Bounds() (r Rect, ok bool) {
	for c := range e.cells {
		if !ok {
			r = Rect{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			ok = true
			continue
		}
		if c.X < r.MinX {
			r.MinX = c.X
		}
		if c.X > r.MaxX {
			r.MaxX = c.X
		}
		if c.Y < r.MinY {
			r.MinY = c.Y
		}
		if c.Y > r.MaxY {
			r.MaxY = c.Y
		}
	}
	return r, ok
}

// effectiveColor maps a colorless living cell to Color1. Battle-mode rules
// and reporting treat colorless cells as colony 1 throughout, so a cell
// toggled alive without a colony behaves as colony 1 until captured.
func effectiveColor(c Color) Color {
	if c == ColorNone {
		return Color1
	}
	return c
}
