package life

// Snapshot is a full copy of engine state for save/restore. It is the schema
// an external persistence layer would serialize; the engine itself commits to
// no file format.
type Snapshot struct {
	Cells      []ColoredCell `json:"cells"`
	Battle     bool          `json:"battle"`
	Generation int           `json:"generation"`
	Births     int           `json:"births"`
	Deaths     int           `json:"deaths"`
}

// Export copies the current cell set, colors, generation and last-step
// birth/death counts into an independent snapshot. Mutating the snapshot
// never affects the engine, and vice versa.
func (e *Engine) Export() Snapshot {
	s := Snapshot{
		Cells:      make([]ColoredCell, 0, len(e.cells)),
		Battle:     e.battle,
		Generation: e.generation,
		Births:     e.stats.Births,
		Deaths:     e.stats.Deaths,
	}
	for c, col := range e.cells {
		s.Cells = append(s.Cells, ColoredCell{Cell: c, Color: col})
	}
	return s
}

// Import replaces all engine state with a copy of the snapshot. The engine
// keeps no reference to the snapshot's slices.
func (e *Engine) Import(s Snapshot) {
	e.battle = s.Battle
	e.generation = s.Generation
	e.stats = StepStats{Births: s.Births, Deaths: s.Deaths}
	e.cells = make(map[Cell]Color, len(s.Cells))
	for _, cc := range s.Cells {
		col := cc.Color
		if !e.battle {
			col = ColorNone
		}
		e.cells[cc.Cell] = col
	}
	e.stats.Population = len(e.cells)
	if e.battle {
		e.stats.Population1, e.stats.Population2 = e.populationByColor()
	}
}
