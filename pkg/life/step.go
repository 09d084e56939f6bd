package life

// mooreOffsets spans the eight neighbors of a cell.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NextGeneration advances the living set by one generation and returns the
// step statistics, which are also retained for Stats. The computation is a
// pure function of current engine state.
func (e *Engine) NextGeneration() StepStats {
	if e.battle {
		e.stats = e.stepBattle()
	} else {
		e.stats = e.stepClassic()
	}
	e.generation++
	e.stats.Population = len(e.cells)
	return e.stats
}

// candidates returns every living cell plus all of its Moore neighbors. Any
// cell outside this set has zero living neighbors and trivially stays dead,
// which is what bounds the infinite grid to a finite scan.
func (e *Engine) candidates() map[Cell]struct{} {
	cand := make(map[Cell]struct{}, len(e.cells)*4)
	for c := range e.cells {
		cand[c] = struct{}{}
		for _, d := range mooreOffsets {
			cand[Cell{c.X + d[0], c.Y + d[1]}] = struct{}{}
		}
	}
	return cand
}

func (e *Engine) stepClassic() StepStats {
	var st StepStats
	next := make(map[Cell]Color, len(e.cells))
	for c := range e.candidates() {
		n := 0
		for _, d := range mooreOffsets {
			if _, ok := e.cells[Cell{c.X + d[0], c.Y + d[1]}]; ok {
				n++
			}
		}
		_, alive := e.cells[c]
		switch {
		case alive && (n == 2 || n == 3):
			next[c] = ColorNone
		case alive:
			st.Deaths++
		case n == 3:
			next[c] = ColorNone
			st.Births++
		}
	}
	e.cells = next
	return st
}

func (e *Engine) stepBattle() StepStats {
	st := StepStats{Captured: []Capture{}}
	next := make(map[Cell]Color, len(e.cells))
	for c := range e.candidates() {
		var n1, n2 int
		for _, d := range mooreOffsets {
			col, ok := e.cells[Cell{c.X + d[0], c.Y + d[1]}]
			if !ok {
				continue
			}
			if effectiveColor(col) == Color1 {
				n1++
			} else {
				n2++
			}
		}
		total := n1 + n2

		old, alive := e.cells[c]
		switch {
		case alive && (total == 2 || total == 3):
			// Majority vote over the neighborhood; exact ties go to
			// colony 1. The asymmetry is a deliberate fixed policy.
			won := majority(n1, n2)
			next[c] = won
			if was := effectiveColor(old); was != won {
				st.Captured = append(st.Captured, Capture{X: c.X, Y: c.Y, From: was, To: won})
			}
		case alive:
			st.Deaths++
		case total == 3:
			next[c] = majority(n1, n2)
			st.Births++
		}
	}
	e.cells = next
	st.Population1, st.Population2 = e.populationByColor()
	return st
}

func majority(n1, n2 int) Color {
	if n2 > n1 {
		return Color2
	}
	return Color1
}

func (e *Engine) populationByColor() (p1, p2 int) {
	for _, col := range e.cells {
		if effectiveColor(col) == Color1 {
			p1++
		} else {
			p2++
		}
	}
	return p1, p2
}

// Result is the terminal condition of a battle.
type Result uint8

const (
	ResultOngoing Result = iota
	ResultColor1Wins
	ResultColor2Wins
	ResultDraw
)

// BattleResult inspects the colored populations for a terminal condition.
// It reports ResultOngoing outside battle mode and before the first advance.
// A terminal result does not lock the engine; callers decide whether to keep
// stepping.
func (e *Engine) BattleResult() Result {
	if !e.battle || e.generation == 0 {
		return ResultOngoing
	}
	p1, p2 := e.populationByColor()
	switch {
	case p1 == 0 && p2 == 0:
		return ResultDraw
	case p2 == 0:
		return ResultColor1Wins
	case p1 == 0:
		return ResultColor2Wins
	}
	return ResultOngoing
}
