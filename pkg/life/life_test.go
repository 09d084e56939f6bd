package life

import (
	"slices"
	"testing"
)

func sortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

func sameCells(got []Cell, want []Cell) bool {
	sortCells(got)
	sortCells(want)
	return slices.Equal(got, want)
}

func TestToggleCell(t *testing.T) {
	e := New()
	if alive := e.ToggleCell(3, -7); !alive {
		t.Fatal("first toggle must report alive")
	}
	if !e.IsAlive(3, -7) {
		t.Fatal("cell must be alive after first toggle")
	}
	if alive := e.ToggleCell(3, -7); alive {
		t.Fatal("second toggle must report dead")
	}
	if e.IsAlive(3, -7) {
		t.Fatal("cell must be dead after second toggle")
	}
}

func TestSetCellsIdempotent(t *testing.T) {
	e := New()
	cells := []Cell{{0, 0}, {1, 0}, {0, 0}, {1, 0}}
	e.SetCells(cells)
	e.SetCell(1, 0)
	if e.Population() != 2 {
		t.Fatalf("population = %d, want 2", e.Population())
	}
}

func TestKillCell(t *testing.T) {
	e := NewFromCells([]Cell{{5, 5}})
	e.KillCell(5, 5)
	if e.IsAlive(5, 5) {
		t.Fatal("killed cell must be dead")
	}
	// Killing a dead cell is a no-op.
	e.KillCell(5, 5)
	if e.Population() != 0 {
		t.Fatalf("population = %d, want 0", e.Population())
	}
}

func TestBounds(t *testing.T) {
	e := New()
	if _, ok := e.Bounds(); ok {
		t.Fatal("empty grid must have no bounds")
	}
	e.SetCells([]Cell{{-4, 2}, {7, -9}, {0, 0}})
	r, ok := e.Bounds()
	if !ok {
		t.Fatal("non-empty grid must have bounds")
	}
	want := Rect{MinX: -4, MinY: -9, MaxX: 7, MaxY: 2}
	if r != want {
		t.Fatalf("bounds = %+v, want %+v", r, want)
	}
}

func TestClearResetsEverything(t *testing.T) {
	e := NewFromCells([]Cell{{0, 0}, {1, 0}, {2, 0}})
	e.NextGeneration()
	e.Clear()
	if e.Population() != 0 {
		t.Fatalf("population = %d, want 0", e.Population())
	}
	if e.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", e.Generation())
	}
	if st := e.Stats(); st.Births != 0 || st.Deaths != 0 {
		t.Fatalf("stats = %+v, want zeroed", st)
	}
}

func TestLivingCellsIsSnapshot(t *testing.T) {
	e := NewFromCells([]Cell{{1, 1}})
	got := e.LivingCells()
	e.SetCell(2, 2)
	if len(got) != 1 {
		t.Fatalf("snapshot grew with engine: %v", got)
	}
	if !sameCells(e.LivingCells(), []Cell{{1, 1}, {2, 2}}) {
		t.Fatal("engine must not alias returned slice")
	}
}

func TestClassicModeIgnoresColors(t *testing.T) {
	e := New()
	e.SetColoredCell(0, 0, Color2)
	if got := e.CellColor(0, 0); got != ColorNone {
		t.Fatalf("classic cell color = %v, want ColorNone", got)
	}
	e.SetColoredCells([]Cell{{1, 0}}, Color2)
	for _, cc := range e.ColoredCells() {
		if cc.Color != ColorNone {
			t.Fatalf("classic ColoredCells reported %v for %v", cc.Color, cc.Cell)
		}
	}
}

func TestCellColorDeadCell(t *testing.T) {
	e := New()
	e.SetBattle(true)
	if got := e.CellColor(9, 9); got != ColorNone {
		t.Fatalf("dead cell color = %v, want ColorNone", got)
	}
}

func TestSetBattleDiscardsColors(t *testing.T) {
	e := New()
	e.SetBattle(true)
	e.SetColoredCell(0, 0, Color2)
	e.SetBattle(false)
	if got := e.CellColor(0, 0); got != ColorNone {
		t.Fatalf("color survived leaving battle mode: %v", got)
	}
	// Re-entering battle mode does not restore discarded colors.
	e.SetBattle(true)
	if got := e.CellColor(0, 0); got != ColorNone {
		t.Fatalf("color reappeared after re-enabling battle mode: %v", got)
	}
}
