package pattern

import (
	"slices"
	"testing"

	"github.com/stuXoon/game-of-life/pkg/life"
)

func sorted(cells []life.Cell) []life.Cell {
	out := append([]life.Cell(nil), cells...)
	slices.SortFunc(out, func(a, b life.Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

func TestRegistryBuiltins(t *testing.T) {
	names := Names()
	for _, want := range []string{"block", "blinker", "glider", "gosper-gun", "pulsar"} {
		if !slices.Contains(names, want) {
			t.Fatalf("builtin %q missing from registry (have %v)", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Names not sorted: %v", names)
	}
	p, ok := Lookup("glider")
	if !ok || len(p.Cells) != 5 {
		t.Fatalf("glider lookup = %+v, %v", p, ok)
	}
}

func TestRotateBlinker(t *testing.T) {
	p, _ := Lookup("blinker")
	r := Rotate(p, 1)
	if r.W != 1 || r.H != 3 {
		t.Fatalf("rotated box = %dx%d, want 1x3", r.W, r.H)
	}
	want := []life.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	if !slices.Equal(sorted(r.Cells), want) {
		t.Fatalf("rotated cells = %v, want %v", r.Cells, want)
	}
}

func TestRotateFullTurnIsIdentity(t *testing.T) {
	p, _ := Lookup("lwss")
	for _, turns := range []int{0, 4, -4, 8} {
		r := Rotate(p, turns)
		if r.W != p.W || r.H != p.H {
			t.Fatalf("turns=%d box = %dx%d, want %dx%d", turns, r.W, r.H, p.W, p.H)
		}
		if !slices.Equal(sorted(r.Cells), sorted(p.Cells)) {
			t.Fatalf("turns=%d cells differ", turns)
		}
	}
}

func TestRotateNegativeTurns(t *testing.T) {
	p, _ := Lookup("glider")
	if got, want := sorted(Rotate(p, -1).Cells), sorted(Rotate(p, 3).Cells); !slices.Equal(got, want) {
		t.Fatalf("-1 turn = %v, want same as 3 turns %v", got, want)
	}
}

func TestPlaceAtCenters(t *testing.T) {
	p, _ := Lookup("block")
	got := sorted(PlaceAt(p, 10, -10))
	want := []life.Cell{{X: 9, Y: -11}, {X: 10, Y: -11}, {X: 9, Y: -10}, {X: 10, Y: -10}}
	if !slices.Equal(got, sorted(want)) {
		t.Fatalf("placed = %v, want %v", got, want)
	}
}

func TestPatternsBehaveOnEngine(t *testing.T) {
	// The registered pulsar must be a period-3 oscillator and the gun's
	// cell count must match the canonical 36.
	p, _ := Lookup("pulsar")
	e := life.NewFromCells(PlaceAt(p, 0, 0))
	start := sorted(e.LivingCells())
	for i := 0; i < 3; i++ {
		e.NextGeneration()
	}
	if !slices.Equal(sorted(e.LivingCells()), start) {
		t.Fatal("pulsar is not period 3")
	}

	gun, _ := Lookup("gosper-gun")
	if len(gun.Cells) != 36 {
		t.Fatalf("gosper gun has %d cells, want 36", len(gun.Cells))
	}
}
