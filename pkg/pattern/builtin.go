package pattern

import "github.com/stuXoon/game-of-life/pkg/life"

func cells(coords ...[2]int) []life.Cell {
	out := make([]life.Cell, len(coords))
	for i, c := range coords {
		out[i] = life.Cell{X: c[0], Y: c[1]}
	}
	return out
}

func init() {
	Register(Pattern{Name: "block", W: 2, H: 2, Cells: cells(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1},
	)})
	Register(Pattern{Name: "blinker", W: 3, H: 1, Cells: cells(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
	)})
	Register(Pattern{Name: "toad", W: 4, H: 2, Cells: cells(
		[2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0},
		[2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1},
	)})
	Register(Pattern{Name: "beacon", W: 4, H: 4, Cells: cells(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1},
		[2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3},
	)})
	Register(Pattern{Name: "glider", W: 3, H: 3, Cells: cells(
		[2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2},
	)})
	Register(Pattern{Name: "lwss", W: 5, H: 4, Cells: cells(
		[2]int{1, 0}, [2]int{4, 0},
		[2]int{0, 1},
		[2]int{0, 2}, [2]int{4, 2},
		[2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3},
	)})
	Register(Pattern{Name: "r-pentomino", W: 3, H: 3, Cells: cells(
		[2]int{1, 0}, [2]int{2, 0},
		[2]int{0, 1}, [2]int{1, 1},
		[2]int{1, 2},
	)})
	Register(Pattern{Name: "pulsar", W: 13, H: 13, Cells: pulsarCells()})
	Register(Pattern{Name: "gosper-gun", W: 36, H: 9, Cells: gosperGunCells()})
}

func pulsarCells() []life.Cell {
	// One quadrant of the period-3 pulsar as offsets from the 13x13 box
	// center at (6,6), mirrored into all four quadrants.
	arm := [][2]int{
		{2, 1}, {3, 1}, {4, 1},
		{1, 2}, {1, 3}, {1, 4},
		{6, 2}, {6, 3}, {6, 4},
		{2, 6}, {3, 6}, {4, 6},
	}
	out := make([]life.Cell, 0, len(arm)*4)
	for _, c := range arm {
		for _, sx := range [2]int{1, -1} {
			for _, sy := range [2]int{1, -1} {
				out = append(out, life.Cell{X: 6 + sx*c[0], Y: 6 + sy*c[1]})
			}
		}
	}
	return out
}

func gosperGunCells() []life.Cell {
	coords := [][2]int{
		{0, 4}, {1, 4}, {0, 5}, {1, 5},
		{10, 4}, {10, 5}, {10, 6},
		{11, 3}, {11, 7},
		{12, 2}, {12, 8}, {13, 2}, {13, 8},
		{14, 5},
		{15, 3}, {15, 7},
		{16, 4}, {16, 5}, {16, 6},
		{17, 5},
		{20, 2}, {20, 3}, {20, 4},
		{21, 2}, {21, 3}, {21, 4},
		{22, 1}, {22, 5},
		{24, 0}, {24, 1}, {24, 5}, {24, 6},
		{34, 2}, {34, 3}, {35, 2}, {35, 3},
	}
	return cells(coords...)
}
