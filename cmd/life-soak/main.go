// Command life-soak runs random soups headlessly and reports how they age:
// final population, extinction generation and peak population per seed. It
// exercises the engine through its public surface only.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/stuXoon/game-of-life/internal/core"
	"github.com/stuXoon/game-of-life/pkg/life"
)

type soupResult struct {
	seed       int64
	finalPop   int
	peakPop    int
	extinctGen int // -1 when still alive at the end
	totalBirth int
	totalDeath int
}

func main() {
	seeds := flag.Int("seeds", 16, "number of random soups to run")
	baseSeed := flag.Int64("seed", 1, "seed of the first soup; later soups increment from it")
	gens := flag.Int("gens", 500, "generations to simulate per soup")
	extent := flag.Int("extent", 64, "soup side length in cells")
	density := flag.Float64("density", 0.25, "soup fill density")
	battle := flag.Bool("battle", false, "split the soup into two colonies and report verdicts")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if err := run(*seeds, *baseSeed, *gens, *extent, *density, *battle, *workers); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(seeds int, baseSeed int64, gens, extent int, density float64, battle bool, workers int) error {
	if seeds <= 0 || gens <= 0 || extent <= 0 {
		return errors.Errorf("seeds, gens and extent must be positive (got %d, %d, %d)", seeds, gens, extent)
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]soupResult, seeds)
	var mu sync.Mutex
	verdicts := map[life.Result]int{}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < seeds; i++ {
		i := i
		eg.Go(func() error {
			seed := baseSeed + int64(i)
			res, verdict := runSoup(seed, gens, extent, density, battle)
			results[i] = res
			if battle {
				mu.Lock()
				verdicts[verdict]++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "soak workers")
	}

	report(results, gens, battle, verdicts)
	return nil
}

func runSoup(seed int64, gens, extent int, density float64, battle bool) (soupResult, life.Result) {
	engine := life.New()
	engine.SetBattle(battle)

	cells := core.NewRNG(seed).Soup(-extent/2, -extent/2, extent, extent, density)
	if battle {
		// Left half of the soup is colony 1, right half colony 2.
		for _, c := range cells {
			col := life.Color1
			if c.X >= 0 {
				col = life.Color2
			}
			engine.SetColoredCell(c.X, c.Y, col)
		}
	} else {
		engine.SetCells(cells)
	}

	res := soupResult{seed: seed, peakPop: engine.Population(), extinctGen: -1}
	for g := 0; g < gens; g++ {
		st := engine.NextGeneration()
		res.totalBirth += st.Births
		res.totalDeath += st.Deaths
		if st.Population > res.peakPop {
			res.peakPop = st.Population
		}
		if st.Population == 0 {
			res.extinctGen = engine.Generation()
			break
		}
		if battle && engine.BattleResult() != life.ResultOngoing {
			break
		}
	}
	res.finalPop = engine.Population()
	return res, engine.BattleResult()
}

func report(results []soupResult, gens int, battle bool, verdicts map[life.Result]int) {
	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })

	fmt.Printf("%-8s %-10s %-10s %-10s %-10s %-10s\n", "seed", "final", "peak", "extinct@", "births", "deaths")
	survivors := 0
	for _, r := range results {
		extinct := "-"
		if r.extinctGen >= 0 {
			extinct = fmt.Sprintf("%d", r.extinctGen)
		} else {
			survivors++
		}
		fmt.Printf("%-8d %-10d %-10d %-10s %-10d %-10d\n",
			r.seed, r.finalPop, r.peakPop, extinct, r.totalBirth, r.totalDeath)
	}
	fmt.Printf("\n%d/%d soups still alive after %d generations\n", survivors, len(results), gens)

	if battle {
		fmt.Printf("verdicts: blue %d, red %d, draw %d, ongoing %d\n",
			verdicts[life.ResultColor1Wins], verdicts[life.ResultColor2Wins],
			verdicts[life.ResultDraw], verdicts[life.ResultOngoing])
	}
}
