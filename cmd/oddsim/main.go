// oddsim prints the disclosed odds for every layout in a catalog file and,
// optionally, verifies them against a seeded full-reveal simulation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/goldrush-games/scratch-engine/catalog"
	"github.com/goldrush-games/scratch-engine/config"
	"github.com/goldrush-games/scratch-engine/odds"
	"github.com/goldrush-games/scratch-engine/pool"
	"github.com/goldrush-games/scratch-engine/wineval"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	catalogPath := flag.String("catalog", cfg.CatalogPath, "Path to YAML catalog document")
	simRounds := flag.Int("simulate", cfg.SimRounds, "Monte Carlo rounds per layout (0 disables)")
	seed := flag.Uint64("seed", cfg.Seed, "Seed for simulation draws")
	verbose := flag.Bool("verbose", cfg.Verbose, "Log skipped-config diagnostics")
	flag.Parse()

	if err := run(*catalogPath, *simRounds, *seed, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "oddsim: %v\n", err)
		os.Exit(1)
	}
}

func run(catalogPath string, simRounds int, seed uint64, verbose bool) error {
	log := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer l.Sync()
		log = l
	}

	store := catalog.NewStore()
	if err := store.LoadFile(catalogPath); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	layouts := store.Layouts()
	if len(layouts) == 0 {
		return fmt.Errorf("catalog %s contains no layouts", catalogPath)
	}

	estimator := odds.New(store, log)
	for _, layout := range layouts {
		o, err := estimator.Compute(layout)
		if err != nil {
			fmt.Printf("%s: odds unavailable: %v\n", layout.ID, err)
			continue
		}
		fmt.Printf("%s (%s, %d areas)\n", layout.ID, layout.WinCondition, len(layout.Areas))
		for _, p := range o.PerPrize {
			fmt.Printf("  %-20s %8s  %s\n", p.Name, p.Percent, p.OneIn)
		}
		fmt.Printf("  estimated win probability: %s\n", odds.FormatPercent(o.WinProbability))
		fmt.Printf("  %s\n", o.Explanation)

		if simRounds > 0 {
			rate, err := simulate(store, layout, simRounds, seed, log)
			if err != nil {
				return fmt.Errorf("simulate %s: %w", layout.ID, err)
			}
			fmt.Printf("  simulated win rate (%d rounds, seed %d): %s\n",
				simRounds, seed, odds.FormatPercent(rate))
		}
		fmt.Println()
	}
	return nil
}

// simulate draws every area and evaluates a full reveal, simRounds times,
// returning the empirical win rate.
func simulate(store *catalog.Store, layout *catalog.TicketLayout, simRounds int, seed uint64, log *zap.Logger) (float64, error) {
	p := pool.New(store, pool.NewSeededSource(seed), log)
	evaluator := wineval.New(log)

	allAreas := make([]string, len(layout.Areas))
	for i, a := range layout.Areas {
		allAreas[i] = a.ID
	}

	wins := 0
	for i := 0; i < simRounds; i++ {
		areaPrizes, err := p.DrawAreaPrizes(layout)
		if err != nil {
			return 0, err
		}
		if evaluator.IsWinner(layout, allAreas, areaPrizes) {
			wins++
		}
	}
	return float64(wins) / float64(simRounds), nil
}
