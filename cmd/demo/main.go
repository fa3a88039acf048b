// Command demo wires the core search substrate to the demo TSP problem and
// the tabu-search consumer strategy: flag-parsed config structs feed a
// Search built over a random Euclidean TSP instance. Flags are handled by
// cobra/pflag and structured output goes through zerolog.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"localsearch/internal/abstractsearch"
	"localsearch/internal/manager"
	"localsearch/internal/problem/tsp"
	"localsearch/internal/recorder"
	"localsearch/internal/tabusearch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cities     int
		seed       int64
		neighbors  int
		tenure     int
		tenureRand int
		iterations int
		verbose    bool
		side       float64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run tabu search over a random Euclidean TSP instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if !verbose {
				level = zerolog.WarnLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
				Level(level).
				With().Timestamp().Logger()

			rng := rand.New(rand.NewSource(seed))
			inst := tsp.RandomInstance(cities, side, rng)

			working := tsp.NewTourSolution(inst)
			working.RandomShuffle(rng)

			best := recorder.NewBestEverSolution[float64](working.Snapshot())
			mgr := manager.NewSwapNeighborhood[float64](neighbors, rng)

			srch := abstractsearch.New[float64](working, mgr, best)
			srch.Attach(abstractsearch.NewLoggingListener[float64](logger))

			cfg := tabusearch.Config{
				MaxIterations:    iterations,
				TabuTenure:       tenure,
				TabuTenureRand:   tenureRand,
				NeighborsPerIter: neighbors,
			}
			solver, err := tabusearch.New[float64](cfg, rng)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := solver.Solve(context.Background(), srch); err != nil {
				return fmt.Errorf("tabu search: %w", err)
			}

			fmt.Printf(
				"best tour length: %.3f (cities=%d iterations=%d elapsed=%s)\n",
				best.BestCost(), cities, iterations, time.Since(start).Round(time.Millisecond),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cities, "cities", 40, "number of cities in the random instance")
	flags.Int64Var(&seed, "seed", 1, "random seed")
	flags.Float64Var(&side, "side", 100.0, "side length of the square cities are drawn from")
	flags.IntVar(&neighbors, "neighbors", 30, "swap-neighborhood size sampled per iteration")
	flags.IntVar(&tenure, "tenure", 7, "base tabu tenure, in iterations")
	flags.IntVar(&tenureRand, "tenure-rand", 3, "random jitter added to tabu tenure, in [0,n]")
	flags.IntVar(&iterations, "iterations", 2000, "maximum tabu search iterations")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every search iteration")

	return cmd
}
