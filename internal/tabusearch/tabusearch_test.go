package tabusearch_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localsearch/internal/abstractsearch"
	"localsearch/internal/manager"
	"localsearch/internal/recorder"
	"localsearch/internal/solution"
	"localsearch/internal/tabusearch"
)

func sumCost(perm []int) float64 {
	total := 0.0
	for i, v := range perm {
		total += float64(i * v)
	}
	return total
}

func TestConfigValidateRejectsBadFields(t *testing.T) {
	cfg := tabusearch.DefaultConfig()
	cfg.MaxIterations = 0
	assert.Error(t, cfg.Validate())

	cfg = tabusearch.DefaultConfig()
	cfg.TabuTenure = 0
	assert.Error(t, cfg.Validate())

	cfg = tabusearch.DefaultConfig()
	cfg.TabuTenureRand = -1
	assert.Error(t, cfg.Validate())

	cfg = tabusearch.DefaultConfig()
	cfg.NeighborsPerIter = 0
	assert.Error(t, cfg.Validate())
}

func TestNewRejectsNilRng(t *testing.T) {
	_, err := tabusearch.New[float64](tabusearch.DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestSolveReturnsErrNoMovesOnEmptyNeighborhood(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := solution.New(6, sumCost)
	mgr := manager.NewConstantNeighborhood[float64](nil)
	rec := recorder.NewBestEverSolution[float64](p.Snapshot())
	srch := abstractsearch.New[float64](p, mgr, rec)

	cfg := tabusearch.DefaultConfig()
	solver, err := tabusearch.New[float64](cfg, rng)
	require.NoError(t, err)

	err = solver.Solve(context.Background(), srch)
	assert.ErrorIs(t, err, abstractsearch.ErrNoMoves)
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := solution.New(8, sumCost)
	mgr := manager.NewSwapNeighborhood[float64](5, rng)
	rec := recorder.NewBestEverSolution[float64](p.Snapshot())
	srch := abstractsearch.New[float64](p, mgr, rec)

	cfg := tabusearch.DefaultConfig()
	cfg.MaxIterations = 100_000
	solver, err := tabusearch.New[float64](cfg, rng)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = solver.Solve(ctx, srch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveConvergesOnASmallInstance(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	p := solution.New(10, sumCost)
	p.RandomShuffle(rng)
	startCost := p.Cost()

	mgr := manager.NewSwapNeighborhood[float64](15, rng)
	rec := recorder.NewBestEverSolution[float64](p.Snapshot())
	srch := abstractsearch.New[float64](p, mgr, rec)

	cfg := tabusearch.Config{
		MaxIterations:    200,
		TabuTenure:       5,
		TabuTenureRand:   2,
		NeighborsPerIter: 15,
	}
	solver, err := tabusearch.New[float64](cfg, rng)
	require.NoError(t, err)

	require.NoError(t, solver.Solve(context.Background(), srch))

	best := rec
	assert.LessOrEqual(t, best.BestCost(), startCost)
	assert.Equal(t, cfg.MaxIterations, srch.Iteration)
}
