package manager_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localsearch/internal/manager"
	"localsearch/internal/move"
	"localsearch/internal/solution"
)

func sumCost(perm []int) float64 {
	total := 0.0
	for i, v := range perm {
		total += float64(i * v)
	}
	return total
}

func TestSwapNeighborhoodLenIsZeroBeforeFirstRefresh(t *testing.T) {
	mgr := manager.NewSwapNeighborhood[float64](5, rand.New(rand.NewSource(1)))
	assert.Equal(t, 0, mgr.Len())
}

func TestSwapNeighborhoodRefreshPublishesExactlyM(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mgr := manager.NewSwapNeighborhood[float64](8, rng)
	p := solution.New(10, sumCost)

	mgr.Refresh(p)
	require.Equal(t, 8, mgr.Len())

	for i := 0; i < mgr.Len(); i++ {
		assert.NotNil(t, mgr.At(i))
	}
}

func TestSwapNeighborhoodMovesHaveDistinctEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	mgr := manager.NewSwapNeighborhood[float64](20, rng)
	p := solution.New(6, sumCost)

	mgr.Refresh(p)
	for i := 0; i < mgr.Len(); i++ {
		m := mgr.At(i).(*move.SwapElements[float64])
		a, b := m.Positions()
		assert.NotEqual(t, a, b)
	}
}

func TestSwapNeighborhoodReusesMoveSlotsAcrossRefreshes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	mgr := manager.NewSwapNeighborhood[float64](10, rng)
	p := solution.New(10, sumCost)

	mgr.Refresh(p)
	require.Equal(t, 10, mgr.Len())
	first := mgr.At(0)

	mgr.Refresh(p)
	require.Equal(t, 10, mgr.Len())
	assert.Same(t, first, mgr.At(0))
}

func TestSwapNeighborhoodPanicsOnNonSizedSolution(t *testing.T) {
	mgr := manager.NewSwapNeighborhood[float64](3, rand.New(rand.NewSource(1)))
	assert.Panics(t, func() {
		mgr.Refresh(noSizeSolution{})
	})
}

func TestConstantNeighborhoodRefreshIsNoOp(t *testing.T) {
	moves := []move.ManaMove[float64]{
		move.NewSwapElements[float64](0, 1),
		move.NewSwapElements[float64](1, 2),
	}
	mgr := manager.NewConstantNeighborhood(moves)
	require.Equal(t, 2, mgr.Len())

	p := solution.New(5, sumCost)
	mgr.Refresh(p)
	assert.Equal(t, 2, mgr.Len())
	assert.Same(t, moves[0], mgr.At(0))
}

type noSizeSolution struct{}

func (noSizeSolution) Cost() float64                                     { return 0 }
func (noSizeSolution) CopyFrom(solution.FeasibleSolution[float64]) error { return nil }
