package recorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localsearch/internal/recorder"
	"localsearch/internal/solution"
)

type costOnly struct {
	cost float64
}

func (c costOnly) Cost() float64 { return c.cost }

func (c *costOnly) CopyFrom(other solution.FeasibleSolution[float64]) error {
	c.cost = other.Cost()
	return nil
}

func (c *costOnly) Snapshot() solution.CopyableSolution[float64] {
	cp := *c
	return &cp
}

func TestBestEverSolutionMatchesSpecScenario(t *testing.T) {
	best := recorder.NewBestEverSolution[float64](&costOnly{})

	costs := []float64{10.0, 12.0, 7.5, 7.5, 6.0}
	wantAccepted := []bool{true, false, true, false, true}

	for i, c := range costs {
		got := best.Accept(&costOnly{cost: c})
		assert.Equal(t, wantAccepted[i], got, "iteration %d", i)
	}

	assert.Equal(t, 6.0, best.BestCost())
}

func TestBestEverSolutionFirstAcceptAlwaysSnapshots(t *testing.T) {
	best := recorder.NewBestEverSolution[float64](&costOnly{})
	assert.True(t, best.Accept(&costOnly{cost: 1000.0}))
	assert.Equal(t, 1000.0, best.BestCost())
}

func TestBestEverSolutionImplementsBestCostReporter(t *testing.T) {
	best := recorder.NewBestEverSolution[float64](&costOnly{})
	var reporter recorder.BestCostReporter[float64] = best
	best.Accept(&costOnly{cost: 3.0})
	assert.Equal(t, 3.0, reporter.BestCost())
}

func TestChainAcceptsIfAnyLinkImproves(t *testing.T) {
	a := recorder.NewBestEverSolution[float64](&costOnly{})
	b := recorder.NewBestEverSolution[float64](&costOnly{})
	chain := recorder.NewChain[float64](a, b)

	require.True(t, chain.Accept(&costOnly{cost: 5.0}))
	assert.Equal(t, 5.0, a.BestCost())
	assert.Equal(t, 5.0, b.BestCost())

	assert.False(t, chain.Accept(&costOnly{cost: 9.0}))
}

func TestChainRunsEveryLinkRegardlessOfEarlierResult(t *testing.T) {
	calls := 0
	counting := countingRecorder{calls: &calls}
	chain := recorder.NewChain[float64](countingRecorder{calls: &calls}, counting)

	chain.Accept(&costOnly{cost: 1.0})
	assert.Equal(t, 2, calls)
}

type countingRecorder struct {
	calls *int
}

func (c countingRecorder) Accept(solution.FeasibleSolution[float64]) bool {
	*c.calls++
	return false
}
