package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localsearch/internal/problem/tsp"
)

func TestNewInstanceRejectsFewerThanTwoCities(t *testing.T) {
	_, err := tsp.NewInstance([]tsp.City{{X: 0, Y: 0}})
	assert.Error(t, err)
}

func TestTourLengthOfTwoCitiesIsTwiceTheDistance(t *testing.T) {
	inst, err := tsp.NewInstance([]tsp.City{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)

	got := inst.TourLength([]int{0, 1})
	assert.InDelta(t, 10.0, got, 1e-9) // 5 there, 5 back
}

func TestTourLengthIsInvariantUnderRotation(t *testing.T) {
	inst, err := tsp.NewInstance([]tsp.City{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
	require.NoError(t, err)

	a := inst.TourLength([]int{0, 1, 2, 3})
	b := inst.TourLength([]int{1, 2, 3, 0})
	assert.InDelta(t, a, b, 1e-9)
}

func TestRandomInstanceProducesCitiesWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	inst := tsp.RandomInstance(25, 50.0, rng)

	require.Len(t, inst.Cities, 25)
	for _, c := range inst.Cities {
		assert.True(t, c.X >= 0 && c.X < 50.0)
		assert.True(t, c.Y >= 0 && c.Y < 50.0)
	}
}

func TestNewTourSolutionStartsAtIdentityTour(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inst := tsp.RandomInstance(5, 10.0, rng)
	tour := tsp.NewTourSolution(inst)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, tour.Perm())
	assert.InDelta(t, inst.TourLength([]int{0, 1, 2, 3, 4}), tour.Cost(), 1e-9)
}
