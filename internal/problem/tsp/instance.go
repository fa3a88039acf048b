// Package tsp is a demo FeasibleSolution for the symmetric Euclidean
// travelling-salesman problem, used by this module's tests and cmd/demo to
// exercise the core search substrate end to end. It is not a production TSP
// solver; it exists only to give the core something concrete to search
// over. Coordinates are planar, distances are the ordinary Euclidean
// metric, and the tour is closed (it returns to its starting city).
package tsp

import (
	"fmt"
	"math"
	"math/rand"
)

// City is a point in the plane.
type City struct {
	X, Y float64
}

// Instance holds the city coordinates a tour is built over.
type Instance struct {
	Cities []City
}

// NewInstance validates and wraps a city list. At least two cities are
// required for a tour to be meaningful.
func NewInstance(cities []City) (*Instance, error) {
	if len(cities) < 2 {
		return nil, fmt.Errorf("tsp: need at least 2 cities (got %d)", len(cities))
	}
	return &Instance{Cities: cities}, nil
}

// RandomInstance generates n cities uniformly at random in [0, side) x
// [0, side), using rng.
func RandomInstance(n int, side float64, rng *rand.Rand) *Instance {
	cities := make([]City, n)
	for i := range cities {
		cities[i] = City{X: rng.Float64() * side, Y: rng.Float64() * side}
	}
	inst, err := NewInstance(cities)
	if err != nil {
		panic(err)
	}
	return inst
}

func (inst *Instance) dist(a, b int) float64 {
	dx := inst.Cities[a].X - inst.Cities[b].X
	dy := inst.Cities[a].Y - inst.Cities[b].Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TourLength returns the length of the closed tour visiting perm in order
// and returning to perm[0]. perm must be a permutation of
// [0, len(inst.Cities)); callers are responsible for that invariant.
func (inst *Instance) TourLength(perm []int) float64 {
	total := 0.0
	for i := 0; i < len(perm); i++ {
		j := (i + 1) % len(perm)
		total += inst.dist(perm[i], perm[j])
	}
	return total
}
