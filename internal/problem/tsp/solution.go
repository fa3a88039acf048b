package tsp

import "localsearch/internal/solution"

// NewTourSolution builds a solution.Permutation64 whose cost is inst's tour
// length. The returned permutation starts at the identity tour
// 0,1,2,...,n-1; callers typically call RandomShuffle before searching.
func NewTourSolution(inst *Instance) *solution.Permutation64 {
	return solution.New(len(inst.Cities), inst.TourLength)
}
