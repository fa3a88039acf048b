// Package manager implements the move_manager contract: the owner of the
// current neighborhood, and the stochastic swap_neighborhood used by the
// shipped tabusearch strategy.
package manager

import (
	"math/rand"

	"localsearch/internal/move"
	"localsearch/internal/randutil"
	"localsearch/internal/solution"
)

// MoveManager owns an ordered sequence of moves representing the current
// neighborhood. Refresh is called by the search before scanning the
// neighborhood; a constant neighborhood implements Refresh as a no-op.
type MoveManager[C solution.Scalar] interface {
	Refresh(sol solution.FeasibleSolution[C])
	Len() int
	At(i int) move.ManaMove[C]
}

// ConstantNeighborhood is a move_manager whose move list is fixed at
// construction; Refresh is a no-op.
type ConstantNeighborhood[C solution.Scalar] struct {
	moves []move.ManaMove[C]
}

// NewConstantNeighborhood builds a manager over a fixed list of moves. The
// manager owns the moves; they are destroyed with it.
func NewConstantNeighborhood[C solution.Scalar](moves []move.ManaMove[C]) *ConstantNeighborhood[C] {
	return &ConstantNeighborhood[C]{moves: moves}
}

// Refresh is a no-op: the neighborhood was populated at construction.
func (c *ConstantNeighborhood[C]) Refresh(solution.FeasibleSolution[C]) {}

// Len returns the number of moves currently in the neighborhood.
func (c *ConstantNeighborhood[C]) Len() int { return len(c.moves) }

// At returns the move at index i.
func (c *ConstantNeighborhood[C]) At(i int) move.ManaMove[C] { return c.moves[i] }

// SwapNeighborhood is the stochastic move_manager over swaps: on Refresh it
// resizes its move list to exactly m swaps, each with p1 != p2 drawn
// uniformly in [0, sol.Size()). Move slots are allocated once and mutated in
// place on subsequent refreshes to avoid churn; duplicate swaps across slots
// within the same refresh are accepted rather than rejected.
type SwapNeighborhood[C solution.Scalar] struct {
	m     int
	rng   *rand.Rand
	moves []*move.SwapElements[C]
}

// NewSwapNeighborhood builds a manager that publishes m swaps per Refresh,
// drawn against rng. Len() is 0 until the first Refresh.
func NewSwapNeighborhood[C solution.Scalar](m int, rng *rand.Rand) *SwapNeighborhood[C] {
	return &SwapNeighborhood[C]{m: m, rng: rng}
}

// Refresh resizes the neighborhood to exactly n.m swaps, reusing existing
// move slots where possible, and re-randomizes every slot's endpoints
// against sol's current size.
func (n *SwapNeighborhood[C]) Refresh(sol solution.FeasibleSolution[C]) {
	size := sizeOf(sol)

	if cap(n.moves) >= n.m {
		n.moves = n.moves[:n.m]
	} else {
		grown := make([]*move.SwapElements[C], n.m)
		copy(grown, n.moves)
		n.moves = grown
	}

	for i := 0; i < n.m; i++ {
		from, to := randutil.DistinctPair(size, n.rng)
		if n.moves[i] == nil {
			n.moves[i] = move.NewSwapElements[C](from, to)
		} else {
			n.moves[i].SetPositions(from, to)
		}
	}
}

// Len returns the neighborhood size: 0 before the first Refresh, n.m after.
func (n *SwapNeighborhood[C]) Len() int { return len(n.moves) }

// At returns the move at index i.
func (n *SwapNeighborhood[C]) At(i int) move.ManaMove[C] { return n.moves[i] }

type sizer interface{ Size() int }

func sizeOf[C solution.Scalar](sol solution.FeasibleSolution[C]) int {
	s, ok := sol.(sizer)
	if !ok {
		panic("manager: SwapNeighborhood offered a solution with no Size() method")
	}
	return s.Size()
}

var (
	_ MoveManager[float64] = (*ConstantNeighborhood[float64])(nil)
	_ MoveManager[float64] = (*SwapNeighborhood[float64])(nil)
)
