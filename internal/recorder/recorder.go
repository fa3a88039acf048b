// Package recorder implements the solution_recorder contract: a sink that
// receives Accept(sol) after each search iteration and reports whether it
// took the offer as an improvement.
package recorder

import "localsearch/internal/solution"

// SolutionRecorder is offered a solution after every search iteration and
// reports whether it considered the offer an improvement.
type SolutionRecorder[C solution.Scalar] interface {
	Accept(sol solution.FeasibleSolution[C]) bool
}

// BestEverSolution is a SolutionRecorder holding a caller-owned
// CopyableSolution buffer. After every Accept call, Best.Cost() <= the
// minimum cost among all solutions offered so far; the very first Accept
// always snapshots unconditionally (equivalent to initializing the best
// cost to +infinity).
type BestEverSolution[C solution.Scalar] struct {
	Best   solution.CopyableSolution[C]
	primed bool
}

// NewBestEverSolution wraps a caller-owned buffer. buf is mutated by Accept
// and must not be mutated concurrently by the caller.
func NewBestEverSolution[C solution.Scalar](buf solution.CopyableSolution[C]) *BestEverSolution[C] {
	return &BestEverSolution[C]{Best: buf}
}

// Accept compares sol.Cost() to the recorded best; if strictly less (or this
// is the first call), it copies sol's state into Best and returns true.
func (b *BestEverSolution[C]) Accept(sol solution.FeasibleSolution[C]) bool {
	if !b.primed {
		_ = b.Best.CopyFrom(sol)
		b.primed = true
		return true
	}
	if sol.Cost() < b.Best.Cost() {
		_ = b.Best.CopyFrom(sol)
		return true
	}
	return false
}

// BestCost returns the best cost recorded so far. Before the first Accept
// this is the buffer's initial cost, which callers should treat as
// undefined.
func (b *BestEverSolution[C]) BestCost() C {
	return b.Best.Cost()
}

// BestCostReporter is implemented by recorders that can report the best cost
// seen so far, independent of the Accept/bool contract. Concrete strategies
// that want an aspiration criterion (accept a tabu move if it beats the
// global best) type-assert their recorder against this interface.
type BestCostReporter[C solution.Scalar] interface {
	BestCost() C
}

// Chain composes recorders as a chain of responsibility: each link is
// offered the same solution, in chain order; the overall Accept returns true
// if any link returned true.
type Chain[C solution.Scalar] struct {
	links []SolutionRecorder[C]
}

// NewChain builds a recorder chain invoked in the given order.
func NewChain[C solution.Scalar](links ...SolutionRecorder[C]) *Chain[C] {
	return &Chain[C]{links: links}
}

// Accept offers sol to every link in chain order and returns whether any
// link reported an improvement.
func (c *Chain[C]) Accept(sol solution.FeasibleSolution[C]) bool {
	improved := false
	for _, link := range c.links {
		if link.Accept(sol) {
			improved = true
		}
	}
	return improved
}

var (
	_ SolutionRecorder[float64] = (*BestEverSolution[float64])(nil)
	_ SolutionRecorder[float64] = (*Chain[float64])(nil)
	_ BestCostReporter[float64] = (*BestEverSolution[float64])(nil)
)
