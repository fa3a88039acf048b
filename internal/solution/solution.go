// Package solution defines the searched-point contract: feasible_solution
// and its copyable_solution refinement, plus the permutation specialization
// used by the swap/invert moves and the swap neighborhood.
//
// The cost scalar is a type parameter on the search driver and recorder
// rather than a global alias, so a caller can minimize either real or
// integer costs without a parallel package. Permutation64 and PermutationInt
// instantiate the generic Permutation type for those two scalar kinds.
package solution

import (
	"fmt"
	"math/rand"

	"localsearch/internal/randutil"
)

// Scalar is any numeric cost type a problem may minimize: real-valued by
// default, or integer when a problem's cost function is exactly
// representable as one.
type Scalar interface {
	~float64 | ~int | ~int64
}

// FeasibleSolution is any point in the search space: it can report its own
// cost and overwrite its state from a compatible solution. Cost must be a
// pure function of state.
type FeasibleSolution[C Scalar] interface {
	Cost() C
	CopyFrom(other FeasibleSolution[C]) error
}

// CopyableSolution is a FeasibleSolution that also supports cheap,
// independent snapshotting for best-ever tracking.
type CopyableSolution[C Scalar] interface {
	FeasibleSolution[C]
	Snapshot() CopyableSolution[C]
}

// CostFunc computes the scalar cost of a permutation. Supplied by problem
// code; Permutation itself has no notion of what the permutation represents.
type CostFunc[C Scalar] func(perm []int) C

// Permutation is the permutation_problem specialization: it owns a
// permutation of {0,...,n-1} and a cost function over it. Concrete problems
// may embed Permutation and override Swap to perform delta book-keeping for
// their own cost function; the default Swap here only mutates the
// permutation.
type Permutation[C Scalar] struct {
	perm []int
	cost CostFunc[C]
}

// Permutation64 is the real-valued (float64) instantiation, the default cost
// scalar.
type Permutation64 = Permutation[float64]

// PermutationInt is the integer-cost instantiation.
type PermutationInt = Permutation[int]

// New builds a Permutation of size n, initialized to the identity, using
// costFn to compute Cost().
func New[C Scalar](n int, costFn CostFunc[C]) *Permutation[C] {
	p := &Permutation[C]{perm: make([]int, n), cost: costFn}
	p.Initialize()
	return p
}

// Initialize resets the permutation to the identity 0,1,...,n-1.
func (p *Permutation[C]) Initialize() {
	randutil.Identity(p.perm)
}

// Size returns n, the length of the permutation.
func (p *Permutation[C]) Size() int {
	return len(p.perm)
}

// Perm returns the permutation as a read-only view. Callers must not mutate
// the returned slice; it aliases the solution's internal state.
func (p *Permutation[C]) Perm() []int {
	return p.perm
}

// At returns the value at position i.
func (p *Permutation[C]) At(i int) int {
	return p.perm[i]
}

// Swap exchanges the elements at positions i and j. Types that embed
// *Permutation may wrap this to maintain delta-cost state for their own Cost.
func (p *Permutation[C]) Swap(i, j int) {
	p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
}

// InvertRange reverses p.perm[p1..p2] inclusive, wrapping circularly when
// p1 > p2 (DESIGN.md Open Question decision: "from p1 going forward to p2").
func (p *Permutation[C]) InvertRange(p1, p2 int) {
	n := len(p.perm)
	if n == 0 {
		return
	}
	length := p2 - p1
	if length < 0 {
		length += n
	}
	length++ // inclusive endpoints

	for k := 0; k < length/2; k++ {
		a := (p1 + k) % n
		b := (p2 - k + n) % n
		p.perm[a], p.perm[b] = p.perm[b], p.perm[a]
	}
}

// RandomShuffle randomizes the permutation in place using rng.
func (p *Permutation[C]) RandomShuffle(rng *rand.Rand) {
	randutil.Shuffle(p.perm, rng)
}

// Perturbate performs k independent random swaps, each with i != j.
func (p *Permutation[C]) Perturbate(k int, rng *rand.Rand) {
	randutil.Perturbate(p.perm, k, rng)
}

// Cost returns cost(perm); it is a pure function of the current permutation.
func (p *Permutation[C]) Cost() C {
	return p.cost(p.perm)
}

// CopyFrom overwrites this permutation's state from other. other must
// dynamically be a *Permutation[C] of the same size; any other dynamic kind,
// or a size mismatch, is a contract violation, which CopyFrom reports as a
// non-nil error, leaving p unchanged.
func (p *Permutation[C]) CopyFrom(other FeasibleSolution[C]) error {
	o, ok := other.(*Permutation[C])
	if !ok {
		return fmt.Errorf("solution: CopyFrom: incompatible dynamic kind %T", other)
	}
	if len(o.perm) != len(p.perm) {
		return fmt.Errorf("solution: CopyFrom: size mismatch (got %d, want %d)", len(o.perm), len(p.perm))
	}
	copy(p.perm, o.perm)
	p.cost = o.cost
	return nil
}

// Snapshot returns an independent copy of this permutation, suitable for a
// best_ever_solution buffer. Modifying the snapshot never affects p.
func (p *Permutation[C]) Snapshot() CopyableSolution[C] {
	clone := &Permutation[C]{perm: make([]int, len(p.perm)), cost: p.cost}
	copy(clone.perm, p.perm)
	return clone
}

var (
	_ FeasibleSolution[float64] = (*Permutation[float64])(nil)
	_ CopyableSolution[float64] = (*Permutation[float64])(nil)
)
