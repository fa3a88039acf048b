// Package move defines the move and tabu-compatible ("mana") move contracts,
// and the two concrete permutation moves: SwapElements and
// InvertSubsequence.
//
// All moves are parameterized over the same solution.Scalar cost type as the
// solution they act on, so Evaluate returns a comparable cost without a type
// assertion at every call site.
package move

import (
	"fmt"

	"localsearch/internal/solution"
)

// Move is a prospective, applicable transformation on a solution. Apply
// mutates sol; Evaluate returns the cost sol would have after Apply, without
// mutating it. For any solution S, apply(S).Cost() must equal evaluate(S)
// computed against the pre-apply S, within the cost type's tolerance.
type Move[C solution.Scalar] interface {
	Apply(sol solution.FeasibleSolution[C])
	Evaluate(sol solution.FeasibleSolution[C]) C
}

// ManaMove is a Move additionally usable by tabu-search-style memory: it can
// be deep-cloned, produce a semantically opposite move, and supports
// structural equality and a stable hash. a.Equal(b) implies
// a.Hash() == b.Hash(); Clone produces an equal but independent instance.
type ManaMove[C solution.Scalar] interface {
	Move[C]
	Clone() ManaMove[C]
	OppositeOf() ManaMove[C]
	Equal(other ManaMove[C]) bool
	Hash() uint64
}

// permutationSolution is the capability SwapElements/InvertSubsequence need
// from a solution.FeasibleSolution: read/write access to a permutation. Any
// *solution.Permutation[C] (or an embedding type) satisfies it.
type permutationSolution[C solution.Scalar] interface {
	solution.FeasibleSolution[C]
	Size() int
	Swap(i, j int)
	InvertRange(p1, p2 int)
}

func asPermutation[C solution.Scalar](sol solution.FeasibleSolution[C]) permutationSolution[C] {
	p, ok := sol.(permutationSolution[C])
	if !ok {
		// Contract violation: a permutation move may only be offered to a
		// permutation solution. Programmer error, not recoverable.
		panic(fmt.Sprintf("move: %T offered to non-permutation solution %T", sol, sol))
	}
	return p
}

// SwapElements is the mana_move parameterized by (p1, p2) with
// p1 = min(from, to), p2 = max(from, to); canonicalized at construction so
// that "swap i and j" is identified independently of argument order.
type SwapElements[C solution.Scalar] struct {
	p1, p2 int
}

// NewSwapElements canonicalizes (from, to) into (p1, p2).
func NewSwapElements[C solution.Scalar](from, to int) *SwapElements[C] {
	p1, p2 := from, to
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	return &SwapElements[C]{p1: p1, p2: p2}
}

// Positions returns the canonical (p1, p2) pair.
func (m *SwapElements[C]) Positions() (int, int) {
	return m.p1, m.p2
}

// SetPositions canonicalizes and overwrites (from, to) in place, letting a
// caller (e.g. SwapNeighborhood) reuse the move across refreshes instead of
// reallocating.
func (m *SwapElements[C]) SetPositions(from, to int) {
	if from > to {
		from, to = to, from
	}
	m.p1, m.p2 = from, to
}

// Apply downcasts sol to a permutation and swaps the canonical positions.
func (m *SwapElements[C]) Apply(sol solution.FeasibleSolution[C]) {
	asPermutation(sol).Swap(m.p1, m.p2)
}

// Evaluate applies-then-reverts conceptually, without mutating sol: it
// computes the cost the solution would have after the swap.
func (m *SwapElements[C]) Evaluate(sol solution.FeasibleSolution[C]) C {
	p := asPermutation(sol)
	p.Swap(m.p1, m.p2)
	c := p.Cost()
	p.Swap(m.p1, m.p2) // swap is its own inverse
	return c
}

// Clone returns an independent copy of this move.
func (m *SwapElements[C]) Clone() ManaMove[C] {
	return &SwapElements[C]{p1: m.p1, p2: m.p2}
}

// OppositeOf returns a clone: swapping the same two positions twice restores
// the original permutation, so a swap is its own semantic inverse.
func (m *SwapElements[C]) OppositeOf() ManaMove[C] {
	return m.Clone()
}

// Equal reports whether other is a SwapElements with the same canonical pair.
func (m *SwapElements[C]) Equal(other ManaMove[C]) bool {
	o, ok := other.(*SwapElements[C])
	if !ok {
		return false
	}
	return m.p1 == o.p1 && m.p2 == o.p2
}

// Hash combines the canonical pair into a single uint64: (p1<<16)^p2.
func (m *SwapElements[C]) Hash() uint64 {
	return (uint64(uint32(m.p1)) << 16) ^ uint64(uint32(m.p2))
}

// String implements fmt.Stringer for tracing.
func (m *SwapElements[C]) String() string {
	return fmt.Sprintf("swap(%d,%d)", m.p1, m.p2)
}

// InvertSubsequence is the mana_move parameterized by (from, to); unlike
// SwapElements it is not canonicalized, since direction matters: apply
// inverts the subsequence "from p1 going forward to p2", wrapping circularly
// when p1 > p2 (DESIGN.md Open Question decision).
type InvertSubsequence[C solution.Scalar] struct {
	p1, p2 int
}

// NewInvertSubsequence builds a move inverting the subsequence from p1
// forward to p2 (inclusive), wrapping if p1 > p2.
func NewInvertSubsequence[C solution.Scalar](p1, p2 int) *InvertSubsequence[C] {
	return &InvertSubsequence[C]{p1: p1, p2: p2}
}

// SetPositions overwrites (p1, p2) in place for move-slot reuse.
func (m *InvertSubsequence[C]) SetPositions(p1, p2 int) {
	m.p1, m.p2 = p1, p2
}

// Apply inverts the subsequence on the underlying permutation.
func (m *InvertSubsequence[C]) Apply(sol solution.FeasibleSolution[C]) {
	asPermutation(sol).InvertRange(m.p1, m.p2)
}

// Evaluate computes the cost after the inversion, without leaving sol
// mutated.
func (m *InvertSubsequence[C]) Evaluate(sol solution.FeasibleSolution[C]) C {
	p := asPermutation(sol)
	p.InvertRange(m.p1, m.p2)
	c := p.Cost()
	p.InvertRange(m.p1, m.p2) // inverting twice restores the original order
	return c
}

// Clone returns an independent copy of this move.
func (m *InvertSubsequence[C]) Clone() ManaMove[C] {
	return &InvertSubsequence[C]{p1: m.p1, p2: m.p2}
}

// OppositeOf returns a clone: inverting the same subsequence twice restores
// it, so InvertSubsequence is also its own semantic inverse.
func (m *InvertSubsequence[C]) OppositeOf() ManaMove[C] {
	return m.Clone()
}

// Equal reports whether other is an InvertSubsequence with the same
// (p1, p2), in the same order — direction matters, so (a,b) != (b,a) unless
// a == b.
func (m *InvertSubsequence[C]) Equal(other ManaMove[C]) bool {
	o, ok := other.(*InvertSubsequence[C])
	if !ok {
		return false
	}
	return m.p1 == o.p1 && m.p2 == o.p2
}

// Hash combines (p1, p2) in order-sensitive fashion.
func (m *InvertSubsequence[C]) Hash() uint64 {
	return (uint64(uint32(m.p1)) << 16) ^ (uint64(uint32(m.p2)) << 1) ^ 1
}

// String implements fmt.Stringer for tracing.
func (m *InvertSubsequence[C]) String() string {
	return fmt.Sprintf("invert(%d,%d)", m.p1, m.p2)
}

var (
	_ ManaMove[float64] = (*SwapElements[float64])(nil)
	_ ManaMove[float64] = (*InvertSubsequence[float64])(nil)
)
