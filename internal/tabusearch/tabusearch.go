// Package tabusearch is the one concrete search strategy this module ships
// as a consumer of the core substrate: a tabu search over whatever move
// manager the caller wires into an abstractsearch.Search, aspiration-by-best,
// tenure-based tabu memory keyed by move hash.
package tabusearch

import (
	"context"
	"fmt"
	"math/rand"

	"localsearch/internal/abstractsearch"
	"localsearch/internal/move"
	"localsearch/internal/recorder"
	"localsearch/internal/solution"
)

// Solver drives an abstractsearch.Search with a tabu-search outer loop.
type Solver[C solution.Scalar] struct {
	Cfg Config
	Rng *rand.Rand
}

// New validates cfg and returns a Solver using rng as its only source of
// randomness (tenure jitter; the neighborhood's own randomness, if any,
// belongs to the caller-supplied move manager).
func New[C solution.Scalar](cfg Config, rng *rand.Rand) (*Solver[C], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("tabusearch: rng must not be nil")
	}
	return &Solver[C]{Cfg: cfg, Rng: rng}, nil
}

// Solve runs up to Cfg.MaxIterations iterations against srch, mutating
// srch.Working in place and offering it to srch.Recorder after every
// applied move. It returns ctx.Err() if ctx is cancelled between iterations,
// and abstractsearch.ErrNoMoves if srch.Manager.Refresh ever publishes an
// empty neighborhood.
func (s *Solver[C]) Solve(ctx context.Context, srch *abstractsearch.Search[C]) error {
	tabu := newTabuList(max(32, (s.Cfg.TabuTenure+s.Cfg.TabuTenureRand)*4))

	for iter := 0; iter < s.Cfg.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		srch.Manager.Refresh(srch.Working)
		n := srch.Manager.Len()
		if n == 0 {
			return abstractsearch.ErrNoMoves
		}

		aspirationCost, hasAspiration := bestKnownCost[C](srch.Recorder)

		var bestMove, fallbackMove move.ManaMove[C]
		var bestCost, fallbackCost C
		bestSet, fallbackSet := false, false

		for i := 0; i < n; i++ {
			m := srch.Manager.At(i)
			cost := m.Evaluate(srch.Working)

			if !fallbackSet || cost < fallbackCost {
				fallbackCost, fallbackMove, fallbackSet = cost, m, true
			}

			isTabu := tabu.IsTabu(m.Hash(), iter)
			aspirationOK := hasAspiration && cost < aspirationCost
			if isTabu && !aspirationOK {
				continue
			}

			if !bestSet || cost < bestCost {
				bestCost, bestMove, bestSet = cost, m, true
			}
		}

		chosen := bestMove
		if !bestSet {
			// Every sampled move is tabu and none satisfies aspiration;
			// fall back to the best move regardless of tabu status rather
			// than stall.
			chosen = fallbackMove
		}

		tenure := s.Cfg.TabuTenure
		if s.Cfg.TabuTenureRand > 0 {
			tenure += s.Rng.Intn(s.Cfg.TabuTenureRand + 1)
		}
		tabu.Add(chosen.OppositeOf().Hash(), iter+tenure)

		srch.RecordIteration(chosen)
	}

	return nil
}

// bestKnownCost reports the recorder's best-seen cost, if it exposes one.
func bestKnownCost[C solution.Scalar](rec recorder.SolutionRecorder[C]) (C, bool) {
	if r, ok := rec.(recorder.BestCostReporter[C]); ok {
		return r.BestCost(), true
	}
	var zero C
	return zero, false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// tabuList is a ring-buffer-backed tabu memory: a fixed-capacity ring of
// (hash, expiry) pairs plus a map for O(1) IsTabu lookups.
type tabuList struct {
	m   map[uint64]int
	key []uint64
	exp []int
	i   int
}

func newTabuList(capacity int) *tabuList {
	if capacity < 8 {
		capacity = 8
	}
	return &tabuList{
		m:   make(map[uint64]int, capacity*2),
		key: make([]uint64, capacity),
		exp: make([]int, capacity),
	}
}

// IsTabu reports whether k is forbidden at iteration iter.
func (t *tabuList) IsTabu(k uint64, iter int) bool {
	exp, ok := t.m[k]
	return ok && exp > iter
}

// Add records k as tabu until expiry, evicting the ring slot's previous
// occupant.
func (t *tabuList) Add(k uint64, expiry int) {
	oldKey, oldExp := t.key[t.i], t.exp[t.i]
	if curExp, ok := t.m[oldKey]; ok && curExp == oldExp {
		delete(t.m, oldKey)
	}

	t.key[t.i], t.exp[t.i] = k, expiry
	t.m[k] = expiry

	t.i++
	if t.i >= len(t.key) {
		t.i = 0
	}
}
