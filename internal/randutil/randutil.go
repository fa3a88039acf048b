// Package randutil holds the small random-sequence helpers shared by the
// permutation solution type and the swap neighborhood.
package randutil

import (
	"fmt"
	"math/rand"
)

// Identity fills p with 0, 1, 2, ..., len(p)-1.
func Identity(p []int) {
	for i := range p {
		p[i] = i
	}
}

// Shuffle performs a Fisher-Yates shuffle of p using rng.
func Shuffle(p []int, rng *rand.Rand) {
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

// Perturbate applies k independent random transpositions to p, re-drawing
// the second index until it differs from the first on each draw.
func Perturbate(p []int, k int, rng *rand.Rand) {
	n := len(p)
	if n < 2 {
		return
	}
	for t := 0; t < k; t++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		for j == i {
			j = rng.Intn(n)
		}
		p[i], p[j] = p[j], p[i]
	}
}

// DistinctPair draws i, j uniformly in [0, n) with i != j, re-drawing j until
// distinct from i. Used by SwapNeighborhood.Refresh. Panics if n < 2: no
// distinct pair exists, and the caller offered a degenerate solution.
func DistinctPair(n int, rng *rand.Rand) (int, int) {
	if n < 2 {
		panic(fmt.Sprintf("randutil: DistinctPair requires n >= 2 (got %d)", n))
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	for j == i {
		j = rng.Intn(n)
	}
	return i, j
}
