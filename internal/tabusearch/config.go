package tabusearch

import "fmt"

// Config holds the parameters of the tabu-search consumer strategy.
type Config struct {
	// MaxIterations bounds the number of iterations; must be > 0.
	MaxIterations int

	// TabuTenure is the number of iterations a reversed move stays
	// forbidden.
	TabuTenure int
	// TabuTenureRand adds a uniform random jitter in [0, TabuTenureRand] to
	// the tenure of each newly tabooed move.
	TabuTenureRand int

	// NeighborsPerIter is the swap-neighborhood size the caller intends to
	// sample per iteration; it is validated but Solve does not read it. The
	// moves scanned each iteration are whatever srch.Manager publishes.
	NeighborsPerIter int
}

// DefaultConfig returns reasonable defaults for a small-to-medium instance.
func DefaultConfig() Config {
	return Config{
		MaxIterations:    10_000,
		TabuTenure:       7,
		TabuTenureRand:   3,
		NeighborsPerIter: 30,
	}
}

// Validate reports a descriptive error for any out-of-range field.
func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("tabusearch: MaxIterations must be > 0 (got %d)", c.MaxIterations)
	}
	if c.TabuTenure <= 0 {
		return fmt.Errorf("tabusearch: TabuTenure must be > 0 (got %d)", c.TabuTenure)
	}
	if c.TabuTenureRand < 0 {
		return fmt.Errorf("tabusearch: TabuTenureRand must be >= 0 (got %d)", c.TabuTenureRand)
	}
	if c.NeighborsPerIter <= 0 {
		return fmt.Errorf("tabusearch: NeighborsPerIter must be > 0 (got %d)", c.NeighborsPerIter)
	}
	return nil
}
