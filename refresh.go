package fermigo

import (
	"context"
	"time"
)

// RefreshSlater recomputes the Slater matrix and the auxiliary matrix W from
// scratch against the live particle-to-orbital map.
//
// After many incremental updates the fermion ordering may have permuted
// relative to orbital order and floating-point drift accumulates in W; a
// refresh re-derives both consistently. Scheduling is the caller's choice —
// typical drivers refresh every few hundred accepted moves.
//
// The selected eigenstates are the ones fixed at construction. Fails with
// ErrSingularSlater if the refreshed matrix is singular, leaving the previous
// matrices in place.
func (c *Configuration) RefreshSlater() error {
	start := time.Now()
	err := c.rebuildSlater()
	c.metrics.RecordRefresh(time.Since(start), err)
	c.logger.LogRefresh(context.Background(), err)
	return err
}
