package fermigo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/fermigo/fock"
	"github.com/hupe1980/fermigo/linalg"
)

// FastUpdate applies an accepted Monte Carlo move: the given particles hop
// to the given new orbitals (one-to-one correspondence). The auxiliary
// matrix W is corrected algebraically with a rank-k Sherman-Morrison-style
// update instead of recomputing the Slater inverse.
//
// Move validity — each new orbital unoccupied before the move, particle
// number conserved — is the caller's responsibility. A singular correction
// matrix signals a degenerate move and is returned as ErrSingularUpdate; the
// driver should treat it as a rejected proposal. On any error the
// Configuration is left unchanged.
func (c *Configuration) FastUpdate(particles, orbitals []int) error {
	start := time.Now()
	err := c.fastUpdate(particles, orbitals)
	c.metrics.RecordUpdate(time.Since(start), err)
	c.logger.LogUpdate(context.Background(), particles, orbitals, err)
	return err
}

func (c *Configuration) fastUpdate(particles, orbitals []int) error {
	if len(particles) == 0 {
		return fmt.Errorf("empty move")
	}
	if len(particles) != len(orbitals) {
		return &ErrDimensionMismatch{What: "move", Expected: len(particles), Actual: len(orbitals)}
	}
	for _, p := range particles {
		if p < 0 || p >= c.particleCount {
			return fmt.Errorf("particle %d out of range [0,%d)", p, c.particleCount)
		}
	}
	bands := c.hamiltonian.Bands()
	for _, o := range orbitals {
		if o < 0 || o >= bands {
			return fmt.Errorf("orbital %d out of range [0,%d)", o, bands)
		}
	}

	n := c.particleCount

	// C = W[newOrbitals, movedParticles], the k x k correction kernel.
	cmat := c.aux.Gather(orbitals, particles)
	f, err := cmat.Factorize()
	if err != nil {
		return err
	}

	// D = W[newOrbitals, :] - I[movedParticles, :]. Subtracting the identity
	// rows of the moved particles encodes the simultaneous rank-k move.
	d := c.aux.Gather(orbitals, allInts(n))
	for i, p := range particles {
		d.Set(i, p, d.At(i, p)-1)
	}

	// Solve C X = D. A singular C means the move lands on a zero-determinant
	// configuration. The correction is B = -X.
	x, err := f.Solve(d)
	if err != nil {
		if errors.Is(err, linalg.ErrSingular) {
			return fmt.Errorf("%w: %w", ErrSingularUpdate, err)
		}
		return err
	}

	// W + W[:, movedParticles]·B  ==  W - W[:, movedParticles]·X,
	// evaluated against the pre-move W.
	delta, err := c.aux.Gather(allInts(c.aux.Rows()), particles).Mul(x)
	if err != nil {
		return err
	}

	// Everything fallible is done; commit the move.
	for i := 0; i < delta.Rows(); i++ {
		row, drow := c.aux.Row(i), delta.Row(i)
		for j := 0; j < n; j++ {
			row[j] -= drow[j]
		}
	}

	for _, p := range particles {
		c.occupancy.Clear(uint(c.particleToOrbital[p]))
		c.orbitalToParticle[c.particleToOrbital[p]] = -1
	}
	for i, p := range particles {
		c.particleToOrbital[p] = orbitals[i]
		c.occupancy.Set(uint(orbitals[i]))
		c.orbitalToParticle[orbitals[i]] = p
	}

	state, err := fock.Encode(c.occupancy, c.lattice.LocalDim, c.lattice.Length)
	if err != nil {
		return err
	}
	c.fockState = state

	// Keep the stored Slater rows tracking the particle map. This is a
	// cheap row assignment, not a recomputation.
	eigen := c.hamiltonian.States()
	for i, p := range particles {
		for j, s := range c.selectedStates {
			c.slater.Set(p, j, eigen.At(orbitals[i], s))
		}
	}

	return nil
}

func allInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
