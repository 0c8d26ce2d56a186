package fermigo

import (
	"context"
	"fmt"
	"math/cmplx"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fermigo/fock"
	"github.com/hupe1980/fermigo/linalg"
)

// Measurement is one operator-action request: a set of sites and a matching
// list of sparse local operators, each acting on the full local Fock basis
// of its site.
type Measurement struct {
	Sites     []int
	Operators []*linalg.Sparse
}

// LocalEstimator evaluates the local estimator ⟨x|Ô|ψ⟩/⟨x|ψ⟩ of the given
// operator set against the current configuration |x⟩.
//
// The sparse action of the operators is expanded into every reachable final
// Fock substate; each contributes its matrix element times the
// Slater-determinant ratio, read as a small determinant of the auxiliary
// matrix W. The configuration is not mutated, so concurrent LocalEstimator
// calls against an unchanging configuration are safe.
//
// Operators must conserve particle number and be dimensioned over the site's
// full local Fock basis (2^localDim); violations are typed errors, never
// silently wrong values.
func (c *Configuration) LocalEstimator(sites []int, operators []*linalg.Sparse) (complex128, error) {
	start := time.Now()
	value, substates, err := c.localEstimator(sites, operators)
	c.metrics.RecordMeasure(substates, time.Since(start), err)
	c.logger.LogMeasure(context.Background(), sites, substates, err)
	return value, err
}

func (c *Configuration) localEstimator(sites []int, operators []*linalg.Sparse) (complex128, int, error) {
	if len(sites) == 0 {
		return 0, 0, fmt.Errorf("empty measurement")
	}
	if len(sites) != len(operators) {
		return 0, 0, &ErrDimensionMismatch{What: "measurement", Expected: len(sites), Actual: len(operators)}
	}
	localFockDim := fock.LocalDimFock(c.lattice.LocalDim)
	for i, site := range sites {
		if site < 0 || site >= c.lattice.Length {
			return 0, 0, fmt.Errorf("site %d out of range [0,%d)", site, c.lattice.Length)
		}
		op := operators[i]
		if op.Rows() != localFockDim || op.Cols() != localFockDim {
			return 0, 0, &ErrOperatorShape{Site: site, Expected: localFockDim, Rows: op.Rows(), Cols: op.Cols()}
		}
	}

	// Sparse action of each conjugate-transposed operator on its site's
	// current substate: the row entries at the current Fock index, values
	// conjugated, columns indexing the reachable final substates.
	actions := make([][]linalg.Entry, len(sites))
	for i, site := range sites {
		actions[i] = operators[i].RowEntries(int(c.fockState[site]))
		if len(actions[i]) == 0 {
			return 0, 0, nil // operator annihilates the current substate
		}
	}

	var (
		sum       complex128
		substates int
	)

	final := make(fock.State, len(c.fockState))
	picks := make([]linalg.Entry, len(sites))

	var expand func(depth int) error
	expand = func(depth int) error {
		if depth < len(sites) {
			for _, e := range actions[depth] {
				picks[depth] = e
				if err := expand(depth + 1); err != nil {
					return err
				}
			}
			return nil
		}

		// One fully chosen final substate: splice it into the Fock state
		// and accumulate its weighted Slater ratio.
		element := complex(1, 0)
		copy(final, c.fockState)
		for i, e := range picks {
			element *= cmplx.Conj(e.Val)
			final[sites[i]] = uint64(e.Col)
		}

		ratio, err := c.slaterRatio(final)
		if err != nil {
			return err
		}

		substates++
		sum += element * ratio
		return nil
	}

	if err := expand(0); err != nil {
		return 0, substates, err
	}

	return sum, substates, nil
}

// slaterRatio computes det(S')/det(S) for the configuration reached by the
// given final Fock state, as a determinant of a small W submatrix.
func (c *Configuration) slaterRatio(final fock.State) (complex128, error) {
	finalOcc := fock.Decode(final, c.lattice.LocalDim)

	if got := int(finalOcc.Count()); got != c.particleCount {
		return 0, fmt.Errorf("%w: final substate has %d particles, want %d", ErrNotConserving, got, c.particleCount)
	}

	annihilated := c.occupancy.Difference(finalOcc)
	created := finalOcc.Difference(c.occupancy)

	if annihilated.Count() == 0 {
		return 1, nil // diagonal element, nothing moved
	}

	// Created orbitals ascending; moved particles in ascending order of
	// their annihilated orbitals, matching the construction-time filling
	// convention.
	var createdOrbitals, movedParticles []int
	for orb, ok := created.NextSet(0); ok; orb, ok = created.NextSet(orb + 1) {
		createdOrbitals = append(createdOrbitals, int(orb))
	}
	for orb, ok := annihilated.NextSet(0); ok; orb, ok = annihilated.NextSet(orb + 1) {
		p := c.orbitalToParticle[orb]
		if p < 0 {
			return 0, &ErrOrbitalNotOccupied{Orbital: int(orb)}
		}
		movedParticles = append(movedParticles, p)
	}

	if len(createdOrbitals) == 1 {
		return c.aux.At(createdOrbitals[0], movedParticles[0]), nil
	}

	sub := c.aux.Gather(createdOrbitals, movedParticles)
	return sub.Det()
}

// MeasureAll evaluates a batch of measurements concurrently against the same
// configuration snapshot. The caller must not run FastUpdate or
// RefreshSlater while MeasureAll is in flight.
func (c *Configuration) MeasureAll(ctx context.Context, measurements []Measurement) ([]complex128, error) {
	values := make([]complex128, len(measurements))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range measurements {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := c.LocalEstimator(m.Sites, m.Operators)
			if err != nil {
				return fmt.Errorf("measurement %d: %w", i, err)
			}
			values[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return values, nil
}
