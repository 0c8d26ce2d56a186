package fermigo

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/fermigo/fock"
	"github.com/hupe1980/fermigo/linalg"
	"github.com/hupe1980/fermigo/model"
)

// Configuration is the walker-owned state of a fermionic configuration: the
// occupancy bit-vector, the derived per-site Fock state, the fixed-order
// particle-to-orbital map, the Slater matrix and the auxiliary matrix W.
//
// A Configuration is mutated destructively across the walk and must be owned
// by exactly one walker. Independent Monte Carlo chains need independent
// instances.
type Configuration struct {
	lattice     model.Lattice
	hamiltonian model.Hamiltonian

	particleCount int
	occupancy     *bitset.BitSet
	fockState     fock.State

	// particleToOrbital[p] is the orbital particle p occupies. The filling
	// order is fixed at construction (ascending orbital order) and only ever
	// reassigned per-particle on a move.
	particleToOrbital []int
	// orbitalToParticle is the inverse map, -1 for empty orbitals.
	orbitalToParticle []int

	// slater has rows = occupied orbitals in particleToOrbital order,
	// columns = selected eigenstates.
	slater *linalg.Dense
	// aux is W = Φ[:, states] · S⁻¹, orbitals x particles. It must stay
	// numerically synchronized with slater.
	aux *linalg.Dense

	selectedStates []int
	detTolerance   float64

	metrics MetricsCollector
	logger  *Logger
}

// New constructs a Configuration from an initial occupancy.
//
// It fails with a validation error if the occupancy's set-bit count differs
// from particleCount, if the occupancy length disagrees with the lattice or
// the Hamiltonian band count, or if the initial Slater determinant is
// numerically singular.
func New(particleCount int, occupancy *bitset.BitSet, lattice model.Lattice, hamiltonian model.Hamiltonian, optFns ...Option) (*Configuration, error) {
	opts := applyOptions(optFns)

	if particleCount <= 0 {
		return nil, fmt.Errorf("particle count must be positive, got %d", particleCount)
	}
	if got := int(occupancy.Count()); got != particleCount {
		return nil, &ErrParticleCountMismatch{Expected: particleCount, Actual: got}
	}
	bands := hamiltonian.Bands()
	if got := int(occupancy.Len()); got != bands {
		return nil, &ErrDimensionMismatch{What: "occupancy/bands", Expected: bands, Actual: got}
	}
	if got := lattice.Orbitals(); got != bands {
		return nil, &ErrDimensionMismatch{What: "lattice/bands", Expected: bands, Actual: got}
	}

	states := opts.selectedStates
	if states == nil {
		states = make([]int, particleCount)
		for i := range states {
			states[i] = i
		}
	}
	if len(states) != particleCount {
		return nil, &ErrDimensionMismatch{What: "selected states", Expected: particleCount, Actual: len(states)}
	}
	for _, s := range states {
		if s < 0 || s >= hamiltonian.States().Cols() {
			return nil, fmt.Errorf("selected state %d out of range [0,%d)", s, hamiltonian.States().Cols())
		}
	}

	fockState, err := fock.Encode(occupancy, lattice.LocalDim, lattice.Length)
	if err != nil {
		return nil, err
	}

	// Fermion filling order: particle p is the p-th occupied orbital in
	// ascending orbital order.
	particleToOrbital := make([]int, 0, particleCount)
	orbitalToParticle := make([]int, bands)
	for i := range orbitalToParticle {
		orbitalToParticle[i] = -1
	}
	for orb, ok := occupancy.NextSet(0); ok; orb, ok = occupancy.NextSet(orb + 1) {
		orbitalToParticle[orb] = len(particleToOrbital)
		particleToOrbital = append(particleToOrbital, int(orb))
	}

	c := &Configuration{
		lattice:           lattice,
		hamiltonian:       hamiltonian,
		particleCount:     particleCount,
		occupancy:         occupancy.Clone(),
		fockState:         fockState,
		particleToOrbital: particleToOrbital,
		orbitalToParticle: orbitalToParticle,
		selectedStates:    states,
		detTolerance:      opts.detTolerance,
		metrics:           opts.metricsCollector,
		logger:            opts.logger.WithParticles(particleCount).WithOrbitals(bands),
	}

	if err := c.rebuildSlater(); err != nil {
		return nil, err
	}

	return c, nil
}

// rebuildSlater recomputes the Slater matrix and W from the live
// particleToOrbital map. Shared by construction and RefreshSlater.
func (c *Configuration) rebuildSlater() error {
	eigen := c.hamiltonian.States()

	slater := eigen.Gather(c.particleToOrbital, c.selectedStates)

	f, err := slater.Factorize()
	if err != nil {
		return err
	}
	if det := cmplx.Abs(f.Det()); det < c.detTolerance*math.Max(1, f.MaxPivot()) {
		return fmt.Errorf("%w: |det| = %g", ErrSingularSlater, det)
	}

	inv, err := f.Inverse()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSingularSlater, err)
	}

	allOrbitals := make([]int, c.hamiltonian.Bands())
	for i := range allOrbitals {
		allOrbitals[i] = i
	}
	aux, err := eigen.Gather(allOrbitals, c.selectedStates).Mul(inv)
	if err != nil {
		return err
	}

	c.slater = slater
	c.aux = aux
	return nil
}

// ParticleCount returns the fixed particle count.
func (c *Configuration) ParticleCount() int { return c.particleCount }

// Lattice returns the lattice descriptor the configuration was built on.
func (c *Configuration) Lattice() model.Lattice { return c.lattice }

// SelectedStates returns the eigenstate columns forming the Slater matrix.
// The slice is owned by the configuration.
func (c *Configuration) SelectedStates() []int { return c.selectedStates }

// Occupancy returns a copy of the occupancy bit-vector.
func (c *Configuration) Occupancy() *bitset.BitSet { return c.occupancy.Clone() }

// FockState returns a copy of the per-site Fock state.
func (c *Configuration) FockState() fock.State {
	out := make(fock.State, len(c.fockState))
	copy(out, c.fockState)
	return out
}

// OrbitalOf returns the orbital occupied by the given particle.
func (c *Configuration) OrbitalOf(particle int) (int, error) {
	if particle < 0 || particle >= c.particleCount {
		return 0, fmt.Errorf("particle %d out of range [0,%d)", particle, c.particleCount)
	}
	return c.particleToOrbital[particle], nil
}

// ParticleAt returns the particle occupying the given orbital.
func (c *Configuration) ParticleAt(orbital int) (int, error) {
	if orbital < 0 || orbital >= len(c.orbitalToParticle) {
		return 0, fmt.Errorf("orbital %d out of range [0,%d)", orbital, len(c.orbitalToParticle))
	}
	p := c.orbitalToParticle[orbital]
	if p < 0 {
		return 0, &ErrOrbitalNotOccupied{Orbital: orbital}
	}
	return p, nil
}

// AuxMatrix returns a copy of the auxiliary matrix W.
func (c *Configuration) AuxMatrix() *linalg.Dense { return c.aux.Clone() }

// SlaterMatrix returns a copy of the Slater matrix.
func (c *Configuration) SlaterMatrix() *linalg.Dense { return c.slater.Clone() }
