package fermigo

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/fermigo/checkpoint"
	"github.com/hupe1980/fermigo/fock"
	"github.com/hupe1980/fermigo/model"
)

// Snapshot captures the irreducible walker state for checkpointing: the
// particle map, lattice shape and selected eigenstates. Matrices are not
// captured; Restore recomputes them from the Hamiltonian.
//
// The Step field is left zero — the Monte Carlo step counter belongs to the
// driver, which can set it before saving.
func (c *Configuration) Snapshot() *checkpoint.Snapshot {
	states := make([]int, len(c.selectedStates))
	copy(states, c.selectedStates)
	p2o := make([]int, len(c.particleToOrbital))
	copy(p2o, c.particleToOrbital)

	return &checkpoint.Snapshot{
		ParticleCount:     c.particleCount,
		LocalDim:          c.lattice.LocalDim,
		Sites:             c.lattice.Length,
		SelectedStates:    states,
		ParticleToOrbital: p2o,
	}
}

// Restore rebuilds a Configuration from a checkpoint snapshot and the same
// Hamiltonian the original walker ran against. The live particle-to-orbital
// permutation is preserved exactly; the Slater and auxiliary matrices are
// recomputed from scratch, which also discards any drift the original
// accumulated before checkpointing.
//
// The selected eigenstates always come from the snapshot; a
// WithSelectedStates option is ignored here.
func Restore(snap *checkpoint.Snapshot, hamiltonian model.Hamiltonian, optFns ...Option) (*Configuration, error) {
	opts := applyOptions(optFns)

	lattice := model.Lattice{LocalDim: snap.LocalDim, Length: snap.Sites}
	bands := hamiltonian.Bands()
	if lattice.Orbitals() != bands {
		return nil, &ErrDimensionMismatch{What: "lattice/bands", Expected: bands, Actual: lattice.Orbitals()}
	}
	if len(snap.ParticleToOrbital) != snap.ParticleCount {
		return nil, &ErrParticleCountMismatch{Expected: snap.ParticleCount, Actual: len(snap.ParticleToOrbital)}
	}
	if len(snap.SelectedStates) != snap.ParticleCount {
		return nil, &ErrDimensionMismatch{What: "selected states", Expected: snap.ParticleCount, Actual: len(snap.SelectedStates)}
	}

	occupancy := bitset.New(uint(bands))
	orbitalToParticle := make([]int, bands)
	for i := range orbitalToParticle {
		orbitalToParticle[i] = -1
	}
	for p, orb := range snap.ParticleToOrbital {
		if orb < 0 || orb >= bands {
			return nil, fmt.Errorf("snapshot orbital %d out of range [0,%d)", orb, bands)
		}
		if orbitalToParticle[orb] >= 0 {
			return nil, fmt.Errorf("snapshot orbital %d occupied twice", orb)
		}
		occupancy.Set(uint(orb))
		orbitalToParticle[orb] = p
	}

	fockState, err := fock.Encode(occupancy, lattice.LocalDim, lattice.Length)
	if err != nil {
		return nil, err
	}

	p2o := make([]int, snap.ParticleCount)
	copy(p2o, snap.ParticleToOrbital)
	states := make([]int, snap.ParticleCount)
	copy(states, snap.SelectedStates)

	c := &Configuration{
		lattice:           lattice,
		hamiltonian:       hamiltonian,
		particleCount:     snap.ParticleCount,
		occupancy:         occupancy,
		fockState:         fockState,
		particleToOrbital: p2o,
		orbitalToParticle: orbitalToParticle,
		selectedStates:    states,
		detTolerance:      opts.detTolerance,
		metrics:           opts.metricsCollector,
		logger:            opts.logger.WithParticles(snap.ParticleCount).WithOrbitals(bands),
	}

	if err := c.rebuildSlater(); err != nil {
		return nil, err
	}

	return c, nil
}
