package fermigo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fermigo"
	"github.com/hupe1980/fermigo/checkpoint"
	"github.com/hupe1980/fermigo/model"
	"github.com/hupe1980/fermigo/util"
)

func TestSnapshotRestore(t *testing.T) {
	lat := model.Lattice{LocalDim: 1, Length: 8}
	ham := model.RingHamiltonian(8)
	cfg, err := fermigo.New(4, occupancyOf(8, 0, 2, 4, 6), lat, ham)
	require.NoError(t, err)

	// Walk a bit so the particle map is permuted relative to orbital order.
	rng := util.NewRNG(5)
	for accepted := 0; accepted < 10; {
		from, to, ok := rng.RandomMove(cfg.Occupancy())
		require.True(t, ok)
		p, err := cfg.ParticleAt(from)
		require.NoError(t, err)
		if cfg.FastUpdate([]int{p}, []int{to}) == nil {
			accepted++
		}
	}

	restored, err := fermigo.Restore(cfg.Snapshot(), ham)
	require.NoError(t, err)

	assert.True(t, restored.Occupancy().Equal(cfg.Occupancy()))
	assert.Equal(t, cfg.FockState(), restored.FockState())
	for p := 0; p < 4; p++ {
		want, err := cfg.OrbitalOf(p)
		require.NoError(t, err)
		got, err := restored.OrbitalOf(p)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// The restored W is drift-free; the original agrees within incremental
	// round-off.
	assertDenseClose(t, restored.AuxMatrix(), cfg.AuxMatrix(), 1e-8)
}

func TestRestoreValidation(t *testing.T) {
	ham := model.RingHamiltonian(8)

	snap := &checkpoint.Snapshot{
		ParticleCount:     2,
		LocalDim:          1,
		Sites:             8,
		SelectedStates:    []int{0, 1},
		ParticleToOrbital: []int{3, 3}, // duplicate orbital
	}
	_, err := fermigo.Restore(snap, ham)
	assert.Error(t, err)

	snap.ParticleToOrbital = []int{3, 99} // out of range
	_, err = fermigo.Restore(snap, ham)
	assert.Error(t, err)

	snap.ParticleToOrbital = []int{3} // wrong length
	_, err = fermigo.Restore(snap, ham)
	assert.Error(t, err)
}
