package model

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatticeOrbitals(t *testing.T) {
	assert.Equal(t, 8, Lattice{LocalDim: 2, Length: 4}.Orbitals())
	assert.Equal(t, 5, Lattice{LocalDim: 1, Length: 5}.Orbitals())
}

func TestRingHamiltonian(t *testing.T) {
	ham := RingHamiltonian(6)

	require.Equal(t, 6, ham.Bands())
	states := ham.States()
	require.Equal(t, 6, states.Rows())
	require.Equal(t, 6, states.Cols())

	// Plane-wave columns are orthonormal.
	for k1 := 0; k1 < 6; k1++ {
		for k2 := 0; k2 < 6; k2++ {
			var dot complex128
			for j := 0; j < 6; j++ {
				dot += cmplx.Conj(states.At(j, k1)) * states.At(j, k2)
			}
			want := 0.0
			if k1 == k2 {
				want = 1.0
			}
			assert.InDelta(t, want, real(dot), 1e-12)
			assert.InDelta(t, 0, imag(dot), 1e-12)
		}
	}
}
