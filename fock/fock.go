package fock

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// State is the per-site integer encoding of a configuration: State[s] is the
// Fock index of site s, i.e. the site's localDim occupancy bits read as a
// little-endian integer.
type State []uint64

// ErrLengthMismatch indicates an occupancy bit-vector whose length does not
// equal localDim * sites.
type ErrLengthMismatch struct {
	Expected int // localDim * sites
	Actual   int // occupancy length
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("occupancy length mismatch: expected %d bits, got %d", e.Expected, e.Actual)
}

// Encode chunks the occupancy bit-vector into per-site Fock indices.
func Encode(occupancy *bitset.BitSet, localDim, sites int) (State, error) {
	if int(occupancy.Len()) != localDim*sites {
		return nil, &ErrLengthMismatch{Expected: localDim * sites, Actual: int(occupancy.Len())}
	}

	state := make(State, sites)
	for s := 0; s < sites; s++ {
		var v uint64
		for j := 0; j < localDim; j++ {
			if occupancy.Test(uint(s*localDim + j)) {
				v |= 1 << uint(j)
			}
		}
		state[s] = v
	}

	return state, nil
}

// Decode expands each site's Fock index back into localDim occupancy bits and
// concatenates them. It is the exact inverse of Encode:
//
//	Decode(Encode(o, d, s), d) == o
func Decode(state State, localDim int) *bitset.BitSet {
	occupancy := bitset.New(uint(localDim * len(state)))
	for s, v := range state {
		for j := 0; j < localDim; j++ {
			if v&(1<<uint(j)) != 0 {
				occupancy.Set(uint(s*localDim + j))
			}
		}
	}

	return occupancy
}

// SiteOrbital decomposes a flat orbital index into its (site, localOrbital)
// pair. Indices are 0-based.
func SiteOrbital(orbital, localDim int) (site, local int) {
	return orbital / localDim, orbital % localDim
}

// Orbital is the inverse of SiteOrbital.
func Orbital(site, local, localDim int) int {
	return site*localDim + local
}

// LocalDimFock is the dimension of one site's local Fock basis: 2^localDim
// substates per site.
func LocalDimFock(localDim int) int {
	return 1 << uint(localDim)
}
