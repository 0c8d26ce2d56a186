// Package util provides deterministic randomness helpers for tests,
// examples and benchmarks.
package util

import (
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// RandomOccupancy generates an occupancy bit-vector of the given length with
// exactly particles bits set, uniformly at random.
func (r *RNG) RandomOccupancy(length, particles int) *bitset.BitSet {
	perm := r.rand.Perm(length)
	occ := bitset.New(uint(length))
	for _, orb := range perm[:particles] {
		occ.Set(uint(orb))
	}
	return occ
}

// RandomMove picks an occupied orbital and an unoccupied orbital from the
// given occupancy, the shape of a single-particle Monte Carlo proposal.
// Returns false if the occupancy is full or empty.
func (r *RNG) RandomMove(occ *bitset.BitSet) (from, to int, ok bool) {
	n := int(occ.Len())
	set := int(occ.Count())
	if set == 0 || set == n {
		return 0, 0, false
	}

	fromIdx := r.rand.Intn(set)
	toIdx := r.rand.Intn(n - set)
	for i := 0; i < n; i++ {
		if occ.Test(uint(i)) {
			if fromIdx == 0 {
				from = i
			}
			fromIdx--
		} else {
			if toIdx == 0 {
				to = i
			}
			toIdx--
		}
	}

	return from, to, true
}
