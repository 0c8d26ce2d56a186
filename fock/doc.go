// Package fock maps between the two representations of an occupied-orbital
// configuration: the flat occupancy bit-vector over all orbitals, and the
// per-site integer Fock state.
//
// The mapping is a fixed-width chunking: site s owns the localDim bits
// [s*localDim, (s+1)*localDim) of the occupancy vector, read little-endian as
// the site's Fock index. Both directions are pure and allocation is limited
// to the returned value.
package fock
