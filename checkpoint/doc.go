// Package checkpoint persists and restores walker configuration state so
// long Monte Carlo runs can resume after interruption.
//
// A checkpoint stores only the irreducible walker state: particle count,
// lattice shape, selected eigenstates and the live particle-to-orbital map
// (the occupancy is derivable from it). Matrices are never persisted; the
// restore path recomputes them from the Hamiltonian, which also clears any
// accumulated floating-point drift.
//
// The on-disk format is a fixed header (magic, version, compression codec
// name, payload length, CRC32) followed by the compressed payload.
// Compression codecs are selected by stable name, so files are
// self-describing.
package checkpoint
