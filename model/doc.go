// Package model defines the collaborator types the configuration core
// consumes but does not own.
//
//   - Lattice: per-site local Hilbert-space dimension and site count
//   - Hamiltonian: the fixed single-particle eigenstate matrix
//
// Both are immutable for the lifetime of any Configuration built on them.
package model
