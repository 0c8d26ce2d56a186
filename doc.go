// Package fermigo maintains the state of a fermionic many-body wavefunction
// configuration during a Variational Monte Carlo (VMC) walk and evaluates
// local operator expectation values against it.
//
// # Quick Start
//
//	lat := model.Lattice{LocalDim: 1, Length: 8}
//	ham := model.RingHamiltonian(lat.Orbitals())
//
//	occ := bitset.New(8)
//	occ.Set(0).Set(2).Set(4).Set(6)
//
//	cfg, _ := fermigo.New(4, occ, lat, ham)
//
//	// Accepted Monte Carlo move: particle 0 hops to orbital 1.
//	_ = cfg.FastUpdate([]int{0}, []int{1})
//
//	// Measure a local operator without touching the walker state.
//	value, _ := cfg.LocalEstimator([]int{0}, []*linalg.Sparse{numberOp})
//
// # State Representation
//
// A Configuration holds a Slater-determinant representation of an
// occupied-orbital configuration: the flat occupancy bit-vector, the derived
// per-site Fock state, the particle-to-orbital map fixed at construction, the
// Slater matrix of occupied eigenstate rows, and the auxiliary matrix
//
//	W = Φ[:, states] · S⁻¹
//
// W is what makes the walk cheap: accepted moves update it with a rank-k
// Sherman-Morrison correction in O(N²) instead of re-inverting in O(N³), and
// the local estimator reads determinant ratios straight out of small W
// submatrices.
//
// # Drift Control
//
// Repeated incremental updates accumulate floating-point drift. Call
// RefreshSlater at a cadence of the caller's choosing to recompute the Slater
// matrix and W from scratch against the live particle map.
//
// # Concurrency
//
// A Configuration is owned by exactly one walker. LocalEstimator is
// read-only and safe to run concurrently against an unchanging
// Configuration (see MeasureAll); updates must be serialized relative to
// reads by the caller.
package fermigo
