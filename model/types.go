package model

import (
	"math"
	"math/cmplx"

	"github.com/hupe1980/fermigo/linalg"
)

// Lattice describes the geometry a configuration lives on.
type Lattice struct {
	// LocalDim is the local Hilbert-space dimension: orbitals per site.
	LocalDim int
	// Length is the number of sites.
	Length int
}

// Orbitals returns the total orbital count, LocalDim * Length.
func (l Lattice) Orbitals() int { return l.LocalDim * l.Length }

// Hamiltonian exposes a fixed single-particle eigenbasis. Implementations
// must be immutable: the core reads States repeatedly and never copies it
// defensively.
type Hamiltonian interface {
	// States is the eigenstate matrix: rows indexed by orbital (band),
	// columns by eigenstate.
	States() *linalg.Dense
	// Bands is the total orbital count, equal to States().Rows().
	Bands() int
}

// EigenHamiltonian is a Hamiltonian backed by a precomputed eigenstate
// matrix, the common case when diagonalization happens upstream.
type EigenHamiltonian struct {
	states *linalg.Dense
}

// NewEigenHamiltonian wraps an eigenstate matrix. The matrix is referenced,
// not copied; the caller must not mutate it afterwards.
func NewEigenHamiltonian(states *linalg.Dense) *EigenHamiltonian {
	return &EigenHamiltonian{states: states}
}

// States implements Hamiltonian.
func (h *EigenHamiltonian) States() *linalg.Dense { return h.states }

// Bands implements Hamiltonian.
func (h *EigenHamiltonian) Bands() int { return h.states.Rows() }

// RingHamiltonian builds the plane-wave eigenbasis of a 1D tight-binding
// ring with the given orbital count:
//
//	states[j][k] = exp(2πi·j·k/N) / sqrt(N)
//
// Useful as a physically meaningful Hamiltonian for tests and examples.
func RingHamiltonian(orbitals int) *EigenHamiltonian {
	n := orbitals
	states := linalg.NewDense(n, n)
	norm := 1 / math.Sqrt(float64(n))
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			phase := 2 * math.Pi * float64(j) * float64(k) / float64(n)
			states.Set(j, k, complex(norm, 0)*cmplx.Exp(complex(0, phase)))
		}
	}
	return NewEigenHamiltonian(states)
}
