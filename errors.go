package fermigo

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularSlater is returned when a Slater matrix is numerically
	// singular: the configuration is physically degenerate and invalid.
	ErrSingularSlater = errors.New("slater matrix is singular")

	// ErrSingularUpdate is returned when the rank-k correction matrix of an
	// incremental update is singular: the proposed move would produce a
	// zero-determinant configuration and must be rejected by the driver.
	ErrSingularUpdate = errors.New("rank-k update matrix is singular")

	// ErrNotConserving is returned when an operator set connects the
	// configuration to a substate with the wrong particle count. This is a
	// usage error, not a transient condition.
	ErrNotConserving = errors.New("operator does not conserve particle number")
)

// ErrParticleCountMismatch indicates an occupancy whose set-bit count does
// not equal the declared particle count.
type ErrParticleCountMismatch struct {
	Expected int // declared particle count
	Actual   int // set bits in the occupancy
}

func (e *ErrParticleCountMismatch) Error() string {
	return fmt.Sprintf("particle count mismatch: expected %d, occupancy has %d", e.Expected, e.Actual)
}

// ErrDimensionMismatch indicates disagreeing collaborator dimensions, e.g.
// an occupancy length that differs from the Hamiltonian band count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	What     string
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s dimension mismatch: expected %d, got %d", e.What, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrOrbitalNotOccupied indicates an inverse particle lookup on an orbital
// no particle occupies. Reaching it means the configuration state is
// corrupted or an operator acted outside the occupancy invariants.
type ErrOrbitalNotOccupied struct {
	Orbital int
}

func (e *ErrOrbitalNotOccupied) Error() string {
	return fmt.Sprintf("orbital %d is not occupied", e.Orbital)
}

// ErrOperatorShape indicates a local operator whose basis dimension does not
// match the site's local Fock space.
type ErrOperatorShape struct {
	Site     int
	Expected int // 2^localDim
	Rows     int
	Cols     int
}

func (e *ErrOperatorShape) Error() string {
	return fmt.Sprintf("operator on site %d: want %dx%d over the local Fock basis, got %dx%d",
		e.Site, e.Expected, e.Expected, e.Rows, e.Cols)
}
