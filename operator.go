package fermigo

import (
	"math/bits"

	"github.com/hupe1980/fermigo/fock"
	"github.com/hupe1980/fermigo/linalg"
)

// NumberOperator returns the total particle-number operator on one site's
// local Fock basis: diagonal, with the substate's occupation count.
func NumberOperator(localDim int) *linalg.Sparse {
	dim := fock.LocalDimFock(localDim)
	op := linalg.NewSparse(dim, dim)
	for f := 0; f < dim; f++ {
		op.Append(f, f, complex(float64(bits.OnesCount(uint(f))), 0))
	}
	return op
}

// OccupationOperator returns the occupation operator n of a single local
// orbital on one site's local Fock basis.
func OccupationOperator(local, localDim int) *linalg.Sparse {
	dim := fock.LocalDimFock(localDim)
	op := linalg.NewSparse(dim, dim)
	for f := 0; f < dim; f++ {
		if f&(1<<uint(local)) != 0 {
			op.Append(f, f, 1)
		}
	}
	return op
}

// HoppingOperator returns the intra-site hopping operator
//
//	c†_a c_b + c†_b c_a
//
// on one site's local Fock basis, with the fermionic sign from the occupied
// orbitals between a and b.
func HoppingOperator(a, b, localDim int) *linalg.Sparse {
	dim := fock.LocalDimFock(localDim)
	op := linalg.NewSparse(dim, dim)
	if a == b {
		return op
	}

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	// Mask of the orbitals strictly between a and b; their occupation sets
	// the Jordan-Wigner sign.
	between := uint((1<<uint(hi))-1) &^ uint((1<<uint(lo+1))-1)

	for f := 0; f < dim; f++ {
		if f&(1<<uint(b)) == 0 || f&(1<<uint(a)) != 0 {
			continue
		}
		final := f&^(1<<uint(b)) | 1<<uint(a)
		sign := 1.0
		if bits.OnesCount(uint(f)&between)%2 == 1 {
			sign = -1
		}
		op.Append(final, f, complex(sign, 0))
		op.Append(f, final, complex(sign, 0))
	}

	return op
}
