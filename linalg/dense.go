package linalg

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// ErrSingular is returned when a factorization or solve encounters a matrix
// with no usable pivot.
var ErrSingular = errors.New("matrix is singular")

// ErrShapeMismatch indicates operands whose dimensions do not line up.
type ErrShapeMismatch struct {
	Op           string
	ARows, ACols int
	BRows, BCols int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("%s: shape mismatch %dx%d vs %dx%d", e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// Dense is a row-major dense complex matrix.
type Dense struct {
	rows, cols int
	data       []complex128
}

// NewDense creates a zero-initialized rows x cols matrix.
func NewDense(rows, cols int) *Dense {
	return &Dense{rows: rows, cols: cols, data: make([]complex128, rows*cols)}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at (i, j).
func (m *Dense) At(i, j int) complex128 { return m.data[i*m.cols+j] }

// Set assigns the element at (i, j).
func (m *Dense) Set(i, j int, v complex128) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	c := &Dense{rows: m.rows, cols: m.cols, data: make([]complex128, len(m.data))}
	copy(c.data, m.data)
	return c
}

// SetRow copies src into row i.
func (m *Dense) SetRow(i int, src []complex128) {
	copy(m.data[i*m.cols:(i+1)*m.cols], src)
}

// Row returns row i as a slice view. The caller must not grow it.
func (m *Dense) Row(i int) []complex128 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Gather builds the submatrix with the given row and column indices, in the
// given order. Index validity is the caller's responsibility.
func (m *Dense) Gather(rows, cols []int) *Dense {
	sub := NewDense(len(rows), len(cols))
	for i, r := range rows {
		for j, c := range cols {
			sub.Set(i, j, m.At(r, c))
		}
	}
	return sub
}

// Mul returns m * b.
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if m.cols != b.rows {
		return nil, &ErrShapeMismatch{Op: "mul", ARows: m.rows, ACols: m.cols, BRows: b.rows, BCols: b.cols}
	}

	out := NewDense(m.rows, b.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.At(i, k)
			if a == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += a * b.At(k, j)
			}
		}
	}

	return out, nil
}

// LU holds an LU factorization with partial pivoting: P*A = L*U packed into
// a single matrix, plus the pivot permutation and its sign.
type LU struct {
	lu       *Dense
	pivots   []int
	pivSign  float64
	maxPivot float64 // largest |U[k][k]| seen, for scale-aware tolerance
}

// Factorize computes the LU factorization of a square matrix. It never fails
// outright; singularity shows up as a zero pivot and is reported by Det,
// Solve and Inverse.
func (m *Dense) Factorize() (*LU, error) {
	if m.rows != m.cols {
		return nil, &ErrShapeMismatch{Op: "lu", ARows: m.rows, ACols: m.cols, BRows: m.rows, BCols: m.rows}
	}

	n := m.rows
	lu := m.Clone()
	pivots := make([]int, n)
	sign := 1.0
	maxPivot := 0.0

	for k := 0; k < n; k++ {
		// Partial pivoting on modulus.
		p := k
		best := cmplx.Abs(lu.At(k, k))
		for i := k + 1; i < n; i++ {
			if a := cmplx.Abs(lu.At(i, k)); a > best {
				best = a
				p = i
			}
		}
		pivots[k] = p
		if p != k {
			rk, rp := lu.Row(k), lu.Row(p)
			for j := 0; j < n; j++ {
				rk[j], rp[j] = rp[j], rk[j]
			}
			sign = -sign
		}

		piv := lu.At(k, k)
		if piv == 0 {
			continue // zero pivot column, determinant is zero
		}
		if a := cmplx.Abs(piv); a > maxPivot {
			maxPivot = a
		}

		for i := k + 1; i < n; i++ {
			f := lu.At(i, k) / piv
			lu.Set(i, k, f)
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				lu.Set(i, j, lu.At(i, j)-f*lu.At(k, j))
			}
		}
	}

	return &LU{lu: lu, pivots: pivots, pivSign: sign, maxPivot: maxPivot}, nil
}

// Det returns the determinant from the factorization.
func (f *LU) Det() complex128 {
	det := complex(f.pivSign, 0)
	for k := 0; k < f.lu.rows; k++ {
		det *= f.lu.At(k, k)
	}
	return det
}

// MaxPivot returns the largest pivot modulus, a cheap proxy for the scale of
// the matrix when judging whether a determinant is effectively zero.
func (f *LU) MaxPivot() float64 { return f.maxPivot }

// Solve solves A*X = B for X, overwriting nothing.
func (f *LU) Solve(b *Dense) (*Dense, error) {
	n := f.lu.rows
	if b.rows != n {
		return nil, &ErrShapeMismatch{Op: "solve", ARows: n, ACols: n, BRows: b.rows, BCols: b.cols}
	}
	for k := 0; k < n; k++ {
		if f.lu.At(k, k) == 0 {
			return nil, ErrSingular
		}
	}

	x := b.Clone()

	// Apply the row permutation.
	for k := 0; k < n; k++ {
		if p := f.pivots[k]; p != k {
			rk, rp := x.Row(k), x.Row(p)
			for j := 0; j < x.cols; j++ {
				rk[j], rp[j] = rp[j], rk[j]
			}
		}
	}

	// Forward substitution with unit-diagonal L.
	for i := 1; i < n; i++ {
		for k := 0; k < i; k++ {
			l := f.lu.At(i, k)
			if l == 0 {
				continue
			}
			for j := 0; j < x.cols; j++ {
				x.Set(i, j, x.At(i, j)-l*x.At(k, j))
			}
		}
	}

	// Back substitution with U.
	for i := n - 1; i >= 0; i-- {
		for k := i + 1; k < n; k++ {
			u := f.lu.At(i, k)
			if u == 0 {
				continue
			}
			for j := 0; j < x.cols; j++ {
				x.Set(i, j, x.At(i, j)-u*x.At(k, j))
			}
		}
		d := f.lu.At(i, i)
		for j := 0; j < x.cols; j++ {
			x.Set(i, j, x.At(i, j)/d)
		}
	}

	return x, nil
}

// Inverse solves A*X = I.
func (f *LU) Inverse() (*Dense, error) {
	return f.Solve(Identity(f.lu.rows))
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Dense {
	m := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Det is a convenience wrapper: factorize and return the determinant.
func (m *Dense) Det() (complex128, error) {
	f, err := m.Factorize()
	if err != nil {
		return 0, err
	}
	return f.Det(), nil
}
