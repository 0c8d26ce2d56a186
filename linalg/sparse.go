package linalg

// Entry is one stored element of a sparse matrix.
type Entry struct {
	Row, Col int
	Val      complex128
}

// Sparse is a coordinate-format (COO) sparse complex matrix. Local operators
// over a site's Fock basis are tiny and touch only a handful of substates, so
// a flat entry list beats any indexed structure.
type Sparse struct {
	rows, cols int
	entries    []Entry
}

// NewSparse creates an empty rows x cols sparse matrix.
func NewSparse(rows, cols int) *Sparse {
	return &Sparse{rows: rows, cols: cols}
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.cols }

// Append adds an explicit entry. Duplicate coordinates are allowed and are
// treated additively by consumers; zero values are dropped.
func (s *Sparse) Append(row, col int, v complex128) {
	if v == 0 {
		return
	}
	s.entries = append(s.entries, Entry{Row: row, Col: col, Val: v})
}

// Entries returns the stored entries. The slice is owned by the matrix.
func (s *Sparse) Entries() []Entry { return s.entries }

// RowEntries returns the entries of one row.
func (s *Sparse) RowEntries(row int) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Row == row {
			out = append(out, e)
		}
	}
	return out
}
