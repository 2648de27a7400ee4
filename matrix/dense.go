package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape if rows or cols are not positive.
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("matrix: (%d,%d) outside %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange for invalid indices and ErrNaN for NaN values;
// ±Inf is accepted (it encodes "no path"). Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return fmt.Errorf("matrix: Set(%d,%d): %w", row, col, ErrNaN)
	}
	m.data[idx] = v

	return nil
}

// Fill replaces the whole matrix content with vals, interpreted row-major.
// Returns ErrBadLength if len(vals) != Rows()*Cols(), ErrNaN if any value
// is NaN; on error the matrix is left unchanged. Complexity: O(r·c).
func (m *Dense) Fill(vals []float64) error {
	if len(vals) != len(m.data) {
		return fmt.Errorf("matrix: Fill got %d values for %dx%d: %w", len(vals), m.r, m.c, ErrBadLength)
	}
	for i, v := range vals {
		if math.IsNaN(v) {
			return fmt.Errorf("matrix: Fill value #%d: %w", i, ErrNaN)
		}
	}
	copy(m.data, vals)

	return nil
}

// Row returns a copy of row i. Returns ErrOutOfRange for invalid i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("matrix: Row(%d) outside %d rows: %w", i, m.r, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Values returns the backing row-major slice. Mutations through the slice
// are visible in the matrix; it exists so hot loops (the engine's triple
// relaxation pass) can run without per-element bounds dispatch. Callers
// that need isolation should Clone first.
func (m *Dense) Values() []float64 { return m.data }

// Clone returns a deep, independent copy. Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging: one space-separated line
// per row, +Inf rendered as ∞.
func (m *Dense) String() string {
	var b strings.Builder
	var v float64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			v = m.data[i*m.c+j]
			if math.IsInf(v, 1) {
				b.WriteString("∞")
			} else {
				fmt.Fprintf(&b, "%g", v)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
