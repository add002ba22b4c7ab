package matrix

import (
	"fmt"
	"math"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions when rows or cols is non-positive.
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i. Mutating the returned slice does not affect
// the matrix.
// Complexity: O(c) time and memory.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with a copy of v. len(v) must equal Cols().
// Complexity: O(c).
func (m *Dense) SetRow(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.SetRow(%d): %w", i, ErrIndexOutOfBounds)
	}
	if len(v) != m.c {
		return fmt.Errorf("Dense.SetRow(%d): len(v)=%d, want %d: %w", i, len(v), m.c, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// VecMul computes the row-vector × matrix product v·M and returns a fresh
// slice of length Cols(). len(v) must equal Rows().
//
// This is the single propagation step of a distribution through a transition
// matrix: out[j] = Σ_i v[i]·M[i][j].
//
// Complexity: O(r·c) time, O(c) memory.
func (m *Dense) VecMul(v []float64) ([]float64, error) {
	if len(v) != m.r {
		return nil, fmt.Errorf("Dense.VecMul: len(v)=%d, want %d: %w", len(v), m.r, ErrDimensionMismatch)
	}
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		vi := v[i]
		if vi == 0 {
			continue // zero mass contributes nothing
		}
		row := m.data[i*m.c : (i+1)*m.c]
		for j, mij := range row {
			out[j] += vi * mij
		}
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r·c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RowStochastic verifies that every row of m is a probability distribution:
// all entries non-negative and each row summing to 1 within tol.
// Returns ErrNotStochastic (wrapped with the offending row) on violation.
// Complexity: O(r·c).
func RowStochastic(m *Dense, tol float64) error {
	for i := 0; i < m.r; i++ {
		var sum float64
		for _, v := range m.data[i*m.c : (i+1)*m.c] {
			if v < 0 || math.IsNaN(v) {
				return fmt.Errorf("RowStochastic: row %d: %w", i, ErrNotStochastic)
			}
			sum += v
		}
		if math.Abs(sum-1) > tol {
			return fmt.Errorf("RowStochastic: row %d sums to %g: %w", i, sum, ErrNotStochastic)
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
