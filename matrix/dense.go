// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix with every cell set to fill.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate and fill the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T any](rows, cols int, fill T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewSquare is shorthand for NewDense(n, n, fill).
func NewSquare[T any](n int, fill T) (*Dense[T], error) {
	return NewDense(n, n, fill)
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Cell returns the element at (row, col) without a bounds check beyond the
// slice's own. Intended for kernels that validated their indices up front.
func (m *Dense[T]) Cell(row, col int) T { return m.data[row*m.c+col] }

// SetCell assigns v at (row, col) without a bounds check beyond the slice's own.
func (m *Dense[T]) SetCell(row, col int, v T) { m.data[row*m.c+col] = v }

// Fill sets every cell to v.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// ClearCross sets row k and column k to v. Elimination uses it to detach
// a pivot once its paths have been folded into the remaining cells.
// Complexity: O(r+c).
func (m *Dense[T]) ClearCross(k int, v T) error {
	if k < 0 || k >= m.r || k >= m.c {
		return denseErrorf("ClearCross", k, k, ErrOutOfRange)
	}
	var i int
	for i = 0; i < m.c; i++ {
		m.data[k*m.c+i] = v
	}
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+k] = v
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix. Cell values are copied
// shallowly; pointer-typed T values are shared.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for easy debugging.
// Cells are formatted with %v, one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
