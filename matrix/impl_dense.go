// SPDX-License-Identifier: MIT

// Package matrix - shape accessors, element access and lazy transpose.
//
// Purpose:
//   - Expose the logical view (rows, cols, elements) of the column-major buffer.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors.
//   - Keep every coordinate swap inside layout (types.go).
//
// Complexity quicksheet:
//   - Rows/Cols/At/Set/Transpose: O(1); Row/Col: O(n); Flat: O(r*c).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densela/vector"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the logical row count (physical cols when transposed).
// Complexity: O(1).
func (m *Matrix) Rows() int {
	r, _ := m.lay.dims()

	return r
}

// Cols returns the logical column count (physical rows when transposed).
// Complexity: O(1).
func (m *Matrix) Cols() int {
	_, c := m.lay.dims()

	return c
}

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.lay.dims() }

// IsSquare reports Cols() == Rows().
func (m *Matrix) IsSquare() bool { return m.lay.cols == m.lay.rows }

// IsTransposed reports whether the orientation flag is set.
func (m *Matrix) IsTransposed() bool { return m.lay.transposed }

// Transpose toggles the orientation flag. No data moves.
// Complexity: O(1).
func (m *Matrix) Transpose() { m.lay = m.lay.flipped() }

// At returns the element at logical (row, col).
//
// Errors:
//   - ErrOutOfRange; the message reports the maximal valid row or col.
//
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float32, error) {
	off, err := m.lay.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.flat.Raw()[off], nil
}

// Set stores v at logical (row, col).
//
// Errors:
//   - ErrOutOfRange, as in At.
//
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float32) error {
	off, err := m.lay.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.flat.Raw()[off] = v

	return nil
}

// get is the unchecked read used by loops that iterate inside dims().
func (m *Matrix) get(row, col int) float32 { return m.flat.Raw()[m.lay.index(row, col)] }

// Col returns logical column i as a fresh Vector of length Rows().
// When transposed this is physical row i.
//
// Errors:
//   - ErrOutOfRange, reporting the maximal valid column.
//
// Complexity: O(Rows()).
func (m *Matrix) Col(i int) (*vector.Vector, error) {
	if i < 0 || i >= m.Cols() {
		return nil, fmt.Errorf("Matrix.%s(%d): max col %d: %w", ctxCol, i, m.Cols()-1, ErrOutOfRange)
	}
	if m.lay.transposed {
		return m.physicalRow(i), nil
	}

	return m.physicalCol(i), nil
}

// Row returns logical row i as a fresh Vector of length Cols().
// When transposed this is physical column i.
//
// Errors:
//   - ErrOutOfRange, reporting the maximal valid row.
//
// Complexity: O(Cols()).
func (m *Matrix) Row(i int) (*vector.Vector, error) {
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("Matrix.%s(%d): max row %d: %w", ctxRow, i, m.Rows()-1, ErrOutOfRange)
	}
	if m.lay.transposed {
		return m.physicalCol(i), nil
	}

	return m.physicalRow(i), nil
}

// physicalCol copies the contiguous run of physical column c.
func (m *Matrix) physicalCol(c int) *vector.Vector {
	base := c * m.lay.rows

	return vector.New(m.flat.Raw()[base : base+m.lay.rows])
}

// physicalRow gathers physical row r with stride rows.
func (m *Matrix) physicalRow(r int) *vector.Vector {
	raw := m.flat.Raw()
	out := make([]float32, m.lay.cols)
	for c := range out {
		out[c] = raw[c*m.lay.rows+r]
	}

	return vector.New(out)
}

// Flat returns the logical column-major flattening as a fresh Vector.
// Untransposed this is a copy of storage; transposed it is rebuilt by
// concatenating every logical column (physical row).
//
// Complexity: O(r*c).
func (m *Matrix) Flat() *vector.Vector {
	if !m.lay.transposed {
		return m.flat.Clone()
	}
	raw := m.flat.Raw()
	out := make([]float32, 0, len(raw))
	for r := 0; r < m.lay.rows; r++ {
		for c := 0; c < m.lay.cols; c++ {
			out = append(out, raw[c*m.lay.rows+r])
		}
	}

	return vector.New(out)
}

// Clone returns a deep copy with the same orientation.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	return &Matrix{flat: m.flat.Clone(), lay: m.lay}
}

// Equal reports whether both matrices have the same logical shape and the
// same logical flattening. Orientation flags themselves are not compared.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	r, c := m.Shape()
	or, oc := other.Shape()
	if r != or || c != oc {
		return false
	}

	return m.Flat().Equal(other.Flat())
}

// String renders one line per logical column using vector formatting.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.Cols(); i++ {
		col, _ := m.Col(i) // i < Cols(): cannot fail
		b.WriteString(col.String())
		b.WriteByte('\n')
	}

	return b.String()
}
