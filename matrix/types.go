// SPDX-License-Identifier: MIT

// Package matrix: the Matrix type and its layout view.
// This file contains ONLY the storage types and the single coordinate
// mapping every accessor goes through.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densela/vector"
)

// layout maps logical coordinates onto the physical column-major buffer.
//   - cols, rows are the PHYSICAL dimensions of the buffer.
//   - transposed swaps the meaning of row and col for every logical accessor.
//
// Physical offset of physical (r, c) is c*rows + r.
type layout struct {
	cols, rows int  // physical shape; cols*rows == buffer length
	transposed bool // lazy transpose flag
}

// dims returns the logical (rows, cols).
// Complexity: O(1).
func (l layout) dims() (rows, cols int) {
	if l.transposed {
		return l.cols, l.rows
	}

	return l.rows, l.cols
}

// index returns the physical offset of logical (row, col) without bounds checks.
// Callers iterate inside dims().
// Complexity: O(1).
func (l layout) index(row, col int) int {
	if l.transposed {
		row, col = col, row // logical row is a physical column
	}

	return col*l.rows + row
}

// offset bounds-checks logical (row, col) and returns its physical offset.
//
// Errors:
//   - ErrOutOfRange, reporting the maximal valid row or column.
//
// Complexity: O(1).
func (l layout) offset(row, col int) (int, error) {
	r, c := l.dims()
	if row < 0 || row >= r {
		return 0, fmt.Errorf("max row %d: %w", r-1, ErrOutOfRange)
	}
	if col < 0 || col >= c {
		return 0, fmt.Errorf("max col %d: %w", c-1, ErrOutOfRange)
	}

	return l.index(row, col), nil
}

// flipped returns the layout with the orientation toggled.
func (l layout) flipped() layout {
	l.transposed = !l.transposed

	return l
}

// Matrix is a dense float32 matrix owning one vector.Vector as backing store.
//   - flat holds cols*rows elements in physical column-major order.
//   - lay carries the physical shape and the transpose flag.
//
// The zero value is not usable; construct with New, NewFlat, NewZero,
// NewRandom or NewOuter. A Matrix is owned by one goroutine at a time.
type Matrix struct {
	flat *vector.Vector // physical storage, len == lay.cols*lay.rows
	lay  layout
}

// area returns cols*rows, rejecting non-positive dimensions and products
// that overflow int.
//
// Errors:
//   - ErrShape when cols or rows is not positive or cols*rows > math.MaxInt.
func area(cols, rows int) (int, error) {
	if cols <= 0 || rows <= 0 {
		return 0, fmt.Errorf("cols %d, rows %d must be > 0: %w", cols, rows, ErrShape)
	}
	if cols > math.MaxInt/rows {
		return 0, fmt.Errorf("cols %d * rows %d overflows int: %w", cols, rows, ErrShape)
	}

	return cols * rows, nil
}

// newMatrix is the single construction boundary enforcing the shape invariant.
// It takes ownership of flat.
//
// Errors:
//   - ErrShape when area(cols, rows) fails or flat.Len() != cols*rows.
func newMatrix(flat *vector.Vector, cols, rows int) (*Matrix, error) {
	n, err := area(cols, rows)
	if err != nil {
		return nil, err
	}
	if flat.Len() != n {
		return nil, fmt.Errorf("cols * rows = %d has to be the same len as the data = %d: %w",
			n, flat.Len(), ErrShape)
	}

	return &Matrix{flat: flat, lay: layout{cols: cols, rows: rows}}, nil
}
