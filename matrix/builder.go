// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Purpose:
//   - Build a Matrix from columns, from a flat buffer, zero- or random-filled,
//     or as the outer product of two vectors.
//   - Funnel every path through newMatrix so the cols*rows invariant has one
//     source of truth.
//
// Complexity quicksheet:
//   - All constructors are O(cols*rows) time and memory.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/vector"
)

// constructor tags used in error wrappers
const (
	ctxNew       = "New"
	ctxNewFlat   = "NewFlat"
	ctxNewZero   = "NewZero"
	ctxNewRandom = "NewRandom"
	ctxNewOuter  = "NewOuter"
)

// New builds a matrix from a slice of columns.
// MAIN DESCRIPTION:
//   - Cols() = len(cols); Rows() = len(cols[0]).
//   - Each inner slice becomes one contiguous column of the backing buffer.
//
// Inputs:
//   - cols: non-empty, non-ragged columns (copied; the caller keeps ownership).
//
// Errors:
//   - ErrShape when cols is empty, the first column is empty, or any column's
//     length differs from the first ("wrong row shape expected R, got N").
//
// Complexity:
//   - Time O(cols*rows), Space O(cols*rows).
func New(cols [][]float32) (*Matrix, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("matrix.%s: no columns: %w", ctxNew, ErrShape)
	}
	rows := len(cols[0])

	buf := make([]float32, 0, len(cols)*rows)
	for _, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("matrix.%s: wrong row shape expected %d, got %d: %w",
				ctxNew, rows, len(col), ErrShape)
		}
		buf = append(buf, col...)
	}

	m, err := newMatrix(vector.New(buf), len(cols), rows)
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNew, err)
	}

	return m, nil
}

// NewFlat builds a cols×rows matrix over a copy of values, which must
// already be in column-major order.
//
// Errors:
//   - ErrShape when len(values) != cols*rows or a dimension is not positive.
func NewFlat(values []float32, cols, rows int) (*Matrix, error) {
	m, err := newMatrix(vector.New(values), cols, rows)
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNewFlat, err)
	}

	return m, nil
}

// NewZero returns a zero-filled matrix.
//
// Errors:
//   - ErrShape when a dimension is not positive or cols*rows overflows int.
func NewZero(cols, rows int) (*Matrix, error) {
	n, err := area(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNewZero, err)
	}
	flat, err := vector.NewZero(n)
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNewZero, err)
	}

	return newMatrix(flat, cols, rows)
}

// NewRandom returns a matrix of independent uniform samples from [0,1).
// The stream comes from vector.NewRandom: deterministic by default, or the
// source injected with WithRand / WithSeed.
//
// Errors:
//   - ErrShape when a dimension is not positive or cols*rows overflows int.
func NewRandom(cols, rows int, opts ...Option) (*Matrix, error) {
	n, err := area(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNewRandom, err)
	}
	flat, err := vector.NewRandom(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNewRandom, err)
	}

	return newMatrix(flat, cols, rows)
}

// NewOuter returns the outer product of a and b: entry (i, j) = a[i] * b[j],
// where i indexes the len(a) columns and j the len(b) rows.
//
// Errors:
//   - ErrNilMatrix for nil inputs; ErrShape when either vector is empty.
//
// Complexity:
//   - Time O(len(a)*len(b)).
func NewOuter(a, b *vector.Vector) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNewOuter, ErrNilMatrix)
	}
	av, bv := a.Raw(), b.Raw()
	cols := make([][]float32, len(av))
	for i, x := range av {
		col := make([]float32, len(bv))
		for j, y := range bv {
			col[j] = x * y
		}
		cols[i] = col
	}

	m, err := New(cols)
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNewOuter, err)
	}

	return m, nil
}
