// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Scalar broadcast, per-row vector broadcast and matrix-matrix elementwise
//     kernels, plus the reductions built on them.
//
// Design:
//   - Scalar ops work on storage directly; orientation is irrelevant.
//   - Vector broadcasts walk the logical (row, col) grid through layout.index.
//   - Matrix ops combine the two logical flattenings, then reset storage to an
//     untransposed layout with the operand's shape.
//
// Determinism & Performance:
//   - Fixed loop orders (col→row over the logical grid, 0..n-1 over storage).
//   - O(r*c) time; matrix ops allocate two flattenings.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/vector"
)

// Operation name constants for unified error wrapping.
const (
	opAddVec = "AddVec"
	opSubVec = "SubVec"
	opMulVec = "MulVec"
	opDivVec = "DivVec"
	opAddMat = "AddMat"
	opSubMat = "SubMat"
	opMulMat = "MulMat"
	opDivMat = "DivMat"
)

// matrixErrorf wraps err with "Matrix.<tag>: ".
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// ---------- scalar broadcast ----------

// AddScalar adds k to every element in place.
func (m *Matrix) AddScalar(k float32) { m.flat.AddScalar(k) }

// SubScalar subtracts k from every element in place.
func (m *Matrix) SubScalar(k float32) { m.flat.SubScalar(k) }

// MulScalar multiplies every element by k in place.
func (m *Matrix) MulScalar(k float32) { m.flat.MulScalar(k) }

// DivScalar divides every element by k in place.
func (m *Matrix) DivScalar(k float32) { m.flat.DivScalar(k) }

// Apply replaces every stored element x with f(x) in place.
// f should be pure; elements are visited in storage order.
func (m *Matrix) Apply(f func(float32) float32) { m.flat.Apply(f) }

// ---------- row broadcast ----------

// ewRows applies out[r,c] = f(m[r,c], v[r]) over the whole logical grid.
func (m *Matrix) ewRows(tag string, v *vector.Vector, f func(x, y float32) float32) error {
	rows, cols := m.Shape()
	if err := ValidateVecLen(v, rows); err != nil {
		return matrixErrorf(tag, err)
	}
	raw, vv := m.flat.Raw(), v.Raw()
	var off int
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			off = m.lay.index(r, c)
			raw[off] = f(raw[off], vv[r])
		}
	}

	return nil
}

// AddVec adds v[row] to every element of logical row `row`.
//
// Errors:
//   - ErrShape unless v.Len() == Rows(); ErrNilMatrix for nil v.
//
// Complexity: O(r*c).
func (m *Matrix) AddVec(v *vector.Vector) error {
	return m.ewRows(opAddVec, v, func(x, y float32) float32 { return x + y })
}

// SubVec subtracts v[row] from every element of logical row `row`.
// Errors as in AddVec.
func (m *Matrix) SubVec(v *vector.Vector) error {
	return m.ewRows(opSubVec, v, func(x, y float32) float32 { return x - y })
}

// MulVec multiplies every element of logical row `row` by v[row].
// Errors as in AddVec.
func (m *Matrix) MulVec(v *vector.Vector) error {
	return m.ewRows(opMulVec, v, func(x, y float32) float32 { return x * y })
}

// DivVec divides every element of logical row `row` by v[row].
// Errors as in AddVec.
func (m *Matrix) DivVec(v *vector.Vector) error {
	return m.ewRows(opDivVec, v, func(x, y float32) float32 { return x / y })
}

// ---------- matrix ⊙ matrix ----------

// ewMat replaces storage with op(Flat(m), Flat(other)), clears the
// transpose flag and adopts other's logical shape.
func (m *Matrix) ewMat(tag string, other *Matrix, op func(*vector.Vector, *vector.Vector) error) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(tag, err)
	}
	lhs := m.Flat()
	if err := op(lhs, other.Flat()); err != nil {
		return matrixErrorf(tag, err) // unreachable after the shape check
	}
	rows, cols := other.Shape()
	m.flat = lhs
	m.lay = layout{cols: cols, rows: rows}

	return nil
}

// AddMat sets m = m + other elementwise over the logical shape.
// Side effect: a transposed m becomes untransposed (storage is rebuilt).
//
// Errors:
//   - ErrShape unless Rows() and Cols() match; ErrNilMatrix for nil other.
//
// Complexity: O(r*c) time and memory.
func (m *Matrix) AddMat(other *Matrix) error { return m.ewMat(opAddMat, other, (*vector.Vector).Add) }

// SubMat sets m = m - other elementwise. Same contract as AddMat.
func (m *Matrix) SubMat(other *Matrix) error { return m.ewMat(opSubMat, other, (*vector.Vector).Sub) }

// MulMat sets m = m ⊙ other (Hadamard). Same contract as AddMat.
func (m *Matrix) MulMat(other *Matrix) error { return m.ewMat(opMulMat, other, (*vector.Vector).Mul) }

// DivMat sets m = m ⊘ other elementwise. Same contract as AddMat.
func (m *Matrix) DivMat(other *Matrix) error { return m.ewMat(opDivMat, other, (*vector.Vector).Div) }

// ---------- reductions ----------

// Sum returns the total of all elements.
func (m *Matrix) Sum() float32 { return m.flat.Sum() }

// SumVec returns a Vector of length Rows() holding each logical row's sum.
// Complexity: O(r*c).
func (m *Matrix) SumVec() *vector.Vector {
	rows, cols := m.Shape()
	out := make([]float32, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			out[r] += m.get(r, c)
		}
	}

	return vector.New(out)
}
