// SPDX-License-Identifier: MIT

// Package matrix - linear algebra on a single Matrix.
//
// Purpose:
//   - Column dot products (DotVec) and the cofactor-expansion determinant.
//   - Declared-but-unimplemented operations (DotMat, Inv, EigenVal, EigenVec)
//     that validate their preconditions and then return ErrNotImplemented.
//
// Determinism:
//   - Fixed expansion order along logical row 0, columns 0..n-1.
//
// Complexity:
//   - DotVec O(r*c); Det O(n!) time, O(n²) memory per recursion level.
//     Det is intended for small matrices only.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/vector"
)

const (
	opDotVec   = "DotVec"
	opDotMat   = "DotMat"
	opDet      = "Det"
	opInv      = "Inv"
	opEigenVal = "EigenVal"
	opEigenVec = "EigenVec"
)

// ZeroDet is the determinant value that marks a matrix as singular.
const ZeroDet float32 = 0

// DotVec returns a Vector of length Cols() whose element i is Col(i)·v.
//
// Errors:
//   - ErrShape unless v.Len() == Rows(); ErrNilMatrix for nil v.
//
// Complexity: O(r*c).
func (m *Matrix) DotVec(v *vector.Vector) (*vector.Vector, error) {
	rows, cols := m.Shape()
	if err := ValidateVecLen(v, rows); err != nil {
		return nil, matrixErrorf(opDotVec, err)
	}
	vv := v.Raw()
	out := make([]float32, cols)
	var s float32
	for c := 0; c < cols; c++ {
		s = 0
		for r := 0; r < rows; r++ {
			s += m.get(r, c) * vv[r]
		}
		out[c] = s
	}

	return vector.New(out), nil
}

// DotMat is the matrix product. It validates that both operands share a
// shape and then returns ErrNotImplemented.
func (m *Matrix) DotMat(other *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opDotMat, err)
	}

	return nil, matrixErrorf(opDotMat, ErrNotImplemented)
}

// Det returns the determinant by cofactor expansion along logical row 0.
// MAIN DESCRIPTION:
//   - 2×2 base case: a00*a11 - a10*a01.
//   - n×n: Σ_c (-1)^c · a0c · det(minor(0, c)).
//
// Errors:
//   - ErrNonSquare unless square; ErrDegenerate for 1×1.
//
// Complexity:
//   - Time O(n!), so keep n small (n ≤ 8 is instant, n = 11 takes seconds).
func (m *Matrix) Det() (float32, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.det(), nil
}

// det assumes a validated square matrix with n >= 2.
func (m *Matrix) det() float32 {
	n := m.Rows()
	if n == 2 {
		return m.get(0, 0)*m.get(1, 1) - m.get(1, 0)*m.get(0, 1)
	}

	var sum float32
	sign := float32(1)
	for c := 0; c < n; c++ {
		sum += sign * m.get(0, c) * m.minor(0, c).det()
		sign = -sign
	}

	return sum
}

// minor returns the untransposed (rows-1)×(cols-1) matrix obtained by deleting
// logical row `row` and logical column `col`. Callers guarantee both are in
// range and the matrix is at least 2×2.
func (m *Matrix) minor(row, col int) *Matrix {
	rows, cols := m.Shape()
	buf := make([]float32, 0, (rows-1)*(cols-1))
	for c := 0; c < cols; c++ {
		if c == col {
			continue
		}
		for r := 0; r < rows; r++ {
			if r == row {
				continue
			}
			buf = append(buf, m.get(r, c))
		}
	}

	return &Matrix{flat: vector.New(buf), lay: layout{cols: cols - 1, rows: rows - 1}}
}

// Inv would invert m in place. It validates squareness, returns ErrSingular
// when Det() == 0, and otherwise returns ErrNotImplemented; m is never
// modified.
func (m *Matrix) Inv() error {
	d, err := m.Det()
	if err != nil {
		return matrixErrorf(opInv, err)
	}
	if d == ZeroDet {
		return matrixErrorf(opInv, fmt.Errorf("determinant is %g: %w", d, ErrSingular))
	}

	return matrixErrorf(opInv, ErrNotImplemented)
}

// EigenVal validates squareness, then returns ErrNotImplemented.
func (m *Matrix) EigenVal() (float32, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opEigenVal, err)
	}

	return 0, matrixErrorf(opEigenVal, ErrNotImplemented)
}

// EigenVec validates squareness, then returns ErrNotImplemented.
func (m *Matrix) EigenVec() (*vector.Vector, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigenVec, err)
	}

	return nil, matrixErrorf(opEigenVec, ErrNotImplemented)
}
