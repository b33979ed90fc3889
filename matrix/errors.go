// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with
// fmt.Errorf("Matrix.<Method>(...): <detail>: %w", ErrX) so messages carry the
// expected/actual sizes or the maximal valid index; callers still match with
// errors.Is.

var (
	// ErrShape indicates a row, vector or matrix length that disagrees with the
	// shape an operation requires (ragged input, cols*rows != len, operand
	// mismatch). Messages report the expected and the actual size.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates a row or column index outside the logical shape.
	// Messages report the maximal valid index, not the offending one.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDegenerate signals a 1×1 matrix where a determinant-based operation
	// needs at least 2×2.
	ErrDegenerate = errors.New("matrix: matrix must have more than one row")

	// ErrSingular is returned by Inv when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotImplemented marks declared operations without an algorithm
	// (Inv, EigenVal, EigenVec, DotMat).
	ErrNotImplemented = errors.New("matrix: operation not implemented")

	// ErrNilMatrix indicates that a nil *Matrix or *vector.Vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil argument")

	// ErrEncoding indicates a binary or CBOR payload that does not decode into
	// a valid matrix.
	ErrEncoding = errors.New("matrix: invalid encoding")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
