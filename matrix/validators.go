// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operations minimal by delegating nil/shape/square checks here.
//  - Return sentinel errors wrapped with the validator tag and the sizes
//    involved, so call sites only add their own method context.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal logical dimensions.
//
// Errors: ErrNilMatrix if either is nil; ErrShape reporting expected and
// actual rows (checked first) or cols.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("wrong row shape expected %d, got %d: %w", a.Rows(), b.Rows(), ErrShape))
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("wrong col shape expected %d, got %d: %w", a.Cols(), b.Cols(), ErrShape))
	}

	return nil
}

// ValidateSquare checks that m is square and larger than 1×1, the
// precondition of Det, Inv and the eigen routines.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDegenerate (in that order).
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}
	if m.Rows() == 1 {
		return validatorErrorf("ValidateSquare", ErrDegenerate)
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and has exactly n elements.
//
// Errors: ErrNilMatrix for nil; ErrShape reporting expected and actual length.
// Complexity: O(1).
func ValidateVecLen(v *vector.Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if v.Len() != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("wrong vector shape expected %d, got %d: %w", n, v.Len(), ErrShape))
	}

	return nil
}
