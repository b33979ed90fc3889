// SPDX-License-Identifier: MIT

// Package matrix - value-returning facades.
//
// These mirror the in-place methods but never mutate their operands: the left
// operand is cloned first and the method is applied to the clone. The result
// therefore carries the in-place side effects (untransposed storage, operand
// shape).
package matrix

// Add returns a + b elementwise.
// Errors: see (*Matrix).AddMat.
func Add(a, b *Matrix) (*Matrix, error) { return cloneApply(a, b, (*Matrix).AddMat) }

// Sub returns a - b elementwise.
// Errors: see (*Matrix).SubMat.
func Sub(a, b *Matrix) (*Matrix, error) { return cloneApply(a, b, (*Matrix).SubMat) }

// Mul returns a ⊙ b elementwise (Hadamard).
// Errors: see (*Matrix).MulMat.
func Mul(a, b *Matrix) (*Matrix, error) { return cloneApply(a, b, (*Matrix).MulMat) }

// Div returns a ⊘ b elementwise.
// Errors: see (*Matrix).DivMat.
func Div(a, b *Matrix) (*Matrix, error) { return cloneApply(a, b, (*Matrix).DivMat) }

// T returns a transposed deep copy of m; m itself is untouched.
func T(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("T", err)
	}
	out := m.Clone()
	out.Transpose()

	return out, nil
}

func cloneApply(a, b *Matrix, op func(*Matrix, *Matrix) error) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	out := a.Clone()
	if err := op(out, b); err != nil {
		return nil, err
	}

	return out, nil
}
