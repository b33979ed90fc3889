// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Operation tags used in error wrappers.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
	opDot = "Dot"
)

// zip combines v and other elementwise into v.
func (v *Vector) zip(tag string, other *Vector, f func(a, b float32) float32) error {
	if len(v.data) != len(other.data) {
		return fmt.Errorf("Vector.%s: expected %d, got %d: %w", tag, len(v.data), len(other.data), ErrLengthMismatch)
	}
	for i := range v.data {
		v.data[i] = f(v.data[i], other.data[i])
	}

	return nil
}

// Add sets v[i] += other[i]. Lengths must match (ErrLengthMismatch).
func (v *Vector) Add(other *Vector) error {
	return v.zip(opAdd, other, func(a, b float32) float32 { return a + b })
}

// Sub sets v[i] -= other[i]. Lengths must match (ErrLengthMismatch).
func (v *Vector) Sub(other *Vector) error {
	return v.zip(opSub, other, func(a, b float32) float32 { return a - b })
}

// Mul sets v[i] *= other[i]. Lengths must match (ErrLengthMismatch).
func (v *Vector) Mul(other *Vector) error {
	return v.zip(opMul, other, func(a, b float32) float32 { return a * b })
}

// Div sets v[i] /= other[i]. Lengths must match (ErrLengthMismatch).
// Division by zero follows IEEE-754 (±Inf or NaN).
func (v *Vector) Div(other *Vector) error {
	return v.zip(opDiv, other, func(a, b float32) float32 { return a / b })
}

// AddScalar adds k to every element.
func (v *Vector) AddScalar(k float32) {
	for i := range v.data {
		v.data[i] += k
	}
}

// SubScalar subtracts k from every element.
func (v *Vector) SubScalar(k float32) {
	for i := range v.data {
		v.data[i] -= k
	}
}

// MulScalar multiplies every element by k.
func (v *Vector) MulScalar(k float32) {
	for i := range v.data {
		v.data[i] *= k
	}
}

// DivScalar divides every element by k.
func (v *Vector) DivScalar(k float32) {
	for i := range v.data {
		v.data[i] /= k
	}
}

// Dot returns Σ v[i]*other[i]. Lengths must match (ErrLengthMismatch).
func (v *Vector) Dot(other *Vector) (float32, error) {
	if len(v.data) != len(other.data) {
		return 0, fmt.Errorf("Vector.%s: expected %d, got %d: %w", opDot, len(v.data), len(other.data), ErrLengthMismatch)
	}
	var s float32
	for i, x := range v.data {
		s += x * other.data[i]
	}

	return s, nil
}

// Add returns a + b as a new Vector; operands are not mutated.
func Add(a, b *Vector) (*Vector, error) { return combine(a, b, (*Vector).Add) }

// Sub returns a - b as a new Vector; operands are not mutated.
func Sub(a, b *Vector) (*Vector, error) { return combine(a, b, (*Vector).Sub) }

// Mul returns a ⊙ b as a new Vector; operands are not mutated.
func Mul(a, b *Vector) (*Vector, error) { return combine(a, b, (*Vector).Mul) }

// Div returns a ⊘ b as a new Vector; operands are not mutated.
func Div(a, b *Vector) (*Vector, error) { return combine(a, b, (*Vector).Div) }

func combine(a, b *Vector, op func(*Vector, *Vector) error) (*Vector, error) {
	out := a.Clone()
	if err := op(out, b); err != nil {
		return nil, err
	}

	return out, nil
}
