// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/densela/internal/rng"
)

// Vector is an owned, contiguous sequence of float32 values.
type Vector struct {
	data []float32 // len == Len(); never shared with callers
}

// New copies values into a new Vector.
// Complexity: O(n).
func New(values []float32) *Vector {
	data := make([]float32, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// NewZero returns a zero-filled Vector of length n.
//
// Errors:
//   - ErrBadLength when n < 0.
//
// Complexity: O(n).
func NewZero(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("vector.NewZero(%d): %w", n, ErrBadLength)
	}

	return &Vector{data: make([]float32, n)}, nil
}

// NewRandom returns a Vector of n independent uniform samples from [0,1).
// The stream is deterministic: without options it is seeded with
// rng.DefaultSeed, so repeated calls return identical vectors. Inject a source
// with WithRand or WithSeed to vary it.
//
// Errors:
//   - ErrBadLength when n < 0.
//
// Complexity: O(n).
func NewRandom(n int, opts ...Option) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("vector.NewRandom(%d): %w", n, ErrBadLength)
	}
	o := gatherOptions(opts...)
	data := make([]float32, n)
	rng.FillUniform(data, o.rnd)

	return &Vector{data: data}, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Len()); the message reports the
//     maximal valid index.
func (v *Vector) At(i int) (float32, error) {
	if err := v.check("At", i); err != nil {
		return 0, err
	}

	return v.data[i], nil
}

// Set stores val at index i.
//
// Errors:
//   - ErrOutOfRange, as in At.
func (v *Vector) Set(i int, val float32) error {
	if err := v.check("Set", i); err != nil {
		return err
	}
	v.data[i] = val

	return nil
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float32 {
	out := make([]float32, len(v.data))
	copy(out, v.data)

	return out
}

// Raw returns the backing slice without copying. Writes through it are
// visible to v; callers must not retain it beyond v's lifetime or resize it.
func (v *Vector) Raw() []float32 { return v.data }

// Clone returns an independent deep copy.
func (v *Vector) Clone() *Vector { return New(v.data) }

// Sum returns the total of all elements (0 for an empty vector).
func (v *Vector) Sum() float32 {
	var s float32
	for _, x := range v.data {
		s += x
	}

	return s
}

// Apply replaces every element x with f(x), in index order.
func (v *Vector) Apply(f func(float32) float32) {
	for i, x := range v.data {
		v.data[i] = f(x)
	}
}

func (v *Vector) check(method string, i int) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.%s(%d): max index %d: %w", method, i, len(v.data)-1, ErrOutOfRange)
	}

	return nil
}
