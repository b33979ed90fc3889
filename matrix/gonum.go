// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// gonumView adapts a Matrix to gonum's read-only mat.Matrix interface.
// flip is applied on top of m's current orientation at every read.
type gonumView struct {
	m    *Matrix
	flip bool
}

var _ mat.Matrix = gonumView{}

// Gonum exposes m as a gonum mat.Matrix without copying. The view reads
// through to m, so later writes, storage rebuilds and transposes of m are
// visible. T() is the lazy transpose of the view itself.
//
// At panics with mat.ErrIndexOutOfRange on bad indices, as gonum requires.
func Gonum(m *Matrix) mat.Matrix { return gonumView{m: m} }

// Dims implements mat.Matrix.
func (g gonumView) Dims() (r, c int) {
	r, c = g.m.Shape()
	if g.flip {
		return c, r
	}

	return r, c
}

// At implements mat.Matrix.
func (g gonumView) At(i, j int) float64 {
	if g.flip {
		i, j = j, i
	}
	v, err := g.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return float64(v)
}

// T implements mat.Matrix.
func (g gonumView) T() mat.Matrix { return gonumView{m: g.m, flip: !g.flip} }

// FromGonum copies any gonum matrix into a new untransposed Matrix,
// narrowing elements to float32.
//
// Errors:
//   - ErrNilMatrix for nil; ErrShape for empty dimensions.
//
// Complexity: O(r*c).
func FromGonum(a mat.Matrix) (*Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("matrix.FromGonum: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	n, err := area(c, r)
	if err != nil {
		return nil, fmt.Errorf("matrix.FromGonum(%dx%d): %w", r, c, err)
	}
	buf := make([]float32, 0, n)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			buf = append(buf, float32(a.At(i, j)))
		}
	}

	return NewFlat(buf, c, r)
}
