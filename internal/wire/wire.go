// SPDX-License-Identifier: MIT

// Package wire holds the binary layout shared by vector/matrix exporters and
// the device backend that consumes them.
//
// Layout:
//
//	vector: [len:f32][e0:f32][e1:f32]...
//	matrix: [rows:f32][cols:f32][e0:f32]...   (elements in logical column-major order)
//
// Every word is the native-endian bit pattern of a float32, including the
// dimension words.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// WordSize is the size in bytes of every word in the layout.
const WordSize = 4

// HeaderWords is the number of dimension words in a matrix payload.
const HeaderWords = 2

// maxExactDim is the largest integer a float32 header word represents exactly.
const maxExactDim = 1 << 24

// ErrMalformed reports a payload that does not follow the layout.
var ErrMalformed = errors.New("wire: malformed payload")

// AppendFloat32 appends the native-endian bit pattern of v to dst.
// Complexity: O(1) amortized.
func AppendFloat32(dst []byte, v float32) []byte {
	return binary.NativeEndian.AppendUint32(dst, math.Float32bits(v))
}

// AppendFloat32s appends every value of vals to dst.
// Complexity: O(n).
func AppendFloat32s(dst []byte, vals []float32) []byte {
	for _, v := range vals {
		dst = AppendFloat32(dst, v)
	}

	return dst
}

// Float32At reads the i-th word of b. The caller guarantees bounds.
func Float32At(b []byte, i int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(b[i*WordSize:]))
}

// DecodeMatrix parses a matrix payload into its dimensions and a freshly
// allocated element slice.
//
// Errors:
//   - ErrMalformed when the payload is truncated, the header words are not
//     non-negative integers, or the element count disagrees with rows*cols.
//
// Complexity: O(rows*cols).
func DecodeMatrix(b []byte) (rows, cols int, data []float32, err error) {
	return DecodeMatrixInto(b, nil)
}

// DecodeMatrixInto is DecodeMatrix writing the elements into dst, which is
// resliced when its capacity suffices and reallocated otherwise. On error dst
// is returned unchanged so pooled buffers are not lost.
func DecodeMatrixInto(b []byte, dst []float32) (rows, cols int, data []float32, err error) {
	if len(b)%WordSize != 0 || len(b) < HeaderWords*WordSize {
		return 0, 0, dst, fmt.Errorf("length %d: %w", len(b), ErrMalformed)
	}
	if rows, err = dimension(Float32At(b, 0)); err != nil {
		return 0, 0, dst, fmt.Errorf("rows: %w", err)
	}
	if cols, err = dimension(Float32At(b, 1)); err != nil {
		return 0, 0, dst, fmt.Errorf("cols: %w", err)
	}

	n := len(b)/WordSize - HeaderWords
	if n != rows*cols {
		return 0, 0, dst, fmt.Errorf("expected %d elements, got %d: %w", rows*cols, n, ErrMalformed)
	}
	if cap(dst) >= n {
		data = dst[:n]
	} else {
		data = make([]float32, n)
	}
	for i := range data {
		data[i] = Float32At(b, HeaderWords+i)
	}

	return rows, cols, data, nil
}

// dimension converts a header word into an int.
func dimension(v float32) (int, error) {
	if v < 0 || v > maxExactDim || v != float32(math.Trunc(float64(v))) {
		return 0, fmt.Errorf("header word %g: %w", v, ErrMalformed)
	}

	return int(v), nil
}
