// SPDX-License-Identifier: MIT

// Package matrix - binary export and CBOR persistence.
//
// Binary layout (Bytes / FromBytes), consumed by accelerator backends:
//
//	[rows:f32][cols:f32][e0:f32][e1:f32]...
//
// Dimensions are written as float32 bit patterns, elements follow the
// logical column-major flattening, every word is native-endian. Total length
// is (2 + rows*cols) * 4 bytes.
//
// CBOR form (MarshalCBOR / UnmarshalCBOR): the array [rows, cols, [elements]]
// with the same element order.
package matrix

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/densela/internal/wire"
)

// Bytes returns the binary export of the logical matrix.
// The element words are the logical flattening's vector.Bytes with its
// length word skipped. A nil receiver yields nil, which no decoder accepts.
//
// Complexity: O(r*c).
func (m *Matrix) Bytes() []byte {
	if m == nil {
		return nil
	}
	rows, cols := m.Shape()
	out := make([]byte, 0, (wire.HeaderWords+rows*cols)*wire.WordSize)
	out = wire.AppendFloat32(out, float32(rows))
	out = wire.AppendFloat32(out, float32(cols))

	return append(out, m.Flat().Bytes()[wire.WordSize:]...)
}

// FromBytes decodes a Bytes payload into an untransposed Matrix.
//
// Errors:
//   - ErrEncoding for truncated or inconsistent payloads and for payloads
//     whose shape is not a valid matrix (zero dimensions).
//
// Complexity: O(r*c).
func FromBytes(b []byte) (*Matrix, error) {
	rows, cols, data, err := wire.DecodeMatrix(b)
	if err != nil {
		return nil, fmt.Errorf("matrix.FromBytes: %w: %w", ErrEncoding, err)
	}
	m, err := NewFlat(data, cols, rows)
	if err != nil {
		return nil, fmt.Errorf("matrix.FromBytes: %w: %w", ErrEncoding, err)
	}

	return m, nil
}

// cborMatrix is the persisted CBOR shape.
type cborMatrix struct {
	_    struct{} `cbor:",toarray"`
	Rows int
	Cols int
	Data []float32
}

// MarshalCBOR implements cbor.Marshaler.
func (m *Matrix) MarshalCBOR() ([]byte, error) {
	rows, cols := m.Shape()

	return cbor.Marshal(cborMatrix{Rows: rows, Cols: cols, Data: m.Flat().Raw()})
}

// UnmarshalCBOR implements cbor.Unmarshaler. The decoded matrix is
// untransposed and must satisfy the shape invariant.
//
// Errors:
//   - ErrEncoding for malformed CBOR or a shape/data mismatch.
func (m *Matrix) UnmarshalCBOR(b []byte) error {
	var w cborMatrix
	if err := cbor.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("Matrix.UnmarshalCBOR: %w: %w", ErrEncoding, err)
	}
	dec, err := NewFlat(w.Data, w.Cols, w.Rows)
	if err != nil {
		return fmt.Errorf("Matrix.UnmarshalCBOR: %w: %w", ErrEncoding, err)
	}
	*m = *dec

	return nil
}
