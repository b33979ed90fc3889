// SPDX-License-Identifier: MIT

// Package matrix_test covers the binary export and the CBOR codec.
package matrix_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/internal/wire"
	"github.com/katalvlaran/densela/matrix"
)

// TestBytesLayout pins the exact byte image on little-endian hosts.
func TestBytesLayout(t *testing.T) {
	t.Parallel()

	if wire.AppendFloat32(nil, 2)[3] != 64 {
		t.Skip("byte image below is little-endian")
	}
	m := MustNew(t, [][]float32{{2, 3}, {7, 4}})
	want := []byte{
		0, 0, 0, 64, // rows = 2
		0, 0, 0, 64, // cols = 2
		0, 0, 0, 64, // 2
		0, 0, 64, 64, // 3
		0, 0, 224, 64, // 7
		0, 0, 128, 64, // 4
	}
	require.Equal(t, want, m.Bytes())
}

// TestBytesSize: total length is (2 + rows*cols) words, header is rows then cols.
func TestBytesSize(t *testing.T) {
	t.Parallel()

	m := MustRandom(t, 3, 5, 2)
	b := m.Bytes()
	require.Len(t, b, (2+15)*wire.WordSize)
	require.Equal(t, float32(5), wire.Float32At(b, 0))
	require.Equal(t, float32(3), wire.Float32At(b, 1))

	m.Transpose()
	b = m.Bytes()
	require.Equal(t, float32(3), wire.Float32At(b, 0))
	require.Equal(t, float32(5), wire.Float32At(b, 1))
	require.Equal(t, MustAt(t, m, 0, 1), wire.Float32At(b, wire.HeaderWords+3))
}

// TestFromBytesRoundTrip restores the logical matrix, untransposed.
func TestFromBytesRoundTrip(t *testing.T) {
	t.Parallel()

	m := MustRandom(t, 4, 2, 8)
	m.Transpose()
	got, err := matrix.FromBytes(m.Bytes())
	require.NoError(t, err)
	require.False(t, got.IsTransposed())
	require.True(t, got.Equal(m))
}

// TestFromBytesMalformed covers truncated, inconsistent and empty-shape payloads.
func TestFromBytesMalformed(t *testing.T) {
	t.Parallel()

	good := MustNew(t, [][]float32{{1, 2}, {3, 4}}).Bytes()
	zeroDims := wire.AppendFloat32(wire.AppendFloat32(nil, 0), 3)

	for name, b := range map[string][]byte{
		"empty":     nil,
		"odd":       good[:len(good)-1],
		"missing":   good[:len(good)-wire.WordSize],
		"zero rows": zeroDims,
	} {
		_, err := matrix.FromBytes(b)
		require.ErrorIsf(t, err, matrix.ErrEncoding, "%s", name)
	}
}

// TestCBORRoundTrip persists the logical view.
func TestCBORRoundTrip(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float32{{1, 2, 3}, {4, 5, 6}})
	m.Transpose()
	b, err := cbor.Marshal(m)
	require.NoError(t, err)

	var got matrix.Matrix
	require.NoError(t, cbor.Unmarshal(b, &got))
	require.True(t, got.Equal(m))
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 3, got.Cols())
}

// TestCBORRejectsBadShape validates the decoded invariant.
func TestCBORRejectsBadShape(t *testing.T) {
	t.Parallel()

	b, err := cbor.Marshal([]any{2, 2, []float32{1}})
	require.NoError(t, err)
	var m matrix.Matrix
	require.ErrorIs(t, m.UnmarshalCBOR(b), matrix.ErrEncoding)

	require.ErrorIs(t, m.UnmarshalCBOR([]byte{0xff}), matrix.ErrEncoding)
}

// TestBytesNilReceiver yields an empty payload that FromBytes rejects.
func TestBytesNilReceiver(t *testing.T) {
	t.Parallel()

	var m *matrix.Matrix
	require.Nil(t, m.Bytes())
	_, err := matrix.FromBytes(m.Bytes())
	require.ErrorIs(t, err, matrix.ErrEncoding)
}
