// SPDX-License-Identifier: MIT

package wire_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/internal/wire"
)

func payload(words ...float32) []byte {
	return wire.AppendFloat32s(nil, words)
}

func TestAppendFloat32_WordSize(t *testing.T) {
	t.Parallel()

	b := wire.AppendFloat32(nil, 2)
	require.Len(t, b, wire.WordSize)
	require.Equal(t, float32(2), wire.Float32At(b, 0))
}

func TestDecodeMatrix_OK(t *testing.T) {
	t.Parallel()

	rows, cols, data, err := wire.DecodeMatrix(payload(3, 2, 1, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, data)
}

func TestDecodeMatrix_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"header only half", payload(1)},
		{"odd byte count", append(payload(1, 1, 1), 0)},
		{"negative rows", payload(-1, 1, 1)},
		{"fractional cols", payload(1, 1.5, 1)},
		{"nan rows", payload(float32(math.NaN()), 1, 1)},
		{"too few elements", payload(2, 2, 1, 2, 3)},
		{"too many elements", payload(1, 1, 1, 2)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, _, err := wire.DecodeMatrix(tc.in)
			require.ErrorIs(t, err, wire.ErrMalformed)
		})
	}
}

func TestDecodeMatrixInto_ReusesCapacity(t *testing.T) {
	t.Parallel()

	dst := make([]float32, 0, 8)
	_, _, data, err := wire.DecodeMatrixInto(payload(2, 2, 1, 2, 3, 4), dst)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2, 3, 4}, data)
	require.Equal(t, 8, cap(data), "capacity must be reused")

	_, _, kept, err := wire.DecodeMatrixInto(payload(2), dst)
	require.ErrorIs(t, err, wire.ErrMalformed)
	require.Equal(t, cap(dst), cap(kept))
}
