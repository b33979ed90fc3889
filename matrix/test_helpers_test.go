// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Fail fast (t.Fatal) on setup errors so assertions stay about behavior.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// MustNew builds a matrix from columns or fails the test.
func MustNew(tb testing.TB, cols [][]float32) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(cols)
	require.NoError(tb, err)

	return m
}

// MustFlat builds a cols×rows matrix from column-major values or fails the test.
func MustFlat(tb testing.TB, values []float32, cols, rows int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewFlat(values, cols, rows)
	require.NoError(tb, err)

	return m
}

// MustRandom builds a seeded random matrix or fails the test.
func MustRandom(tb testing.TB, cols, rows int, seed int64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewRandom(cols, rows, matrix.WithSeed(seed))
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Matrix, i, j int) float32 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// requireLogicalTranspose asserts t(r,c) == m(c,r) over t's whole shape.
func requireLogicalTranspose(tb testing.TB, m, t *matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, m.Rows(), t.Cols())
	require.Equal(tb, m.Cols(), t.Rows())
	for r := 0; r < t.Rows(); r++ {
		for c := 0; c < t.Cols(); c++ {
			require.Equalf(tb, MustAt(tb, m, c, r), MustAt(tb, t, r, c), "(%d,%d)", r, c)
		}
	}
}
