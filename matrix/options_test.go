// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// TestDefaultSeedDocumented: no option, seed 0 and seed 1 are the same stream.
func TestDefaultSeedDocumented(t *testing.T) {
	t.Parallel()

	def, err := matrix.NewRandom(3, 3)
	require.NoError(t, err)
	require.True(t, def.Equal(MustRandom(t, 3, 3, 0)))
	require.True(t, def.Equal(MustRandom(t, 3, 3, 1)))
	require.False(t, def.Equal(MustRandom(t, 3, 3, 2)))
}

// TestWithRandConsumesSource: two constructors sharing a source draw consecutive values.
func TestWithRandConsumesSource(t *testing.T) {
	t.Parallel()

	src := rand.New(rand.NewSource(42))
	a, err := matrix.NewRandom(2, 2, matrix.WithRand(src))
	require.NoError(t, err)
	b, err := matrix.NewRandom(2, 2, matrix.WithRand(src))
	require.NoError(t, err)
	require.False(t, a.Equal(b))

	both, err := matrix.NewRandom(4, 2, matrix.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Equal(t, append(a.Flat().Values(), b.Flat().Values()...), both.Flat().Values())
}

// TestWithRandNilPanics guards the only programmer-error option.
func TestWithRandNilPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithRand(nil) })
}
