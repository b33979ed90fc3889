// SPDX-License-Identifier: MIT

// Package vector_test contains unit tests for the Vector container.
package vector_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/internal/wire"
	"github.com/katalvlaran/densela/vector"
)

// TestNewCopiesInput ensures New does not alias the caller's slice.
func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	in := []float32{1, 2, 3}
	v := vector.New(in)
	in[0] = 99

	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, float32(1), got)
	require.Equal(t, 3, v.Len())
}

// TestNewZeroAndBadLength covers zero fill and negative lengths.
func TestNewZeroAndBadLength(t *testing.T) {
	t.Parallel()

	v, err := vector.NewZero(4)
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0, 0, 0}, v.Values())

	_, err = vector.NewZero(-1)
	require.ErrorIs(t, err, vector.ErrBadLength)

	_, err = vector.NewRandom(-3)
	require.ErrorIs(t, err, vector.ErrBadLength)
}

// TestNewRandomDeterministic checks default and injected sources.
func TestNewRandomDeterministic(t *testing.T) {
	t.Parallel()

	a, err := vector.NewRandom(12)
	require.NoError(t, err)
	b, err := vector.NewRandom(12)
	require.NoError(t, err)
	require.True(t, a.Equal(b), "default stream must be reproducible")

	c, err := vector.NewRandom(12, vector.WithSeed(7))
	require.NoError(t, err)
	d, err := vector.NewRandom(12, vector.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	require.True(t, c.Equal(d))
	require.False(t, a.Equal(c))

	for i, x := range c.Values() {
		require.GreaterOrEqualf(t, x, float32(0), "c[%d]", i)
		require.Lessf(t, x, float32(1), "c[%d]", i)
	}
}

// TestWithRandNilPanics guards the programmer-error path.
func TestWithRandNilPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { _ = vector.WithRand(nil) })
}

// TestAtSetOutOfRange reports the maximal valid index.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	v := vector.New([]float32{1, 2, 3})
	_, err := v.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.Contains(t, err.Error(), "max index 2")

	err = v.Set(-1, 5)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	require.NoError(t, v.Set(2, 7))
	got, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, float32(7), got)
}

// TestElementwise covers in-place ops and the clone-then-mutate functions.
func TestElementwise(t *testing.T) {
	t.Parallel()

	a := vector.New([]float32{2, 4, 6})
	b := vector.New([]float32{1, 2, 3})

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{3, 6, 9}, sum.Values())
	require.Equal(t, []float32{2, 4, 6}, a.Values(), "operand must not change")

	diff, err := vector.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2, 3}, diff.Values())

	prod, err := vector.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{2, 8, 18}, prod.Values())

	quot, err := vector.Div(a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{2, 2, 2}, quot.Values())

	_, err = vector.Add(a, vector.New([]float32{1}))
	require.ErrorIs(t, err, vector.ErrLengthMismatch)
	require.Contains(t, err.Error(), "expected 3, got 1")
}

// TestScalarOps covers broadcast of a scalar.
func TestScalarOps(t *testing.T) {
	t.Parallel()

	v := vector.New([]float32{2, 4})
	v.AddScalar(2)
	require.Equal(t, []float32{4, 6}, v.Values())
	v.SubScalar(1)
	require.Equal(t, []float32{3, 5}, v.Values())
	v.MulScalar(2)
	require.Equal(t, []float32{6, 10}, v.Values())
	v.DivScalar(2)
	require.Equal(t, []float32{3, 5}, v.Values())
}

// TestDotSumApply covers the reductions and the in-place map.
func TestDotSumApply(t *testing.T) {
	t.Parallel()

	v := vector.New([]float32{1, -1, 2})
	d, err := v.Dot(vector.New([]float32{2, 1, 0}))
	require.NoError(t, err)
	require.Equal(t, float32(1), d)

	_, err = v.Dot(vector.New([]float32{2, 1}))
	require.ErrorIs(t, err, vector.ErrLengthMismatch)

	require.Equal(t, float32(2), v.Sum())
	v.Apply(func(x float32) float32 { return x * x })
	require.Equal(t, []float32{1, 1, 4}, v.Values())
}

// TestStringEqual checks formatting and equality semantics.
func TestStringEqual(t *testing.T) {
	t.Parallel()

	v := vector.New([]float32{3, 2.5, -4})
	require.Equal(t, "[3, 2.5, -4]", v.String())
	require.Equal(t, "[]", vector.New(nil).String())

	require.True(t, v.Equal(v.Clone()))
	require.False(t, v.Equal(vector.New([]float32{3, 2.5})))
	require.False(t, v.Equal(nil))
}

// TestBytesLayout checks the length prefix and element words.
func TestBytesLayout(t *testing.T) {
	t.Parallel()

	b := vector.New([]float32{2, 3, 7}).Bytes()
	require.Len(t, b, 4*wire.WordSize)
	require.Equal(t, float32(3), wire.Float32At(b, 0))
	require.Equal(t, float32(2), wire.Float32At(b, 1))
	require.Equal(t, float32(3), wire.Float32At(b, 2))
	require.Equal(t, float32(7), wire.Float32At(b, 3))
}
