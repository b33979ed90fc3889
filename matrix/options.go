// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random construction.
// The only tunable is the random source, which is owned by the vector
// package; these wrappers keep callers from importing it for options alone.
package matrix

import (
	"math/rand"

	"github.com/katalvlaran/densela/vector"
)

// Option configures NewRandom.
type Option = vector.Option

// WithRand injects the random source used by NewRandom.
// Panics on nil (programmer error).
func WithRand(r *rand.Rand) Option { return vector.WithRand(r) }

// WithSeed uses a fresh deterministic source seeded with seed.
func WithSeed(seed int64) Option { return vector.WithSeed(seed) }
