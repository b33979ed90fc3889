// SPDX-License-Identifier: MIT

package vector

import (
	"math/rand"

	"github.com/katalvlaran/densela/internal/rng"
)

const panicNilRand = "vector: WithRand: rand source must not be nil"

// Option configures random construction. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	rnd *rand.Rand // source for NewRandom; nil ⇒ rng.FromSeed(0)
}

// WithRand injects the random source used by NewRandom.
// Panics on nil (programmer error).
//
// The source is consumed, not copied: two constructors sharing one source
// draw consecutive values from it.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rnd = r }
}

// WithSeed uses a fresh deterministic source seeded with seed
// (seed==0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.rnd = rng.FromSeed(seed) }
}

// gatherOptions applies user options over defaults.
func gatherOptions(opts ...Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rnd == nil {
		o.rnd = rng.FromSeed(0)
	}

	return o
}
