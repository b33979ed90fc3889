// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random generation for random-filled
// vectors and matrices.
//
// Goals:
//   - Determinism: same seed ⇒ identical values across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// FillUniform writes independent uniform samples from [0,1) into dst.
// If r==nil, the default deterministic stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func FillUniform(dst []float32, r *rand.Rand) {
	if r == nil {
		r = FromSeed(0)
	}
	for i := range dst {
		dst[i] = r.Float32()
	}
}
