// SPDX-License-Identifier: EPL-2.0

// Package synthtest provides deterministic helpers for synthesis tests.
package synthtest

import "math/rand/v2"

// NewRand returns a seeded random source so tests reproduce exactly.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// InRange reports whether every sample of buf lies within [-limit, limit].
func InRange(buf []float32, limit float32) bool {
	for _, s := range buf {
		if s > limit || s < -limit {
			return false
		}
	}

	return true
}
