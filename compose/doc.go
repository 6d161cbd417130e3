// SPDX-License-Identifier: EPL-2.0

// Package compose assembles calls into a complete soundscape timeline.
//
// The Composer is the engine's entry point: it repeatedly picks a call
// pattern by weighted random choice, synthesizes it through the calls
// package, inserts a randomized silence, and appends everything to a single
// growing buffer until the target duration is reached. The buffer is then
// truncated to the exact sample count and peak-normalized once.
//
// # Usage
//
//	c, err := compose.New(compose.Options{
//	    SampleRate: 44100,
//	    HeadroomDB: 1.0,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := c.Render(5 * time.Minute)
//
// The result always holds exactly round(target · rate) samples, with the
// loudest sample sitting HeadroomDB below full scale.
//
// # Determinism
//
// Generation is randomized by default. For reproducible output, inject a
// seeded source:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	c, _ := compose.New(compose.Options{Rand: rng})
//
// Two composers built from the same seed and options render byte-identical
// buffers.
//
// # Safety Against Pathological Tables
//
// A pattern table whose entries keep synthesizing empty calls could stall
// the accumulation loop forever. Render bounds the loop with an iteration
// cap derived from the target duration and fails with ErrStalled instead of
// spinning.
//
// The Composer owns its timeline buffer exclusively while rendering; there
// is no shared state and no locking. Run independent composers for parallel
// generation at different settings.
package compose
