// SPDX-License-Identifier: EPL-2.0

// Package calls synthesizes individual bird vocalizations.
//
// A call is one vocalization event, built from the tone primitives in the
// synth package. Three algorithms are available, selected through the Kind
// enum:
//
//   - KindMultiChirp: 2-6 short tone bursts with melodic frequency drift
//     and randomized gaps between them
//   - KindWhistle: a smooth descending pitch slide
//   - KindTrill: a rapid sinusoidal vibrato around a base frequency
//
// # Patterns
//
// A Pattern binds a Kind to the frequency and duration ranges it draws
// from, plus a selection weight used by the composer:
//
//	p := calls.Pattern{
//	    Name:   "whistle",
//	    Kind:   calls.KindWhistle,
//	    Freq:   calls.Range{Low: 1500, High: 3500}, // Hz
//	    Dur:    calls.Range{Low: 200, High: 400},   // ms
//	    Weight: 2,
//	}
//	seg, err := calls.Synthesize(rng, 44100, p)
//
// DefaultPatterns returns the built-in table of five bird kinds.
//
// # Randomness
//
// Every random draw goes through the *rand.Rand passed in by the caller.
// Seeding that source makes call synthesis fully reproducible, which the
// tests rely on.
//
// # Degenerate Ranges
//
// A draw that yields a non-positive frequency or duration is rejected and
// re-drawn a bounded number of times. If the range itself cannot produce a
// positive value, synthesis fails with ErrDegenerateRange rather than
// silently clamping.
package calls
