// SPDX-License-Identifier: EPL-2.0

// Package synth provides the low-level tone synthesis primitives.
//
// This package contains the DSP building blocks used to assemble bird
// calls:
//   - Tone generates a pure sinusoid from a ToneSpec
//   - Overlay mixes two buffers with a relative gain
//   - ApplyFade applies linear fade-in/fade-out envelopes in place
//   - Normalize applies one-pass peak normalization
//   - Silence produces zero-filled buffers
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// All buffers produced by this package are mono. Buffers that are combined
// with Overlay or concatenated by higher layers must share the same sample
// rate; no implicit resampling happens anywhere.
//
// # Tone Generation
//
// Tone produces round(duration · rate) samples of a sinusoid:
//
//	buf, err := synth.Tone(44100, synth.ToneSpec{
//	    Freq:     880,
//	    Duration: 250 * time.Millisecond,
//	})
//
// Generated tones sit at -6 dBFS (ToneLevelDB) so a detuned second tone can
// be overlaid without clipping:
//
//	richer := synth.Overlay(buf, detuned, -6)
//
// # Envelopes
//
// ApplyFade ramps gain linearly from 0 to 1 over the fade-in and from 1 to 0
// over the fade-out, in place:
//
//	synth.ApplyFade(buf, 44100, 20*time.Millisecond, 50*time.Millisecond)
//
// If the two ramps together would be longer than the buffer, both are
// shrunk proportionally so they always fit. This makes ApplyFade safe for
// arbitrarily short segments.
//
// # Normalization
//
// Normalize scans for the peak and applies a uniform gain so the peak lands
// exactly headroomDB below full scale:
//
//	synth.Normalize(buf, 1.0) // peak becomes 10^(-1/20) ≈ 0.891
//
// A silent buffer stays silent; Normalize never divides by zero.
//
// # Error Handling
//
// Tone rejects non-positive frequencies and durations with
// ErrInvalidToneSpec, and non-positive sample rates with
// ErrInvalidSampleRate. All errors are sentinel values compatible with
// errors.Is.
package synth
