// SPDX-License-Identifier: EPL-2.0

// Package soundscape procedurally synthesizes natural-sounding ambient bird
// audio of arbitrary length, entirely from parametric tone generation — no
// samples, no recordings.
//
// The engine composes three kinds of synthetic bird calls (multi-chirp
// calls, descending whistles, warbling trills) on a randomized timeline with
// natural silence patterns, then peak-normalizes the result to a safe output
// level.
//
// # Quick Start
//
// The simplest way to generate a soundscape is the package-level facade:
//
//	// Five minutes of 44.1kHz mono birdsong
//	buf, err := soundscape.Generate(5*time.Minute, compose.Options{})
//
//	// Or straight to a WAV file
//	err = soundscape.GenerateFile("birds.wav", 5*time.Minute, compose.Options{})
//
// # Pipeline
//
// For more control, use the subpackages directly:
//
//	c, _ := compose.New(compose.Options{
//	    SampleRate: 22050,
//	    HeadroomDB: 3,
//	    Patterns:   myPatterns,
//	})
//	buf, _ := c.Render(time.Minute)
//	wav.WriteFile("out.wav", c.SampleRate(), buf)
//
// The layers, bottom up:
//   - synth: pure tone generation, overlay mixing, fade envelopes, peak
//     normalization
//   - calls: the three call synthesis algorithms and the weighted pattern
//     table
//   - compose: the timeline composer that accumulates calls and silences to
//     an exact target length
//   - formats/wav: WAV export (mono 16-bit PCM) via github.com/go-audio/wav
//   - playback: PortAudio playback of rendered buffers
//
// # Sample Format
//
// All buffers are mono float32 in [-1.0, 1.0] at a caller-chosen sample
// rate. Every buffer on one timeline shares that rate; concatenation is
// sample-exact and nothing is ever resampled implicitly.
//
// # Determinism
//
// Generation is randomized by default. Inject a seeded source through
// compose.Options.Rand and two runs with identical parameters produce
// byte-identical output:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	buf, _ := soundscape.Generate(time.Minute, compose.Options{Rand: rng})
//
// # Error Handling
//
// Errors are sentinel values compatible with errors.Is:
//   - synth.ErrInvalidToneSpec: a non-positive frequency or duration
//     reached the oscillator
//   - calls.ErrDegenerateRange: a pattern range cannot produce a valid
//     tone after bounded retries
//   - wav.ErrExportFailed: the encoder or file I/O failed
//
// Synthesis errors abort the whole generation call; the engine never hands
// a truncated or corrupt buffer to the export layer.
package soundscape
