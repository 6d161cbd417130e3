// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"time"

	"github.com/ik5/soundscape/utils"
)

// ToneLevelDB is the reference level of a generated tone relative to full
// scale. Tones are kept below 0 dBFS so overlaying a second tone cannot clip.
const ToneLevelDB = -6.0

// ToneSpec describes a pure tone to synthesize. Immutable value type.
type ToneSpec struct {
	// Freq is the tone frequency in Hz. Must be positive.
	Freq float64
	// Duration of the tone. Must be positive.
	Duration time.Duration
}

// Samples returns the number of samples needed to hold d worth of audio at
// the given sample rate, rounded to the nearest sample.
func Samples(rate int, d time.Duration) int {
	return int(math.Round(d.Seconds() * float64(rate)))
}

// Tone synthesizes a pure sinusoid described by spec at the given sample
// rate. Sample i equals sin(2π·f·i/rate), scaled to ToneLevelDB.
//
// Returns ErrInvalidToneSpec if the frequency or duration is not positive,
// and ErrInvalidSampleRate if rate is not positive.
func Tone(rate int, spec ToneSpec) ([]float32, error) {
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if spec.Freq <= 0 || spec.Duration <= 0 {
		return nil, ErrInvalidToneSpec
	}

	n := Samples(rate, spec.Duration)
	level := utils.DBToGain(ToneLevelDB)
	step := 2 * math.Pi * spec.Freq / float64(rate)

	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(level * math.Sin(step*float64(i)))
	}

	return buf, nil
}

// Silence returns a buffer of d worth of zero samples at the given rate.
// A non-positive duration yields an empty buffer.
func Silence(rate int, d time.Duration) []float32 {
	if d <= 0 {
		return nil
	}

	return make([]float32, Samples(rate, d))
}

// Overlay mixes b into a with b attenuated (or boosted) by gainDB. Both
// buffers are aligned at sample 0; the shorter one is treated as zero-padded.
// The result has the length of the longer input. Neither input is modified.
func Overlay(a, b []float32, gainDB float64) []float32 {
	n := max(len(a), len(b))
	gain := float32(utils.DBToGain(gainDB))

	out := make([]float32, n)
	copy(out, a)
	for i := range b {
		out[i] += b[i] * gain
	}

	return out
}
