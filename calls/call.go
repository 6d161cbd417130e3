// SPDX-License-Identifier: EPL-2.0

package calls

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/ik5/soundscape/synth"
)

// Segment is one synthesized call, tagged with the kind that produced it.
// The tag is diagnostic only; downstream code consumes just the samples.
type Segment struct {
	Kind    Kind
	Samples []float32
}

// Duration returns the segment length at the given sample rate.
func (s Segment) Duration(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}

	return time.Duration(float64(len(s.Samples)) / float64(rate) * float64(time.Second))
}

// Synthesize renders one call of the pattern's kind using its parameter
// ranges. The random source drives every draw, so a seeded rng makes the
// output reproducible.
func Synthesize(rng *rand.Rand, rate int, p Pattern) (Segment, error) {
	var (
		samples []float32
		err     error
	)

	switch p.Kind {
	case KindMultiChirp:
		samples, err = MultiChirp(rng, rate, p.Freq, p.Dur)
	case KindWhistle:
		samples, err = DescendingWhistle(rng, rate, p.Freq, p.Dur)
	case KindTrill:
		samples, err = WarblingTrill(rng, rate, p.Freq, p.Dur)
	default:
		return Segment{}, fmt.Errorf("%w: %d", ErrUnknownKind, p.Kind)
	}

	if err != nil {
		return Segment{}, fmt.Errorf("%s: %w", p.Kind, err)
	}

	return Segment{Kind: p.Kind, Samples: samples}, nil
}

// Chirp synthesizes a single tone burst: the base frequency overlaid with a
// ±15% detuned copy at -6 dB for timbral richness, then a short envelope.
func Chirp(rng *rand.Rand, rate int, freq float64, dur time.Duration) ([]float32, error) {
	base, err := synth.Tone(rate, synth.ToneSpec{Freq: freq, Duration: dur})
	if err != nil {
		return nil, err
	}

	detuned := freq * (1 + uniform(rng, -0.15, 0.15))
	mod, err := synth.Tone(rate, synth.ToneSpec{Freq: detuned, Duration: dur})
	if err != nil {
		return nil, err
	}

	chirp := synth.Overlay(base, mod, -6)

	fadeIn := min(20*time.Millisecond, dur/10)
	fadeOut := min(50*time.Millisecond, dur/5)
	synth.ApplyFade(chirp, rate, fadeIn, fadeOut)

	return chirp, nil
}

// MultiChirp synthesizes a call of 2-6 chirps. Chirp frequencies drift
// melodically across the sequence (±30% interpolated by index) and chirps
// are separated by 30-150ms of silence, except after the last one.
func MultiChirp(rng *rand.Rand, rate int, freqRange, durRange Range) ([]float32, error) {
	numChirps := 2 + rng.IntN(5)

	var call []float32
	for i := range numChirps {
		drift := 1 + (float64(i)/float64(numChirps))*uniform(rng, -0.3, 0.3)

		base, err := drawPositive(rng, freqRange)
		if err != nil {
			return nil, err
		}
		durMs, err := drawPositive(rng, durRange)
		if err != nil {
			return nil, err
		}

		chirp, err := Chirp(rng, rate, base*drift, millis(durMs))
		if err != nil {
			return nil, err
		}
		call = append(call, chirp...)

		if i < numChirps-1 {
			gap := uniform(rng, 30, 150)
			call = append(call, synth.Silence(rate, millis(gap))...)
		}
	}

	return call, nil
}

// DescendingWhistle synthesizes one smooth pitch slide from a start
// frequency down to 50-80% of it, as 10 contiguous tone segments holding
// interpolated frequencies, with a single envelope over the whole call.
func DescendingWhistle(rng *rand.Rand, rate int, freqRange, durRange Range) ([]float32, error) {
	start, err := drawPositive(rng, freqRange)
	if err != nil {
		return nil, err
	}
	durMs, err := drawPositive(rng, durRange)
	if err != nil {
		return nil, err
	}
	end := start * uniform(rng, 0.5, 0.8)

	const numSegments = 10
	segDur := millis(durMs / numSegments)

	var whistle []float32
	for i := range numSegments {
		t := float64(i) / numSegments
		freq := start + (end-start)*t

		seg, err := synth.Tone(rate, synth.ToneSpec{Freq: freq, Duration: segDur})
		if err != nil {
			return nil, err
		}
		whistle = append(whistle, seg...)
	}

	synth.ApplyFade(whistle, rate, 20*time.Millisecond, 50*time.Millisecond)

	return whistle, nil
}

// WarblingTrill synthesizes a rapid vibrato: 20 contiguous segments whose
// frequency swings sinusoidally ±20% around the base across the segment
// index, with a light envelope over the whole call.
func WarblingTrill(rng *rand.Rand, rate int, freqRange, durRange Range) ([]float32, error) {
	base, err := drawPositive(rng, freqRange)
	if err != nil {
		return nil, err
	}
	durMs, err := drawPositive(rng, durRange)
	if err != nil {
		return nil, err
	}

	const numSegments = 20
	segDur := millis(durMs / numSegments)

	var trill []float32
	for i := range numSegments {
		variation := math.Sin(float64(i)*2*math.Pi/numSegments) * 0.2
		freq := base * (1 + variation)

		seg, err := synth.Tone(rate, synth.ToneSpec{Freq: freq, Duration: segDur})
		if err != nil {
			return nil, err
		}
		trill = append(trill, seg...)
	}

	synth.ApplyFade(trill, rate, 10*time.Millisecond, 30*time.Millisecond)

	return trill, nil
}
