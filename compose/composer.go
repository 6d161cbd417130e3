// SPDX-License-Identifier: EPL-2.0

package compose

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ik5/soundscape/calls"
	"github.com/ik5/soundscape/synth"
)

// Default values used when the corresponding Options field is zero.
const (
	DefaultSampleRate      = 44100
	DefaultHeadroomDB      = 1.0
	DefaultLongPauseChance = 0.1
)

// Silence bounds between calls, after the original field recordings this
// engine imitates: every call is followed by a short pause, and occasionally
// by an extra long one.
const (
	minSilenceMs   = 500
	maxSilenceMs   = 3000
	minLongPauseMs = 2000
	maxLongPauseMs = 5000
)

// Options configures a Composer. The zero value of each field selects a
// sensible default, so Options{} is valid.
type Options struct {
	// SampleRate in Hz. Defaults to DefaultSampleRate (44100).
	SampleRate int
	// HeadroomDB is the distance below full scale the final peak is
	// normalized to. Defaults to DefaultHeadroomDB (1 dB).
	HeadroomDB float64
	// Patterns is the weighted call table. Defaults to
	// calls.DefaultPatterns().
	Patterns []calls.Pattern
	// LongPauseChance is the probability of appending an extra long pause
	// after a call. Defaults to DefaultLongPauseChance (10%).
	LongPauseChance float64
	// Rand drives every random draw. Pass a seeded source for reproducible
	// output; nil selects an unpredictable one.
	Rand *rand.Rand
}

// Composer accumulates randomly selected calls and silences into a single
// timeline buffer. It is the sole writer of that buffer; a Composer is not
// safe for concurrent use.
type Composer struct {
	rate            int
	headroomDB      float64
	patterns        []calls.Pattern
	longPauseChance float64
	totalWeight     float64
	rng             *rand.Rand
}

// New creates a Composer from opts. Returns ErrNoPatterns for an empty
// pattern table and ErrInvalidWeights when no pattern carries a positive
// weight or any weight is negative.
func New(opts Options) (*Composer, error) {
	c := &Composer{
		rate:            opts.SampleRate,
		headroomDB:      opts.HeadroomDB,
		patterns:        opts.Patterns,
		longPauseChance: opts.LongPauseChance,
		rng:             opts.Rand,
	}

	if c.rate == 0 {
		c.rate = DefaultSampleRate
	}
	if c.rate < 0 {
		return nil, synth.ErrInvalidSampleRate
	}
	if c.headroomDB == 0 {
		c.headroomDB = DefaultHeadroomDB
	}
	if c.patterns == nil {
		c.patterns = calls.DefaultPatterns()
	}
	if len(c.patterns) == 0 {
		return nil, ErrNoPatterns
	}
	if c.longPauseChance == 0 {
		c.longPauseChance = DefaultLongPauseChance
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	for _, p := range c.patterns {
		if p.Weight < 0 {
			return nil, fmt.Errorf("%w: pattern %q has weight %v", ErrInvalidWeights, p.Name, p.Weight)
		}
		c.totalWeight += p.Weight
	}
	if c.totalWeight <= 0 {
		return nil, ErrInvalidWeights
	}

	return c, nil
}

// SampleRate returns the rate the composer renders at.
func (c *Composer) SampleRate() int { return c.rate }

// Render synthesizes a soundscape of exactly target worth of samples:
// len(result) == round(target · rate). The buffer is already normalized to
// the configured headroom.
//
// Accumulation appends weighted-random calls separated by randomized
// silences until the accumulated duration reaches target, then truncates to
// the exact sample count. An iteration cap guards against pattern tables
// whose calls never add length; hitting it returns ErrStalled.
func (c *Composer) Render(target time.Duration) ([]float32, error) {
	if target <= 0 {
		return nil, ErrInvalidTarget
	}

	targetSamples := synth.Samples(c.rate, target)
	timeline := make([]float32, 0, targetSamples+synth.Samples(c.rate, 5*time.Second))

	// Every iteration appends at least minSilenceMs, so this cap is only
	// reachable when call synthesis keeps producing empty segments.
	maxIterations := int(target/(minSilenceMs*time.Millisecond))*4 + 64

	var accumulated time.Duration
	for iter := 0; accumulated < target || len(timeline) < targetSamples; iter++ {
		if iter >= maxIterations {
			return nil, fmt.Errorf("%w after %d iterations", ErrStalled, iter)
		}

		p := c.patterns[c.pickPattern()]
		seg, err := calls.Synthesize(c.rng, c.rate, p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
		timeline = append(timeline, seg.Samples...)
		accumulated += seg.Duration(c.rate)

		pause := c.uniformMs(minSilenceMs, maxSilenceMs)
		timeline = append(timeline, synth.Silence(c.rate, pause)...)
		accumulated += pause

		// Occasional longer pause, as birds actually behave
		if c.rng.Float64() < c.longPauseChance {
			long := c.uniformMs(minLongPauseMs, maxLongPauseMs)
			timeline = append(timeline, synth.Silence(c.rate, long)...)
			accumulated += long
		}
	}

	// The loop only exits at or past the target, so the buffer is always
	// trimmed, never padded.
	timeline = timeline[:targetSamples]
	synth.Normalize(timeline, c.headroomDB)

	return timeline, nil
}

// pickPattern selects a pattern index with probability weight/totalWeight.
func (c *Composer) pickPattern() int {
	r := c.rng.Float64() * c.totalWeight
	for i, p := range c.patterns {
		r -= p.Weight
		if r < 0 {
			return i
		}
	}

	return len(c.patterns) - 1
}

func (c *Composer) uniformMs(low, high float64) time.Duration {
	ms := low + c.rng.Float64()*(high-low)
	return time.Duration(ms * float64(time.Millisecond))
}
