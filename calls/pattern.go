// SPDX-License-Identifier: EPL-2.0

package calls

import (
	"math/rand/v2"
	"time"
)

// Kind identifies one of the call synthesis algorithms.
type Kind int

const (
	// KindMultiChirp is a sequence of 2-6 short chirps with melodic drift.
	KindMultiChirp Kind = iota
	// KindWhistle is a single smooth descending pitch slide.
	KindWhistle
	// KindTrill is a rapid sinusoidal vibrato around a base frequency.
	KindTrill
)

func (k Kind) String() string {
	switch k {
	case KindMultiChirp:
		return "multi-chirp"
	case KindWhistle:
		return "whistle"
	case KindTrill:
		return "trill"
	default:
		return "unknown"
	}
}

// Range is an inclusive numeric interval used for random draws.
type Range struct {
	Low  float64
	High float64
}

// Pattern describes one entry of the pattern table: which call algorithm to
// run and the parameter ranges to draw from. Read-only at synthesis time.
type Pattern struct {
	Name   string
	Kind   Kind
	Freq   Range // Hz
	Dur    Range // milliseconds
	Weight float64
}

// DefaultPatterns returns the built-in bird pattern table. Weights are
// relative; they do not need to sum to 1.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Name: "high songbird", Kind: KindMultiChirp, Freq: Range{1200, 3500}, Dur: Range{50, 250}, Weight: 3},
		{Name: "medium songbird", Kind: KindMultiChirp, Freq: Range{800, 2500}, Dur: Range{80, 400}, Weight: 3},
		{Name: "low songbird", Kind: KindMultiChirp, Freq: Range{600, 1800}, Dur: Range{100, 500}, Weight: 2},
		{Name: "whistle", Kind: KindWhistle, Freq: Range{1500, 3500}, Dur: Range{200, 400}, Weight: 2},
		{Name: "trill", Kind: KindTrill, Freq: Range{1800, 2800}, Dur: Range{300, 600}, Weight: 1},
	}
}

// maxRedraws bounds how often a draw that produced a non-positive value is
// retried before the range is declared degenerate.
const maxRedraws = 8

func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}

// drawPositive draws a uniform value from r, re-drawing a bounded number of
// times when the result is not positive. Returns ErrDegenerateRange when the
// range cannot yield a positive value at all, or when the retries run out.
func drawPositive(rng *rand.Rand, r Range) (float64, error) {
	if r.High < r.Low || r.High <= 0 {
		return 0, ErrDegenerateRange
	}

	for range maxRedraws {
		if v := uniform(rng, r.Low, r.High); v > 0 {
			return v, nil
		}
	}

	return 0, ErrDegenerateRange
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
