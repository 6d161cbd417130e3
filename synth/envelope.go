// SPDX-License-Identifier: EPL-2.0

package synth

import "time"

// ApplyFade scales buf in place with a linear fade-in over the first fadeIn
// worth of samples and a linear fade-out over the last fadeOut worth.
//
// When the requested ramps together exceed the buffer, both are shrunk
// proportionally so they still fit without overlapping. Negative durations
// are treated as zero. No allocation.
func ApplyFade(buf []float32, rate int, fadeIn, fadeOut time.Duration) {
	n := len(buf)
	if n == 0 {
		return
	}

	inN := Samples(rate, fadeIn)
	outN := Samples(rate, fadeOut)
	if inN < 0 {
		inN = 0
	}
	if outN < 0 {
		outN = 0
	}

	// Proportional clamp: keeps the in/out ratio while fitting both ramps
	// inside the buffer, so very short segments never get a negative sustain.
	if total := inN + outN; total > n {
		inN = inN * n / total
		outN = outN * n / total
	}

	for i := range inN {
		buf[i] *= float32(i) / float32(inN)
	}
	for i := range outN {
		buf[n-outN+i] *= float32(outN-i) / float32(outN)
	}
}
