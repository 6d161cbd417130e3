// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/soundscape/utils"
)

// Peak returns the largest absolute sample value in buf.
func Peak(buf []float32) float64 {
	var peak float64
	for _, s := range buf {
		if abs := math.Abs(float64(s)); abs > peak {
			peak = abs
		}
	}

	return peak
}

// Normalize applies a single uniform gain to buf in place so the loudest
// sample lands exactly headroomDB below full scale. An all-silent buffer is
// left untouched.
//
// This is a one-pass peak normalization, not a time-varying gain.
func Normalize(buf []float32, headroomDB float64) {
	peak := Peak(buf)
	if peak == 0 {
		return
	}

	gain := float32(utils.DBToGain(-headroomDB) / peak)
	for i := range buf {
		buf[i] *= gain
	}
}
