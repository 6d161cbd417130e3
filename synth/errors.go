// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidToneSpec   = errors.New("tone frequency and duration must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
