// SPDX-License-Identifier: EPL-2.0

package compose

import "errors"

var (
	ErrNoPatterns     = errors.New("pattern table is empty")
	ErrInvalidWeights = errors.New("pattern weights must include a positive value")
	ErrInvalidTarget  = errors.New("target duration must be positive")
	ErrStalled        = errors.New("accumulation failed to reach target duration")
)
