// SPDX-License-Identifier: EPL-2.0

package calls

import "errors"

var (
	ErrDegenerateRange = errors.New("range cannot produce a positive value")
	ErrUnknownKind     = errors.New("unknown call kind")
)
