package wav

import "errors"

var (
	ErrExportFailed      = errors.New("wav export failed")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
