package soundscape

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/soundscape/compose"
	"github.com/ik5/soundscape/formats/wav"
)

// Generate is a high-level convenience function that renders a complete,
// normalized bird soundscape of the given length.
//
// This function creates the full synthesis pipeline:
//  1. Builds a timeline composer from opts (zero-value fields pick defaults:
//     44.1kHz, 1 dB headroom, the built-in bird pattern table)
//  2. Accumulates weighted-random calls and silences until target is reached
//  3. Truncates to exactly round(target · rate) samples
//  4. Peak-normalizes the result once
//
// Parameters:
//   - target: Length of the soundscape to render. Must be positive.
//   - opts: Composer configuration. Pass compose.Options{} for defaults;
//     set opts.Rand to a seeded source for reproducible output.
//
// Returns:
//   - []float32: Mono samples in [-1, 1], exactly round(target · rate) long
//   - error: Any synthesis error; the buffer is never partially valid
//
// Note: This is a convenience function for common use cases. For repeated
// generation with the same settings, build a compose.Composer directly and
// call Render on it.
//
// Example:
//
//	buf, err := soundscape.Generate(5*time.Minute, compose.Options{})
//	if err != nil {
//	    panic(err)
//	}
//	// buf now contains 5 minutes of mono 44.1kHz birdsong
func Generate(target time.Duration, opts compose.Options) ([]float32, error) {
	c, err := compose.New(opts)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return c.Render(target)
}

// GenerateWAV renders a soundscape and encodes it as a mono 16-bit PCM WAV
// stream to w. Synthesis errors abort before anything is written; encoder
// and I/O errors are reported as wav.ErrExportFailed.
func GenerateWAV(w io.WriteSeeker, target time.Duration, opts compose.Options) error {
	c, err := compose.New(opts)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	buf, err := c.Render(target)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return wav.Encode(w, c.SampleRate(), buf)
}

// GenerateFile renders a soundscape and writes it as a WAV file at path,
// creating missing parent directories. No file is left behind when either
// synthesis or export fails.
func GenerateFile(path string, target time.Duration, opts compose.Options) error {
	c, err := compose.New(opts)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	buf, err := c.Render(target)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return wav.WriteFile(path, c.SampleRate(), buf)
}
