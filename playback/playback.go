// SPDX-License-Identifier: EPL-2.0

// Package playback plays rendered buffers through the default audio output
// device using PortAudio. It is a boundary adapter: no synthesis logic, just
// device I/O.
package playback

import (
	"context"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 1024

// Play writes samples to the default output device at sampleRate and blocks
// until playback finishes or ctx is cancelled. Samples are mono float32 in
// [-1, 1].
func Play(ctx context.Context, sampleRate int, samples []float32) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	defer portaudio.Terminate()

	out := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuffer, &out)
	if err != nil {
		return fmt.Errorf("failed to open output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start output stream: %w", err)
	}
	defer stream.Stop()

	for pos := 0; pos < len(samples); pos += framesPerBuffer {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n := copy(out, samples[pos:])
		// Zero-pad the final partial buffer
		for i := n; i < len(out); i++ {
			out[i] = 0
		}

		if err := stream.Write(); err != nil {
			return fmt.Errorf("failed to write to output stream: %w", err)
		}
	}

	return nil
}
