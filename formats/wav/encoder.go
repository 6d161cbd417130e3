// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	goawav "github.com/go-audio/wav"

	"github.com/ik5/soundscape/utils"
)

// Output format of every file this package writes: mono 16-bit PCM.
const (
	BitDepth    = 16
	NumChannels = 1
)

// Encode writes samples as a mono 16-bit PCM WAV stream at sampleRate.
// Samples are float32 in [-1, 1]; values outside are clamped during
// quantization. Any encoder or I/O failure is reported as ErrExportFailed.
func Encode(w io.WriteSeeker, sampleRate int, samples []float32) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	pcm := utils.QuantizeInt16(samples)
	data := make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}

	enc := goawav.NewEncoder(w, sampleRate, BitDepth, NumChannels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: NumChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	return nil
}

// WriteFile encodes samples into a WAV file at path, creating missing parent
// directories. A file left half-written by a failed encode is removed.
func WriteFile(path string, sampleRate int, samples []float32) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrExportFailed, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	if err := Encode(f, sampleRate, samples); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	return nil
}
