// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goawav "github.com/go-audio/wav"
)

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.5, -0.5, 1, -1, 0.25}
	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if err := Encode(f, 8000, samples); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer r.Close()

	dec := goawav.NewDecoder(r)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := int(dec.SampleRate); got != 8000 {
		t.Errorf("sample rate = %d, want 8000", got)
	}
	if got := int(dec.NumChans); got != NumChannels {
		t.Errorf("channels = %d, want %d", got, NumChannels)
	}
	if got := int(dec.BitDepth); got != BitDepth {
		t.Errorf("bit depth = %d, want %d", got, BitDepth)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}

	for i, want := range samples {
		got := float64(buf.Data[i]) / 32767.0
		if math.Abs(got-float64(want)) > 1.5/32767.0 {
			t.Errorf("sample %d = %v, want ≈%v", i, got, want)
		}
	}
}

func TestEncodeInvalidSampleRate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	if err := Encode(f, 0, []float32{0}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Encode(rate=0) error = %v, want ErrInvalidSampleRate", err)
	}
	if err := Encode(f, -44100, []float32{0}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Encode(rate=-44100) error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "out.wav")
	if err := WriteFile(path, 44100, []float32{0, 0.1, -0.1}); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() <= 44 {
		t.Errorf("output file size = %d, want header plus data", info.Size())
	}
}

func TestWriteFileExportFailed(t *testing.T) {
	t.Parallel()

	// Using a regular file as a path component forces MkdirAll to fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	path := filepath.Join(blocker, "sub", "out.wav")
	err := WriteFile(path, 44100, []float32{0})
	if !errors.Is(err, ErrExportFailed) {
		t.Errorf("WriteFile() error = %v, want ErrExportFailed", err)
	}
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := WriteFile(path, -1, []float32{0}); err == nil {
		t.Fatal("WriteFile(rate=-1) succeeded, want error")
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial output left behind: stat err = %v", err)
	}
}

func TestEncodeEmptyBuffer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.wav")
	if err := WriteFile(path, 44100, nil); err != nil {
		t.Fatalf("WriteFile(empty) error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("empty WAV not written: %v", err)
	}
}
