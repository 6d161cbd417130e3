// SPDX-License-Identifier: EPL-2.0

// Package wav exports rendered sample buffers as WAV files.
//
// This package uses github.com/go-audio/wav for the container encoding.
// Output is always mono 16-bit PCM; float32 samples in [-1, 1] are
// quantized on the way out.
//
// # Writing WAV Files
//
// Encode writes to any io.WriteSeeker:
//
//	f, _ := os.Create("birds.wav")
//	err := wav.Encode(f, 44100, samples)
//
// WriteFile handles file creation (including parent directories) and cleans
// up a partially written file when encoding fails:
//
//	err := wav.WriteFile("out/birds.wav", 44100, samples)
//
// # Error Handling
//
// All encoder and I/O failures are wrapped in ErrExportFailed, so callers
// can distinguish export problems from synthesis problems:
//
//	if errors.Is(err, wav.ErrExportFailed) {
//	    // Disk full, bad path, ...
//	}
package wav
