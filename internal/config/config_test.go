package config

import (
	"os"
	"testing"
)

var configEnvVars = []string{
	"SOUNDSCAPE_SAMPLE_RATE", "SOUNDSCAPE_DURATION",
	"SOUNDSCAPE_HEADROOM_DB", "SOUNDSCAPE_OUTPUT",
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range configEnvVars {
		os.Unsetenv(k)
	}

	cfg := Load()

	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.DurationSeconds != 300 {
		t.Errorf("DurationSeconds = %d, want 300", cfg.DurationSeconds)
	}
	if cfg.HeadroomDB != 1.0 {
		t.Errorf("HeadroomDB = %f, want 1.0", cfg.HeadroomDB)
	}
	if cfg.OutputPath != "jungle-birds.wav" {
		t.Errorf("OutputPath = %q, want jungle-birds.wav", cfg.OutputPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SOUNDSCAPE_SAMPLE_RATE", "8000")
	t.Setenv("SOUNDSCAPE_DURATION", "5")
	t.Setenv("SOUNDSCAPE_HEADROOM_DB", "3.5")
	t.Setenv("SOUNDSCAPE_OUTPUT", "/tmp/out.wav")

	cfg := Load()

	if cfg.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", cfg.SampleRate)
	}
	if cfg.DurationSeconds != 5 {
		t.Errorf("DurationSeconds = %d, want 5", cfg.DurationSeconds)
	}
	if cfg.HeadroomDB != 3.5 {
		t.Errorf("HeadroomDB = %f, want 3.5", cfg.HeadroomDB)
	}
	if cfg.OutputPath != "/tmp/out.wav" {
		t.Errorf("OutputPath = %q, want /tmp/out.wav", cfg.OutputPath)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SOUNDSCAPE_SAMPLE_RATE", "not-a-number")
	t.Setenv("SOUNDSCAPE_HEADROOM_DB", "loud")

	cfg := Load()

	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want fallback 44100", cfg.SampleRate)
	}
	if cfg.HeadroomDB != 1.0 {
		t.Errorf("HeadroomDB = %f, want fallback 1.0", cfg.HeadroomDB)
	}
}
