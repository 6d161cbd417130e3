package config

import (
	"os"
	"strconv"
)

// Config holds generation defaults, loaded from environment variables. CLI
// flags override these.
type Config struct {
	SampleRate      int     // output sample rate in Hz
	DurationSeconds int     // soundscape length
	HeadroomDB      float64 // normalization headroom
	OutputPath      string  // default export path
}

// Load reads configuration from SOUNDSCAPE_* environment variables with the
// original generator's defaults: 5 minutes of 44.1kHz audio.
func Load() Config {
	return Config{
		SampleRate:      envInt("SOUNDSCAPE_SAMPLE_RATE", 44100),
		DurationSeconds: envInt("SOUNDSCAPE_DURATION", 300),
		HeadroomDB:      envFloat("SOUNDSCAPE_HEADROOM_DB", 1.0),
		OutputPath:      envStr("SOUNDSCAPE_OUTPUT", "jungle-birds.wav"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
