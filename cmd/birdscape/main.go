// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/soundscape"
	"github.com/ik5/soundscape/compose"
	"github.com/ik5/soundscape/internal/config"
	"github.com/ik5/soundscape/playback"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "birdscape",
	Short: "Procedural birdsong soundscape generator",
	Long: `birdscape synthesizes natural-sounding ambient bird audio purely from
parametric tone generation and exports it as a WAV file. No samples, no
recordings -- every chirp is computed.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("birdscape v%s\n", version)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a soundscape and write it as a WAV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		duration, _ := cmd.Flags().GetInt("duration")
		sampleRate, _ := cmd.Flags().GetInt("sample-rate")
		headroom, _ := cmd.Flags().GetFloat64("headroom")

		logger := setupLogger()

		target := time.Duration(duration) * time.Second
		logger.Info("Generating soundscape",
			slog.Duration("duration", target),
			slog.Int("sample_rate", sampleRate),
			slog.String("output", output))

		started := time.Now()
		err := soundscape.GenerateFile(output, target, compose.Options{
			SampleRate: sampleRate,
			HeadroomDB: headroom,
			Rand:       seededRand(cmd),
		})
		if err != nil {
			return err
		}

		info, err := os.Stat(output)
		if err != nil {
			return err
		}

		logger.Info("Soundscape written",
			slog.String("output", output),
			slog.Float64("size_mb", float64(info.Size())/(1024*1024)),
			slog.Duration("elapsed", time.Since(started).Round(time.Millisecond)))
		return nil
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Generate a soundscape and play it on the default audio device",
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		sampleRate, _ := cmd.Flags().GetInt("sample-rate")
		headroom, _ := cmd.Flags().GetFloat64("headroom")

		logger := setupLogger()

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		target := time.Duration(duration) * time.Second
		logger.Info("Generating soundscape",
			slog.Duration("duration", target),
			slog.Int("sample_rate", sampleRate))

		buf, err := soundscape.Generate(target, compose.Options{
			SampleRate: sampleRate,
			HeadroomDB: headroom,
			Rand:       seededRand(cmd),
		})
		if err != nil {
			return err
		}

		logger.Info("Playing", slog.Int("samples", len(buf)))
		return playback.Play(ctx, sampleRate, buf)
	},
}

func setupLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// seededRand returns a seeded random source when --seed was given, or nil so
// the composer picks an unpredictable one.
func seededRand(cmd *cobra.Command) *rand.Rand {
	if !cmd.Flags().Changed("seed") {
		return nil
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	cfg := config.Load()

	for _, c := range []*cobra.Command{generateCmd, playCmd} {
		c.Flags().IntP("duration", "d", cfg.DurationSeconds, "Duration in seconds")
		c.Flags().Int("sample-rate", cfg.SampleRate, "Output sample rate in Hz")
		c.Flags().Float64("headroom", cfg.HeadroomDB, "Normalization headroom in dB")
		c.Flags().Uint64("seed", 0, "Random seed for reproducible output")
	}
	generateCmd.Flags().StringP("output", "o", cfg.OutputPath, "Output WAV file path")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
