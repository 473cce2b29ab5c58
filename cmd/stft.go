package cmd

import (
	"github.com/spf13/cobra"

	"github.com/argonlab/timefreq/logging"
	"github.com/argonlab/timefreq/spectral"
	"github.com/argonlab/timefreq/windowing"
)

var stftCmd = &cobra.Command{
	Use:   "stft",
	Short: "Compute the short-time transform and spectrogram summary",
	Long: `Synthesizes the configured composite signal, segments it into
overlapping windowed frames, computes the complex time-frequency matrix,
and reports the dB-scaled spectrogram's dominant frequencies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		t := spectral.Times(cfg.Signal.Duration, cfg.Signal.SampleRate)
		signal, err := spectral.GenerateSignal(t, cfg.Signal.Frequencies, cfg.Signal.Amplitudes)
		if err != nil {
			return err
		}

		windowType, err := windowing.ParseType(cfg.STFT.WindowType)
		if err != nil {
			return err
		}

		engine := spectral.NewSTFT()
		result, err := engine.Compute(signal, cfg.Signal.SampleRate,
			cfg.STFT.WindowSize, cfg.STFT.HopLength, windowType)
		if err != nil {
			return err
		}

		logger.Info("stft computed", logging.Fields{
			"num_windows":        result.NumWindows,
			"freq_bins":          result.FreqBins,
			"freq_resolution_hz": result.FreqResolution,
			"time_resolution_s":  result.TimeResolution,
			"window_type":        result.WindowType,
		})

		spectrogram, err := spectral.Spectrogram(result.Matrix, cfg.STFT.DBRange)
		if err != nil {
			return err
		}

		profile := spectral.MeanPowerProfile(spectrogram)
		peaks := spectral.PeakFrequencies(profile, result.Freqs)

		logger.Info("spectral peaks", logging.Fields{
			"frequencies_hz": peaks,
			"db_range":       cfg.STFT.DBRange,
		})

		return nil
	},
}

func init() {
	rootCmd.AddCommand(stftCmd)
}
