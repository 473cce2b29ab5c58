package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/argonlab/timefreq/windowing"
)

// Config represents the analysis configuration
type Config struct {
	// Application settings
	Verbose   bool   `mapstructure:"verbose"`
	LogLevel  string `mapstructure:"log_level"`
	OutputDir string `mapstructure:"output_dir"`

	// Synthetic test signal
	Signal SignalConfig `mapstructure:"signal"`

	// Short-time analysis parameters
	STFT STFTConfig `mapstructure:"stft"`
}

// SignalConfig describes the synthetic composite signal
type SignalConfig struct {
	SampleRate     float64   `mapstructure:"sample_rate"`
	Duration       float64   `mapstructure:"duration"`
	Frequencies    []float64 `mapstructure:"frequencies"`
	Amplitudes     []float64 `mapstructure:"amplitudes"`
	NoiseAmplitude float64   `mapstructure:"noise_amplitude"`
}

// STFTConfig holds short-time transform parameters
type STFTConfig struct {
	WindowSize int     `mapstructure:"window_size"`
	HopLength  int     `mapstructure:"hop_length"`
	WindowType string  `mapstructure:"window_type"`
	DBRange    float64 `mapstructure:"db_range"`
}

// LoadConfig reads configuration from viper with defaults applied
func LoadConfig(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("output_dir", "output")

	v.SetDefault("signal.sample_rate", 1000.0)
	v.SetDefault("signal.duration", 1.0)
	v.SetDefault("signal.frequencies", []float64{10.0, 50.0})
	v.SetDefault("signal.amplitudes", []float64{1.0, 0.5})
	v.SetDefault("signal.noise_amplitude", 0.0)

	v.SetDefault("stft.window_size", 256)
	v.SetDefault("stft.hop_length", 64)
	v.SetDefault("stft.window_type", string(windowing.TypeHamming))
	v.SetDefault("stft.db_range", 60.0)
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Signal.SampleRate <= 0 {
		return fmt.Errorf("signal.sample_rate must be positive, got %v", c.Signal.SampleRate)
	}
	if c.Signal.Duration <= 0 {
		return fmt.Errorf("signal.duration must be positive, got %v", c.Signal.Duration)
	}
	if len(c.Signal.Frequencies) != len(c.Signal.Amplitudes) {
		return fmt.Errorf("signal.frequencies (%d) and signal.amplitudes (%d) must have equal length",
			len(c.Signal.Frequencies), len(c.Signal.Amplitudes))
	}
	if c.Signal.NoiseAmplitude < 0 {
		return fmt.Errorf("signal.noise_amplitude must not be negative, got %v", c.Signal.NoiseAmplitude)
	}

	if c.STFT.WindowSize <= 0 {
		return fmt.Errorf("stft.window_size must be positive, got %d", c.STFT.WindowSize)
	}
	if c.STFT.HopLength <= 0 {
		return fmt.Errorf("stft.hop_length must be positive, got %d", c.STFT.HopLength)
	}
	if c.STFT.HopLength > c.STFT.WindowSize {
		return fmt.Errorf("stft.hop_length (%d) must not exceed stft.window_size (%d)",
			c.STFT.HopLength, c.STFT.WindowSize)
	}
	if _, err := windowing.ParseType(c.STFT.WindowType); err != nil {
		return fmt.Errorf("stft.window_type: %w", err)
	}
	if c.STFT.DBRange <= 0 {
		return fmt.Errorf("stft.db_range must be positive, got %v", c.STFT.DBRange)
	}

	return nil
}
