package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/argonlab/timefreq/configs"
	"github.com/argonlab/timefreq/logging"
)

var (
	configFile string
	verbose    bool
	logLevel   string
	outputDir  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "timefreq",
	Short: "Time-frequency analysis of sampled signals",
	Long: `A tool for time-frequency analysis of sampled signals.

It synthesizes composite sinusoid signals, computes their frequency-domain
representation and reconstruction, and produces short-time transforms with
windowing and dB-scaled spectrogram normalization. Results are written as
delimited text files named by experiment identifier.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is ./timefreq.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "output",
		"directory for result files")

	// Bind every persistent flag under its snake_case config key
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("timefreq")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TIMEFREQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the validated analysis configuration and a logger at
// the configured level
func loadConfig() (*configs.Config, logging.Logger, error) {
	cfg, err := configs.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	logger := logging.GetGlobalLogger()
	if cfg.Verbose {
		logger.SetLevel(logging.DebugLevel)
	} else {
		logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	return cfg, logger, nil
}
