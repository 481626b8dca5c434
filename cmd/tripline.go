package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/triplinehq/tripline/logging"
)

// These variables are set at build time and describe the version and build of the application
var (
	version   = "dev"
	commit    = "dev"
	buildTime = time.Now().Format(logging.TimeLayout)
	builtBy   = "local"
	builtWith = runtime.Version()
)

// Persistent base command flags
var (
	logFileName       string
	logLevelInput     string
	disableConsoleLog bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tripline",
	Short: "Plan trips and see them on a timeline",
	Long: `Plan trips and see them on a timeline.

Tripline lays out a trip's flights, lodging, car rentals, reservations and
activities on a day-by-day visual timeline, splits who owes what, and serves
both as JSON for the web frontend or as rendered HTML.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		// A .env file is optional; real environments set variables directly.
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env file: %w", err)
		}

		loggingOpts := []logging.Option{
			logging.WithFileName(logFileName),
			logging.WithLevel(logLevelInput),
		}
		if disableConsoleLog {
			loggingOpts = append(loggingOpts, logging.DisableConsoleLog())
		}
		logger, err = logging.New(loggingOpts...)
		if err != nil {
			return fmt.Errorf("failed to setup logging: %w", err)
		}

		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Debug().
			Str("version", version).
			Str("commit", commit).
			Str("build_time", buildTime).
			Str("built_by", builtBy).
			Str("built_with", builtWith).
			Msg("tripline version info")
		logger.Debug().
			Str("log_file", logFileName).
			Str("log_level", logLevelInput).
			Bool("disable_console_log", disableConsoleLog).
			Msg("tripline flags")
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := cmd.Help()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to print help message")
		}
	},
}

// loadConfig reads the optional tripline.yaml config file and sets defaults
// for everything it may omit.
func loadConfig() error {
	viper.SetConfigName("tripline")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("tripline")
	viper.AutomaticEnv()

	viper.SetDefault("listen_addr", "localhost:8080")
	viper.SetDefault("output_dir", "trip_output")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	logger.Debug().Str("config_file", viper.ConfigFileUsed()).Msg("Loaded config file")
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logFileName, "log-file", "f", "tripline.log.json", "Log file name")
	rootCmd.PersistentFlags().StringVarP(&logLevelInput, "log-level", "l", "info", "Log level")
	rootCmd.PersistentFlags().
		BoolVarP(&disableConsoleLog, "silent", "s", false, "Disables console logs. Still logs to file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to execute command")
		os.Exit(1)
	}
}
