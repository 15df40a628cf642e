package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/writecontrol/writecontrol/internal/config"
	"github.com/writecontrol/writecontrol/internal/logging"
)

// cfg holds the loaded configuration, populated in PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "writecontrol",
	Short: "Record editing sessions and analyze writing activity",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			// A malformed config file is an operator error worth
			// stopping for; anything else falls back to defaults.
			var parseErr *config.ParseError
			if errors.As(err, &parseErr) {
				return err
			}
			cfg = config.Defaults()
		}
		return nil
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the diagnostics sink from the loaded config.
func newLogger() *logging.Logger {
	if cfg.DebugLogFile != "" {
		return logging.NewFile(cfg.DebugLogFile, cfg.Debug)
	}
	return logging.New(os.Stderr, cfg.Debug)
}
