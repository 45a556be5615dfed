package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/pairpot/internal/config"
)

var (
	dataDir    string
	logLevel   string
	configFile string

	cfg *config.Config
)

// main registers the pairpot commands and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pairpot",
		Short:        "classical pair potential lab",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)

			if configFile == "" {
				cfg = config.DefaultConfig()
				return nil
			}
			loaded, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logrus.WithField("path", configFile).Debug("config loaded")
			cfg = loaded
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pairpot", "data directory for saved curves")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(
		newLJCmd(),
		newBondCmd(),
		newPresetsCmd(),
		newScenarioCmd(),
		newListCmd(),
		newShowCmd(),
	)
	return rootCmd
}
