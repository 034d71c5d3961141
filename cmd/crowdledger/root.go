package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"crowdledger/internal/config"
)

// newRootCommand creates the root command with the serve and migrate
// subcommands.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "crowdledger",
		Short:         "Campaign ledger with contribution tracking and reward credit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	return cmd
}

// loadConfig reads the environment and builds the process logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return cfg, nil, err
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}
