package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/podcast-api/pkg/config"
	"github.com/killallgit/podcast-api/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// appConfig is loaded before any command that needs it runs
var appConfig *config.Config

// NewRootCmd builds the command tree. Every call returns fresh commands and
// flags, so one execution never sees flag state left by another.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "podcast-api",
		Short: "Podcast API server",
		Long: `Podcast API - creators publish podcasts and episodes, listeners follow them

Features:
  • Creator channels, podcasts and episodes
  • Favorites, listen history and subscriptions
  • Playlists
  • Accent-insensitive search with per-user search history`,
		SilenceUsage:      true,
		PersistentPreRunE: prepare,
	}

	root.PersistentFlags().String("config", config.DefaultConfigPath, "path to the settings file")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newUsersCmd(),
		newTokenCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// prepare loads the configuration and sets up logging. Commands annotated
// with skipConfig run without either.
func prepare(cmd *cobra.Command, args []string) error {
	if cmd.Annotations["skipConfig"] == "true" {
		return nil
	}

	path, _ := cmd.Flags().GetString("config")
	if err := config.Load(path); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.Logging.Level
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		level = f.Value.String()
	}
	format := cfg.Logging.Format
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		format = "json"
	}
	logging.Configure(logrus.StandardLogger(), level, format, cmd.ErrOrStderr())

	logrus.WithFields(logrus.Fields{
		"config":      path,
		"environment": cfg.Environment,
	}).Debug("configuration loaded")
	return nil
}
