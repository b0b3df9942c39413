package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/podcastr/pkg/config"
	"github.com/killallgit/podcastr/pkg/logger"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcastr",
	Short: "Podcastr episode pages",
	Long: `Podcastr - episode pages for the Podcastr podcast

Serves one HTML page per episode, built from the episodes API and kept
fresh for a day at a time, or exports the latest pages to a directory.

Features:
  • Episode pages with Open Graph metadata
  • Incremental regeneration with a 24h freshness window
  • Static export of the latest episodes
  • JSON page props and path listing under /api/v1`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultConfigFile, "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig reads the configuration and sets up logging for a command.
// Explicit --log-level/--json-logs flags win over the logging section.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		config.SetFile(path)
	}

	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	level, format := cfg.Logging.Level, cfg.Logging.Format
	if flags.Changed("log-level") {
		level, _ = flags.GetString("log-level")
	}
	if flags.Changed("json-logs") {
		if jsonLogs, _ := flags.GetBool("json-logs"); jsonLogs {
			format = logger.FormatJSON
		} else {
			format = logger.FormatText
		}
	}

	if err := logger.Setup(level, format); err != nil {
		return nil, err
	}

	return cfg, nil
}
