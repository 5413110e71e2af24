package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// loadSettings reads the config file named by --config, or the auto-detected one,
// and applies the command-line overrides. Without any config file the defaults apply.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath := configPath
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
		}
		cfgPath = found
	}

	settings := entities.NewDefaultSettings()
	if cfgPath != "" {
		logger.Debugf("Using config file: %s", cfgPath)
		loaded, err := entities.NewSettings(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	applyOverrides(cmd, settings)
	return settings, nil
}

func applyOverrides(cmd *cobra.Command, settings *entities.Settings) {
	flags := cmd.Flags()
	if flags.Changed("concurrency") {
		settings.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("preview-limit") {
		settings.PreviewLimit, _ = flags.GetInt("preview-limit")
	}
	if flags.Changed("offline") {
		settings.Offline, _ = flags.GetBool("offline")
	}
	if noRemediation, _ := flags.GetBool("no-remediation"); noRemediation {
		settings.DisableRemediation()
	}
}

// AddGlobalFlags registers the flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().Int("concurrency", 0,
		"Number of repositories evaluated in parallel")
	cmd.PersistentFlags().Int("preview-limit", 0,
		"Number of files listed per section before '... N more'")
	cmd.PersistentFlags().Bool("offline", false,
		"Do not contact remotes, compare against cached tracking references")
	cmd.PersistentFlags().Bool("no-remediation", false,
		"Never offer the remediation tool")
	cmd.PersistentFlags().Uint64("seed", 0,
		"Seed for sampling truncated file lists (default: random)")
}
