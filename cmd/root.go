package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/winzorder/internal/config"
	"github.com/mj1618/winzorder/internal/output"
	"github.com/mj1618/winzorder/internal/platform"
	"github.com/mj1618/winzorder/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "winzorder",
	Short: "Query top-level windows and their z-order",
	Long: `Enumerate top-level desktop windows in stacking order, look windows up by
their stable win32:<hex> ID, and find the windows stacked above a window.`,
}

// settings is the effective configuration for the running command: defaults,
// then the config file, then explicitly set flags.
var settings = config.DefaultConfig()

// logger is built from the effective log level before any command runs.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newProvider is replaced in tests.
var newProvider = platform.NewProvider

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Bool("no-title", false, "Skip window title lookups")
	rootCmd.PersistentFlags().Bool("no-owner-pid", false, "Skip owning process ID lookups")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/winzorder/config.yaml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applyFlags(cfg, cmd); err != nil {
			return err
		}
		settings = cfg

		format, err := output.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput = cfg.Pretty

		level, err := config.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return nil
	}
}

// loadConfig reads --config, or the default location when unset. An
// explicitly named file must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Load()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return config.LoadFromPath(path)
}

// applyFlags overlays the persistent flags the user actually set.
func applyFlags(cfg *config.Config, cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("pretty") {
		cfg.Pretty, _ = flags.GetBool("pretty")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if noTitle, _ := flags.GetBool("no-title"); noTitle {
		cfg.Query.IncludeTitle = false
	}
	if noPID, _ := flags.GetBool("no-owner-pid"); noPID {
		cfg.Query.IncludeOwnerPID = false
	}
	return cfg.Validate()
}

// queryOptions returns the effective per-query options.
func queryOptions() platform.QueryOptions {
	return platform.QueryOptions{
		IncludeTitle:    platform.Bool(settings.Query.IncludeTitle),
		IncludeOwnerPID: platform.Bool(settings.Query.IncludeOwnerPID),
	}
}

// windowSource builds the platform provider and returns its window backend.
func windowSource() (platform.WindowSource, error) {
	provider, err := newProvider(logger)
	if err != nil {
		return nil, err
	}
	return provider.Windows, nil
}
