package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/selection-lens/internal/config"
	"github.com/mj1618/selection-lens/internal/output"
	"github.com/mj1618/selection-lens/internal/platform"
	"github.com/mj1618/selection-lens/internal/selection"
	"github.com/mj1618/selection-lens/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "selection-lens",
	Short: "Watch the text selected in the focused application",
	Long: `A CLI tool that reads the user's active text selection and its on-screen
bounds from the macOS accessibility tree.

Settings are read from SELECTION_LENS_* environment variables and an optional
.env file (SELECTION_LENS_ENV or ./.env). Flags override them.`,
	SilenceUsage: true,
}

// cfg is loaded once by the root command before any subcommand runs.
var cfg = config.Default()

// logger writes to stderr so it never mixes with command output.
var logger = slog.Default()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("prompt", false, "Ask macOS to show the accessibility permission prompt if access is missing")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = *loaded

		if s, _ := rootCmd.PersistentFlags().GetString("log-level"); s != "" {
			level, err := config.ParseLevel(s)
			if err != nil {
				return err
			}
			cfg.LogLevel = level
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)
		if cfg.EnvFile != "" {
			logger.Debug("loaded env file", "path", cfg.EnvFile)
		}

		if rootCmd.PersistentFlags().Changed("prompt") {
			cfg.Prompt, _ = rootCmd.PersistentFlags().GetBool("prompt")
		}

		format, err := resolveFormat(output.FormatYAML)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

// resolveFormat picks the output format: --format, then SELECTION_LENS_FORMAT,
// then def.
func resolveFormat(def output.Format) (output.Format, error) {
	format, _ := rootCmd.PersistentFlags().GetString("format")
	if format == "" {
		format = cfg.Format
	}
	if format == "" {
		return def, nil
	}
	return output.ParseFormat(format)
}

// newController acquires the platform backend and builds a controller.
// The caller must Close it.
func newController() (*selection.Controller, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return selection.New(provider.Native,
		selection.WithLogger(logger),
		selection.WithPrompt(cfg.Prompt),
	)
}
