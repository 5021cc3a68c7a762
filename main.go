// package main is the entry point for the pr-showcase tool
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alan/pr-showcase/cmd/add"
	annotatecmd "github.com/alan/pr-showcase/cmd/annotate"
	"github.com/alan/pr-showcase/cmd/generate"
	"github.com/alan/pr-showcase/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "pr-showcase",
		Short: "A CLI tool for rendering a README of your GitHub pull requests",
		Long: `pr-showcase fetches pull request metadata from GitHub and renders a
contributions document, using a YAML (or TOML) configuration file for the PR list,
manual overrides and repository filters.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(os.Stderr, logLevel, logFormat)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "contributions.yaml", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")

	rootCmd.AddCommand(generate.NewGenerateCmd(&configFile, config.LoadConfig))
	rootCmd.AddCommand(annotatecmd.NewAnnotateCmd(&configFile, config.LoadConfig))
	rootCmd.AddCommand(add.NewAddCmd(&configFile, config.LoadConfig, config.SaveConfig))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger. Unknown levels or formats are an error.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info", "":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", level)
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}
