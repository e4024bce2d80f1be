// SPDX-License-Identifier: MIT

// Package cli implements the rea command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/CaptainDasheng/random-exchange-atoms/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Verbose    bool
	LogFormat  string // "text" | "json"
}

// ValidLogFormats defines the allowed log handler formats.
var ValidLogFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rea CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rea",
		Short: "rea - random exchange of atoms",
		Long: `Generate perturbed variants of a crystal structure.

Each variant starts from the same (optionally enlarged) structure, swaps
species between random site pairs, sorts the sites by species and may
jitter the lattice vectors before being written out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidLogFormat(opts.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be one of %v", opts.LogFormat, ValidLogFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./rea.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute runs the root command against os.Args and returns the process
// exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig resolves configuration for cmd: file, environment and the
// flags the user actually set.
func loadConfig(opts *RootOptions, flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigFile, flags)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the slog handler selected by the config.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

func isValidLogFormat(format string) bool {
	for _, f := range ValidLogFormats {
		if f == format {
			return true
		}
	}
	return false
}

// stderr is swapped in tests.
var stderr io.Writer = os.Stderr
