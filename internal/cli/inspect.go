// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/CaptainDasheng/random-exchange-atoms/format"
	"github.com/CaptainDasheng/random-exchange-atoms/lattice"
	"github.com/CaptainDasheng/random-exchange-atoms/record"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	Format string
	Record bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print composition and cell of a structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts, cmd.Flags())
			if err != nil {
				return err
			}
			return runInspect(cmd, newLogger(stderr, cfg).With("cmd", "inspect"), opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "input format, detected from the name when empty")
	cmd.Flags().BoolVar(&opts.Record, "record", false, "dump the initialized record as YAML")

	return cmd
}

func runInspect(cmd *cobra.Command, logger *slog.Logger, opts *InspectOptions, path string) error {
	f, err := resolveFormat(opts.Format, path)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	st, err := format.ReadFile(path, f)
	if err != nil {
		return err
	}
	logger.Debug("structure read", "path", path, "format", f.String(), "sites", st.SiteCount())

	out := cmd.OutOrStdout()
	if opts.Record {
		return record.Encode(out, record.FromStructure(st))
	}

	l := st.Lengths()
	alpha, beta, gamma := lattice.Angles(st.Lattice)
	fmt.Fprintf(out, "Formula: %s\n", st.Formula())
	fmt.Fprintf(out, "Sites:   %d\n", st.SiteCount())
	fmt.Fprintf(out, "Lengths: %.6f %.6f %.6f\n", l[0], l[1], l[2])
	fmt.Fprintf(out, "Angles:  %.4f %.4f %.4f\n", alpha, beta, gamma)
	fmt.Fprintf(out, "Volume:  %.6f\n", lattice.Volume(st.Lattice))
	return nil
}

// resolveFormat parses tag, or detects the format from path when tag is
// empty.
func resolveFormat(tag, path string) (format.Format, error) {
	if tag != "" {
		return format.ParseFormat(tag)
	}
	return format.DetectFromPath(path)
}
