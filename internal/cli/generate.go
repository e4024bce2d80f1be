// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/CaptainDasheng/random-exchange-atoms/exchange"
	"github.com/CaptainDasheng/random-exchange-atoms/internal/config"
	"github.com/CaptainDasheng/random-exchange-atoms/internal/manifest"
	"github.com/CaptainDasheng/random-exchange-atoms/jitter"
	"github.com/CaptainDasheng/random-exchange-atoms/session"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Write perturbed variants of a structure",
		Long: `Read a structure, enlarge it to --min-sites, then write --count variants.

Every variant restarts from the enlarged base: it performs --swaps random
species exchanges, sorts the sites and, unless --jitter=false, jitters
the lattice vectors. Files are named <prefix><i><ext> in --output-dir.
A manifest (default <output-dir>/manifest.yaml, "-" to skip) records the
seed and every variant written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts, cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			return runGenerate(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", "input structure file")
	f.String("input-format", "", "input format (poscar|cif|yaml), detected from the name when empty")
	f.StringP("output-dir", "o", config.DefaultOutputDir, "directory for generated files")
	f.StringP("output-format", "f", config.DefaultFormat, "output format (poscar|cif|yaml)")
	f.String("prefix", "", `file name prefix (default "POSCAR" for poscar, "structure" otherwise)`)
	f.IntP("count", "n", config.DefaultCount, "number of variants")
	f.Int("swaps", exchange.DefaultSwaps, "species swaps per variant")
	f.Int("min-sites", 0, "enlarge the cell until it has at least this many sites")
	f.Int64("seed", 0, "random seed (default: clock)")
	f.String("manifest", "", `manifest path ("-" to skip)`)
	f.Bool("jitter", true, "jitter lattice vectors")
	f.Float64("jitter-probability", jitter.DefaultProbability, "per-component jitter threshold on the [1,100) draw")
	f.Float64("jitter-min", jitter.DefaultChangeMin, "minimum change in percent of the axis length")
	f.Float64("jitter-max", jitter.DefaultChangeMax, "maximum change in percent of the axis length")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Input == "" {
		return fmt.Errorf("generate: no input structure given")
	}
	inFmt, err := cfg.ResolveInputFormat()
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	outFmt, err := cfg.ResolveOutputFormat()
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = time.Now().UnixNano()
	}
	logger := newLogger(stderr, cfg).With("cmd", "generate")

	s, err := session.Open(cfg.Input, inFmt, session.WithSeed(seed), session.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o750); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	m := manifest.New(seed, manifest.Parameters{
		Input:        cfg.Input,
		InputFormat:  inFmt.String(),
		OutputFormat: outFmt.String(),
		Count:        cfg.Count,
		Swaps:        cfg.Swaps,
		MinSites:     cfg.MinSites,
		Jitter:       cfg.Jitter.Enabled,
		Probability:  cfg.Jitter.Probability,
		ChangeMin:    cfg.Jitter.ChangeMin,
		ChangeMax:    cfg.Jitter.ChangeMax,
	})
	prefix := cfg.ResolvePrefix(outFmt)

	enlarged, err := s.Enlarge(cfg.MinSites)
	if err != nil {
		return err
	}
	if enlarged {
		path := filepath.Join(cfg.OutputDir, prefix+"_base"+outFmt.Ext())
		if err := s.ExportBase(outFmt, path); err != nil {
			return err
		}
		st := s.Structure()
		base := manifest.NewEntry(0, path, st.Formula(), st.SiteCount(), st.Lengths())
		m.Base = &base
	}

	var jopts []jitter.Option
	if cfg.Jitter.Enabled {
		jopts = cfg.JitterOptions()
	}
	for i := 1; i <= cfg.Count; i++ {
		s.Initialize()
		if err := s.RunExchange(cfg.Swaps); err != nil {
			return err
		}
		if cfg.Jitter.Enabled {
			if err := s.ModifyCellSize(jopts...); err != nil {
				return err
			}
		}
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s%d%s", prefix, i, outFmt.Ext()))
		if err := s.Export(outFmt, path); err != nil {
			return err
		}
		rec := s.Record()
		m.Add(manifest.NewEntry(i, path, rec.Formula(), len(rec.Sites), jitter.AxisLengths(rec.Lattice.Matrix)))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d variant(s) of %s to %s (seed %d)\n", cfg.Count, m.Variants[0].Formula, cfg.OutputDir, seed)

	if cfg.Manifest == "-" {
		return nil
	}
	path := cfg.Manifest
	if path == "" {
		path = filepath.Join(cfg.OutputDir, "manifest.yaml")
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := m.WriteFile(path); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := verifyManifest(path, m); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Debug("manifest written", "path", path, "run_id", m.RunID.String())
	fmt.Fprintf(out, "Manifest: %s (run %s)\n", path, m.RunID)
	return nil
}

// verifyManifest reads path back and checks it describes the same run as m.
func verifyManifest(path string, m *manifest.Manifest) error {
	back, err := manifest.ReadFile(path)
	if err != nil {
		return err
	}
	if err := back.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if back.RunID != m.RunID || len(back.Variants) != len(m.Variants) {
		return fmt.Errorf("%s: run %s with %d variant(s) read back, want run %s with %d",
			path, back.RunID, len(back.Variants), m.RunID, len(m.Variants))
	}
	return nil
}
