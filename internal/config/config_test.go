// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaptainDasheng/random-exchange-atoms/format"
	"github.com/CaptainDasheng/random-exchange-atoms/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("output-dir", ".", "")
	fs.Int("count", 1, "")
	fs.Int("swaps", 100, "")
	fs.Int64("seed", 0, "")
	fs.Bool("jitter", true, "")
	fs.Float64("jitter-probability", 10, "")
	fs.Float64("jitter-min", -1, "")
	fs.Float64("jitter-max", 1, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "poscar", cfg.OutputFormat)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, 100, cfg.Swaps)
	assert.True(t, cfg.Jitter.Enabled)
	assert.Equal(t, 10.0, cfg.Jitter.Probability)
	assert.Equal(t, -1.0, cfg.Jitter.ChangeMin)
	assert.Equal(t, 1.0, cfg.Jitter.ChangeMax)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.SeedSet)
	assert.Empty(t, cfg.FileUsed)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "rea.yaml", `
count: 5
swaps: 20
seed: 7
jitter:
  probability: 50
  change_min: -3
`)
	t.Setenv("REA_SWAPS", "30")
	t.Setenv("REA_JITTER__CHANGE_MAX", "4")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--count", "9", "--jitter-min", "-2"}))

	cfg, err := config.Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "rea.yaml", cfg.FileUsed)
	assert.Equal(t, 9, cfg.Count, "flag beats file")
	assert.Equal(t, 30, cfg.Swaps, "env beats file")
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, 50.0, cfg.Jitter.Probability)
	assert.Equal(t, -2.0, cfg.Jitter.ChangeMin, "flag beats file")
	assert.Equal(t, 4.0, cfg.Jitter.ChangeMax)
	assert.True(t, cfg.Jitter.Enabled, "default survives")
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "swaps: 12\n")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := config.Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Swaps)
	assert.False(t, cfg.SeedSet)
}

func TestLoad_JitterFlagDisables(t *testing.T) {
	t.Chdir(t.TempDir())
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--jitter=false", "--seed", "3"}))

	cfg, err := config.Load("", fs)
	require.NoError(t, err)
	assert.False(t, cfg.Jitter.Enabled)
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, int64(3), cfg.Seed)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			OutputFormat: "poscar",
			Count:        1,
			Swaps:        100,
			Jitter:       config.JitterConfig{Probability: 10, ChangeMin: -1, ChangeMax: 1},
			LogFormat:    "text",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantErr   bool
		errSubstr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "zero count", mutate: func(c *config.Config) { c.Count = 0 }, wantErr: true, errSubstr: "count"},
		{name: "negative swaps", mutate: func(c *config.Config) { c.Swaps = -1 }, wantErr: true, errSubstr: "swaps"},
		{name: "zero swaps allowed", mutate: func(c *config.Config) { c.Swaps = 0 }},
		{name: "negative min sites", mutate: func(c *config.Config) { c.MinSites = -5 }, wantErr: true, errSubstr: "min_sites"},
		{name: "inverted range", mutate: func(c *config.Config) { c.Jitter.ChangeMin = 2 }, wantErr: true, errSubstr: "change_min"},
		{name: "bad output format", mutate: func(c *config.Config) { c.OutputFormat = "xyz" }, wantErr: true, errSubstr: "output_format"},
		{name: "bad input format", mutate: func(c *config.Config) { c.InputFormat = "pdb" }, wantErr: true, errSubstr: "input_format"},
		{name: "bad log format", mutate: func(c *config.Config) { c.LogFormat = "xml" }, wantErr: true, errSubstr: "log_format"},
		{name: "cif output", mutate: func(c *config.Config) { c.OutputFormat = "cif" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := config.Config{Input: "work/NaCl.cif", OutputFormat: "yaml"}

	in, err := cfg.ResolveInputFormat()
	require.NoError(t, err)
	assert.Equal(t, format.Cif, in)

	cfg.InputFormat = "poscar"
	in, err = cfg.ResolveInputFormat()
	require.NoError(t, err)
	assert.Equal(t, format.Poscar, in)

	out, err := cfg.ResolveOutputFormat()
	require.NoError(t, err)
	assert.Equal(t, format.Record, out)

	assert.Equal(t, "structure", cfg.ResolvePrefix(out))
	assert.Equal(t, "POSCAR", cfg.ResolvePrefix(format.Poscar))
	cfg.Prefix = "run"
	assert.Equal(t, "run", cfg.ResolvePrefix(format.Poscar))

	cfg.Jitter = config.JitterConfig{Probability: 5, ChangeMin: -1, ChangeMax: 1}
	assert.Len(t, cfg.JitterOptions(), 2)
}
