// SPDX-License-Identifier: MIT

// Package config loads CLI configuration for rea.
//
// Precedence (highest to lowest): explicitly set flags > REA_ environment
// variables > config file (rea.yaml) > defaults.
//
// Nested keys use "." internally; environment variables spell the nesting
// with a double underscore (REA_JITTER__PROBABILITY → jitter.probability)
// and flags with a "jitter-" prefix (--jitter-probability).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/CaptainDasheng/random-exchange-atoms/exchange"
	"github.com/CaptainDasheng/random-exchange-atoms/format"
	"github.com/CaptainDasheng/random-exchange-atoms/jitter"
)

// Defaults.
const (
	DefaultConfigFile = "rea.yaml"
	DefaultOutputDir  = "."
	DefaultFormat     = "poscar"
	DefaultCount      = 1
	DefaultLogFormat  = "text"
	EnvPrefix         = "REA_"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// JitterConfig controls lattice jitter per variant.
type JitterConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Probability float64 `koanf:"probability"`
	ChangeMin   float64 `koanf:"change_min"`
	ChangeMax   float64 `koanf:"change_max"`
}

// Config holds all CLI options.
type Config struct {
	Input        string       `koanf:"input"`
	InputFormat  string       `koanf:"input_format"`
	OutputDir    string       `koanf:"output_dir"`
	OutputFormat string       `koanf:"output_format"`
	Prefix       string       `koanf:"prefix"`
	Count        int          `koanf:"count"`
	Swaps        int          `koanf:"swaps"`
	MinSites     int          `koanf:"min_sites"`
	Seed         int64        `koanf:"seed"`
	Manifest     string       `koanf:"manifest"`
	Jitter       JitterConfig `koanf:"jitter"`
	LogFormat    string       `koanf:"log_format"`
	Verbose      bool         `koanf:"verbose"`

	// SeedSet is true when a seed came from any source; otherwise the
	// run is seeded from the clock.
	SeedSet bool `koanf:"-"`
	// FileUsed is the config file that was loaded, if any.
	FileUsed string `koanf:"-"`
}

// defaults is the lowest-priority layer.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"output_dir":         DefaultOutputDir,
		"output_format":      DefaultFormat,
		"count":              DefaultCount,
		"swaps":              exchange.DefaultSwaps,
		"min_sites":          0,
		"jitter.enabled":     true,
		"jitter.probability": jitter.DefaultProbability,
		"jitter.change_min":  jitter.DefaultChangeMin,
		"jitter.change_max":  jitter.DefaultChangeMax,
		"log_format":         DefaultLogFormat,
		"verbose":            false,
	}
}

// flagKeys maps flag names whose config key is not the snake_case form.
var flagKeys = map[string]string{
	"jitter":             "jitter.enabled",
	"jitter-probability": "jitter.probability",
	"jitter-min":         "jitter.change_min",
	"jitter-max":         "jitter.change_max",
}

// findConfigFile returns explicit, or ./rea.yaml when present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// Load builds a Config from defaults, cfgFile, environment and flags.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: REA_JITTER__CHANGE_MIN -> jitter.change_min
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.SeedSet = k.Exists("seed")
	cfg.FileUsed = used
	return &cfg, nil
}

// Validate checks ranges and resolves format tags.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count=%d must be >= 1: %w", c.Count, ErrInvalidConfig)
	}
	if c.Swaps < 0 {
		return fmt.Errorf("swaps=%d must be >= 0: %w", c.Swaps, ErrInvalidConfig)
	}
	if c.MinSites < 0 {
		return fmt.Errorf("min_sites=%d must be >= 0: %w", c.MinSites, ErrInvalidConfig)
	}
	j := c.Jitter
	for name, v := range map[string]float64{
		"jitter.probability": j.Probability, "jitter.change_min": j.ChangeMin, "jitter.change_max": j.ChangeMax,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not finite: %w", name, ErrInvalidConfig)
		}
	}
	if j.ChangeMin > j.ChangeMax {
		return fmt.Errorf("jitter.change_min=%g > jitter.change_max=%g: %w", j.ChangeMin, j.ChangeMax, ErrInvalidConfig)
	}
	if _, err := format.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %w", err)
	}
	if c.InputFormat != "" {
		if _, err := format.ParseFormat(c.InputFormat); err != nil {
			return fmt.Errorf("input_format: %w", err)
		}
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format=%q must be text or json: %w", c.LogFormat, ErrInvalidConfig)
	}
	return nil
}

// ResolveInputFormat returns the explicit input format or one detected
// from the input path.
func (c *Config) ResolveInputFormat() (format.Format, error) {
	if c.InputFormat != "" {
		return format.ParseFormat(c.InputFormat)
	}
	return format.DetectFromPath(c.Input)
}

// ResolveOutputFormat parses OutputFormat.
func (c *Config) ResolveOutputFormat() (format.Format, error) {
	return format.ParseFormat(c.OutputFormat)
}

// ResolvePrefix returns the file name prefix for variants: the configured
// one, or "POSCAR" for POSCAR output and "structure" otherwise.
func (c *Config) ResolvePrefix(f format.Format) string {
	if c.Prefix != "" {
		return c.Prefix
	}
	if f == format.Poscar {
		return "POSCAR"
	}
	return "structure"
}

// JitterOptions converts the jitter section into jitter options.
// Call Validate first; invalid ranges panic in the option constructors.
func (c *Config) JitterOptions() []jitter.Option {
	return []jitter.Option{
		jitter.WithProbability(c.Jitter.Probability),
		jitter.WithChangeRange(c.Jitter.ChangeMin, c.Jitter.ChangeMax),
	}
}
