// SPDX-License-Identifier: MIT

// Package manifest records what a generate run produced: the seed and
// parameters needed to reproduce it and one entry per written variant.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNoVariants is returned by Validate for a manifest without variants.
var ErrNoVariants = errors.New("manifest: no variants")

// Parameters captures the knobs a run was executed with.
type Parameters struct {
	Input        string  `yaml:"input"`
	InputFormat  string  `yaml:"input_format"`
	OutputFormat string  `yaml:"output_format"`
	Count        int     `yaml:"count"`
	Swaps        int     `yaml:"swaps"`
	MinSites     int     `yaml:"min_sites"`
	Jitter       bool    `yaml:"jitter"`
	Probability  float64 `yaml:"jitter_probability,omitempty"`
	ChangeMin    float64 `yaml:"jitter_change_min,omitempty"`
	ChangeMax    float64 `yaml:"jitter_change_max,omitempty"`
}

// Entry describes one written structure.
type Entry struct {
	ID      uuid.UUID  `yaml:"id"`
	Index   int        `yaml:"index"`
	Path    string     `yaml:"path"`
	Formula string     `yaml:"formula"`
	Sites   int        `yaml:"sites"`
	Lengths [3]float64 `yaml:"lengths,flow"`
}

// Manifest is the run summary written next to the variants.
type Manifest struct {
	RunID      uuid.UUID  `yaml:"run_id"`
	CreatedAt  time.Time  `yaml:"created_at"`
	Seed       int64      `yaml:"seed"`
	Parameters Parameters `yaml:"parameters"`
	Base       *Entry     `yaml:"base,omitempty"`
	Variants   []Entry    `yaml:"variants"`
}

// New starts a manifest with a fresh run id.
func New(seed int64, params Parameters) *Manifest {
	return &Manifest{
		RunID:      uuid.New(),
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		Seed:       seed,
		Parameters: params,
	}
}

// NewEntry returns an entry with a fresh id.
func NewEntry(index int, path, formula string, sites int, lengths [3]float64) Entry {
	return Entry{
		ID:      uuid.New(),
		Index:   index,
		Path:    path,
		Formula: formula,
		Sites:   sites,
		Lengths: lengths,
	}
}

// Add appends a variant entry.
func (m *Manifest) Add(e Entry) {
	m.Variants = append(m.Variants, e)
}

// Validate checks that the manifest names a run and at least one variant.
func (m *Manifest) Validate() error {
	if m.RunID == uuid.Nil {
		return errors.New("manifest: missing run_id")
	}
	if len(m.Variants) == 0 {
		return ErrNoVariants
	}
	return nil
}

// Encode writes m as YAML.
func (m *Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	return enc.Close()
}

// Decode reads a manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	return &m, nil
}

// WriteFile writes m to path, creating parent directories.
func (m *Manifest) WriteFile(path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // path comes from CLI configuration
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("manifest: %w", cerr)
		}
	}()
	return m.Encode(f)
}

// ReadFile loads a manifest from path.
func ReadFile(path string) (*Manifest, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from CLI configuration
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
