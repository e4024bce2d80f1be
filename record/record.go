// SPDX-License-Identifier: MIT
// Package: record
//
// record.go — Record, Lattice and Site types plus construction and checks.

package record

import (
	"fmt"
	"sort"

	"github.com/CaptainDasheng/random-exchange-atoms/matrix"
)

// Lattice is the lattice part of a record. Only Matrix survives
// initialization; the scalar fields are nil whenever they may be stale.
type Lattice struct {
	Matrix [][]float64 `yaml:"matrix" json:"matrix"`
	A      *float64    `yaml:"a" json:"a"`
	B      *float64    `yaml:"b" json:"b"`
	C      *float64    `yaml:"c" json:"c"`
	Alpha  *float64    `yaml:"alpha" json:"alpha"`
	Beta   *float64    `yaml:"beta" json:"beta"`
	Gamma  *float64    `yaml:"gamma" json:"gamma"`
	Volume *float64    `yaml:"volume" json:"volume"`
}

// Site is one single-occupancy atomic site.
//
// Frac is the fractional (lattice-relative) placement and is carried
// through perturbation unchanged. Position is the Cartesian position and
// is nil after initialization.
type Site struct {
	Species  string    `yaml:"species" json:"species"`
	Frac     []float64 `yaml:"abc" json:"abc"`
	Position []float64 `yaml:"xyz" json:"xyz"`
}

// Record is a flat snapshot of lattice vectors and site species.
type Record struct {
	Lattice Lattice `yaml:"lattice" json:"lattice"`
	Sites   []Site  `yaml:"sites" json:"sites"`
}

// Exporter is implemented by typed structures able to produce a full flat
// record of themselves.
type Exporter interface {
	Record() *Record
}

// FromStructure exports src and invalidates every derived field, leaving
// only the lattice matrix, species and fractional placements.
// The source structure is not touched.
func FromStructure(src Exporter) *Record {
	rec := src.Record()
	rec.Invalidate()
	return rec
}

// Invalidate clears the derived lattice scalars and every site position.
func (r *Record) Invalidate() {
	r.Lattice.A = nil
	r.Lattice.B = nil
	r.Lattice.C = nil
	r.Lattice.Alpha = nil
	r.Lattice.Beta = nil
	r.Lattice.Gamma = nil
	r.Lattice.Volume = nil
	for i := range r.Sites {
		r.Sites[i].Position = nil
	}
}

// Validate reports whether r has the shape every engine component needs:
// a finite 3×3 matrix and at least one site with a species and a
// 3-component fractional placement.
func (r *Record) Validate() error {
	if r == nil {
		return ErrNilRecord
	}
	if err := r.ValidateMatrix(); err != nil {
		return err
	}
	if len(r.Sites) == 0 {
		return fmt.Errorf("Validate: no sites: %w", ErrMalformedRecord)
	}
	for i, s := range r.Sites {
		if s.Species == "" {
			return fmt.Errorf("Validate: site %d has no species: %w", i, ErrMalformedRecord)
		}
		if len(s.Frac) != 3 {
			return fmt.Errorf("Validate: site %d has %d fractional components: %w",
				i, len(s.Frac), ErrMalformedRecord)
		}
	}
	return nil
}

// ValidateMatrix checks only the lattice matrix: 3×3 and finite.
func (r *Record) ValidateMatrix() error {
	if r == nil {
		return ErrNilRecord
	}
	if err := matrix.ValidateRows(r.Lattice.Matrix, 3, 3); err != nil {
		return fmt.Errorf("ValidateMatrix: %w: %w", ErrMalformedRecord, err)
	}
	return nil
}

// Clone returns a deep copy of r. Use it to snapshot a record before a
// multi-step perturbation that must be undone as a unit.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{
		Lattice: Lattice{
			Matrix: make([][]float64, len(r.Lattice.Matrix)),
			A:      clonePtr(r.Lattice.A),
			B:      clonePtr(r.Lattice.B),
			C:      clonePtr(r.Lattice.C),
			Alpha:  clonePtr(r.Lattice.Alpha),
			Beta:   clonePtr(r.Lattice.Beta),
			Gamma:  clonePtr(r.Lattice.Gamma),
			Volume: clonePtr(r.Lattice.Volume),
		},
		Sites: make([]Site, len(r.Sites)),
	}
	for i, row := range r.Lattice.Matrix {
		out.Lattice.Matrix[i] = append([]float64(nil), row...)
	}
	for i, s := range r.Sites {
		out.Sites[i] = Site{
			Species:  s.Species,
			Frac:     append([]float64(nil), s.Frac...),
			Position: append([]float64(nil), s.Position...),
		}
	}
	return out
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// SpeciesSequence returns the species labels in site order.
func (r *Record) SpeciesSequence() []string {
	out := make([]string, len(r.Sites))
	for i, s := range r.Sites {
		out[i] = s.Species
	}
	return out
}

// Composition counts sites per species.
func (r *Record) Composition() map[string]int {
	out := make(map[string]int)
	for _, s := range r.Sites {
		out[s.Species]++
	}
	return out
}

// Formula renders the composition as "Al4O6" with species in ascending
// order. Empty records render as "".
func (r *Record) Formula() string {
	return FormatComposition(r.Composition())
}

// FormatComposition renders counts as a compact formula, species sorted
// ascending and counts of 1 omitted.
func FormatComposition(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out string
	for _, k := range keys {
		if counts[k] == 1 {
			out += k
			continue
		}
		out += fmt.Sprintf("%s%d", k, counts[k])
	}
	return out
}
