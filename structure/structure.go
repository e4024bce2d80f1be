// SPDX-License-Identifier: MIT
// Package: structure
//
// structure.go — Structure, Site and the collaborator surface used by the
// engine (site count, axis lengths, replication, flat export).

package structure

import (
	"fmt"

	"github.com/CaptainDasheng/random-exchange-atoms/lattice"
	"github.com/CaptainDasheng/random-exchange-atoms/record"
)

// Site is one atomic site: a species label at a fractional position.
type Site struct {
	Species string
	Frac    lattice.Vec3
}

// Structure is a periodic arrangement: lattice rows plus ordered sites.
type Structure struct {
	Lattice lattice.Matrix3
	Sites   []Site
}

// New validates and returns a Structure. The lattice must be non-singular
// and every site must carry a species. sites is copied.
func New(lat lattice.Matrix3, sites []Site) (*Structure, error) {
	if _, err := lattice.Inverse(lat); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoSites)
	}
	for i, s := range sites {
		if s.Species == "" {
			return nil, fmt.Errorf("New: site %d: %w", i, ErrEmptySpecies)
		}
	}
	return &Structure{Lattice: lat, Sites: append([]Site(nil), sites...)}, nil
}

// SiteCount returns the number of sites.
func (s *Structure) SiteCount() int {
	return len(s.Sites)
}

// Lengths returns the current axis lengths (a, b, c).
func (s *Structure) Lengths() [3]float64 {
	return lattice.Lengths(s.Lattice)
}

// Replicate turns s into a supercell scaled by scale[i] along axis i.
// Site count is multiplied by scale[0]*scale[1]*scale[2]; every original
// site is repeated at (f + k) / scale for each integer offset k.
// Returns ErrBadScale (and leaves s untouched) if any factor is < 1.
// Complexity: O(n * sa * sb * sc).
func (s *Structure) Replicate(scale [3]int) error {
	for i, k := range scale {
		if k < 1 {
			return fmt.Errorf("Replicate: axis %d factor %d: %w", i, k, ErrBadScale)
		}
	}

	sites := make([]Site, 0, len(s.Sites)*scale[0]*scale[1]*scale[2])
	for _, site := range s.Sites {
		for i := 0; i < scale[0]; i++ {
			for j := 0; j < scale[1]; j++ {
				for k := 0; k < scale[2]; k++ {
					sites = append(sites, Site{
						Species: site.Species,
						Frac: lattice.Vec3{
							(site.Frac[0] + float64(i)) / float64(scale[0]),
							(site.Frac[1] + float64(j)) / float64(scale[1]),
							(site.Frac[2] + float64(k)) / float64(scale[2]),
						},
					})
				}
			}
		}
	}

	for i := range s.Lattice {
		for j := range s.Lattice[i] {
			s.Lattice[i][j] *= float64(scale[i])
		}
	}
	s.Sites = sites
	return nil
}

// Record returns a full flat export with every derived field populated.
// The caller owns the result.
func (s *Structure) Record() *record.Record {
	l := lattice.Lengths(s.Lattice)
	alpha, beta, gamma := lattice.Angles(s.Lattice)
	vol := lattice.Volume(s.Lattice)

	rec := &record.Record{
		Lattice: record.Lattice{
			Matrix: s.Lattice.Rows(),
			A:      &l[0],
			B:      &l[1],
			C:      &l[2],
			Alpha:  &alpha,
			Beta:   &beta,
			Gamma:  &gamma,
			Volume: &vol,
		},
		Sites: make([]record.Site, len(s.Sites)),
	}
	for i, site := range s.Sites {
		x := lattice.FracToCart(s.Lattice, site.Frac)
		rec.Sites[i] = record.Site{
			Species:  site.Species,
			Frac:     []float64{site.Frac[0], site.Frac[1], site.Frac[2]},
			Position: []float64{x[0], x[1], x[2]},
		}
	}
	return rec
}

// FromRecord reconstructs a typed structure from rec. Only the matrix,
// species and fractional placements are read; derived fields and
// positions in rec are ignored.
func FromRecord(rec *record.Record) (*Structure, error) {
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("FromRecord: %w", err)
	}
	lat, err := lattice.FromRows(rec.Lattice.Matrix)
	if err != nil {
		return nil, fmt.Errorf("FromRecord: %w", err)
	}
	sites := make([]Site, len(rec.Sites))
	for i, rs := range rec.Sites {
		sites[i] = Site{Species: rs.Species, Frac: lattice.Vec3{rs.Frac[0], rs.Frac[1], rs.Frac[2]}}
	}
	return New(lat, sites)
}

// Clone returns a deep copy of s.
func (s *Structure) Clone() *Structure {
	return &Structure{Lattice: s.Lattice, Sites: append([]Site(nil), s.Sites...)}
}

// Cartesian returns the Cartesian position of site i.
func (s *Structure) Cartesian(i int) lattice.Vec3 {
	return lattice.FracToCart(s.Lattice, s.Sites[i].Frac)
}

// Composition counts sites per species.
func (s *Structure) Composition() map[string]int {
	out := make(map[string]int)
	for _, site := range s.Sites {
		out[site.Species]++
	}
	return out
}

// Formula renders the composition, e.g. "Al12O18".
func (s *Structure) Formula() string {
	return record.FormatComposition(s.Composition())
}
