// SPDX-License-Identifier: MIT
// Package: cif
//
// read.go — CIF → Structure.

package cif

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/CaptainDasheng/random-exchange-atoms/lattice"
	"github.com/CaptainDasheng/random-exchange-atoms/structure"
)

// occupancyTol is how far below 1 an occupancy may be and still count as full.
const occupancyTol = 1e-3

var (
	cellTags = [6]string{
		"_cell_length_a", "_cell_length_b", "_cell_length_c",
		"_cell_angle_alpha", "_cell_angle_beta", "_cell_angle_gamma",
	}
	symopTags = []string{
		"_symmetry_equiv_pos_as_xyz",
		"_space_group_symop_operation_xyz",
		"_space_group_symop.operation_xyz",
	}
)

// Read parses the first data block of a CIF stream.
func Read(r io.Reader) (*structure.Structure, error) {
	toks, err := tokenize(r)
	if err != nil {
		return nil, err
	}
	b, err := parseBlock(toks)
	if err != nil {
		return nil, err
	}

	lat, err := readCell(b)
	if err != nil {
		return nil, err
	}
	ops, err := readSymops(b)
	if err != nil {
		return nil, err
	}
	sites, err := readSites(b, ops)
	if err != nil {
		return nil, err
	}

	s, err := structure.New(lat, sites)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return s, nil
}

func readCell(b *block) (lattice.Matrix3, error) {
	var p [6]float64
	for i, tag := range cellTags {
		raw, ok := b.items[tag]
		if !ok {
			return lattice.Matrix3{}, fmt.Errorf("%s: %w", tag, ErrMissingCell)
		}
		v, err := parseNumber(raw)
		if err != nil {
			return lattice.Matrix3{}, fmt.Errorf("%s=%q: %w", tag, raw, ErrSyntax)
		}
		p[i] = v
	}
	m, err := lattice.FromParameters(p[0], p[1], p[2], p[3], p[4], p[5])
	if err != nil {
		return lattice.Matrix3{}, fmt.Errorf("Read: %w", err)
	}
	return m, nil
}

func readSymops(b *block) ([]symop, error) {
	l, col := b.findLoop(symopTags...)
	if l == nil {
		// A single operator may be given outside a loop.
		for _, tag := range symopTags {
			if raw, ok := b.items[tag]; ok {
				op, err := parseSymop(raw)
				if err != nil {
					return nil, err
				}
				return []symop{op}, nil
			}
		}
		return []symop{identity}, nil
	}
	ops := make([]symop, 0, len(l.rows))
	for _, row := range l.rows {
		op, err := parseSymop(row[col])
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func readSites(b *block, ops []symop) ([]structure.Site, error) {
	l, _ := b.findLoop("_atom_site_fract_x")
	if l == nil {
		return nil, ErrNoAtoms
	}
	cx := l.column("_atom_site_fract_x")
	cy := l.column("_atom_site_fract_y")
	cz := l.column("_atom_site_fract_z")
	if cy < 0 || cz < 0 {
		return nil, fmt.Errorf("atom_site loop lacks fract_y/fract_z: %w", ErrNoAtoms)
	}
	cSym := l.column("_atom_site_type_symbol", "_atom_site_label")
	if cSym < 0 {
		return nil, fmt.Errorf("atom_site loop lacks type_symbol/label: %w", ErrSyntax)
	}
	cOcc := l.column("_atom_site_occupancy")

	var sites []structure.Site
	for n, row := range l.rows {
		species := elementSymbol(row[cSym])
		if species == "" {
			return nil, fmt.Errorf("atom %d: species %q: %w", n+1, row[cSym], ErrSyntax)
		}
		if cOcc >= 0 && row[cOcc] != "?" && row[cOcc] != "." {
			occ, err := parseNumber(row[cOcc])
			if err != nil {
				return nil, fmt.Errorf("atom %d: occupancy %q: %w", n+1, row[cOcc], ErrSyntax)
			}
			if occ < 1-occupancyTol {
				return nil, fmt.Errorf("atom %d (%s): occupancy %g: %w", n+1, species, occ, ErrPartialOccupancy)
			}
		}

		var f lattice.Vec3
		for k, c := range [3]int{cx, cy, cz} {
			v, err := parseNumber(row[c])
			if err != nil {
				return nil, fmt.Errorf("atom %d: coordinate %q: %w", n+1, row[c], ErrSyntax)
			}
			f[k] = v
		}

		var images []lattice.Vec3
	ops:
		for _, op := range ops {
			img := op.apply(f)
			for _, seen := range images {
				if samePeriodic(seen, img) {
					continue ops
				}
			}
			images = append(images, img)
			sites = append(sites, structure.Site{Species: species, Frac: img})
		}
	}
	if len(sites) == 0 {
		return nil, ErrNoAtoms
	}
	return sites, nil
}

// parseNumber parses a CIF numeric value, dropping a trailing "(n)"
// standard uncertainty.
func parseNumber(s string) (float64, error) {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	return strconv.ParseFloat(s, 64)
}

// elementSymbol extracts "Al" from "Al3+", "Al1", "al" or "AL".
func elementSymbol(s string) string {
	if s == "" || !unicode.IsLetter(rune(s[0])) {
		return ""
	}
	sym := strings.ToUpper(s[:1])
	if len(s) > 1 && unicode.IsLetter(rune(s[1])) {
		sym += strings.ToLower(s[1:2])
	}
	return sym
}
