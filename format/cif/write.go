// SPDX-License-Identifier: MIT
// Package: cif
//
// write.go — Structure → P1 CIF.

package cif

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/CaptainDasheng/random-exchange-atoms/lattice"
	"github.com/CaptainDasheng/random-exchange-atoms/structure"
)

// Write serializes s as a P1 CIF data block named after its formula.
func Write(w io.Writer, s *structure.Structure) error {
	bw := bufio.NewWriter(w)

	l := lattice.Lengths(s.Lattice)
	alpha, beta, gamma := lattice.Angles(s.Lattice)

	fmt.Fprintf(bw, "data_%s\n", s.Formula())
	fmt.Fprintf(bw, "_symmetry_space_group_name_H-M   'P 1'\n")
	fmt.Fprintf(bw, "_cell_length_a   %.6f\n", l[0])
	fmt.Fprintf(bw, "_cell_length_b   %.6f\n", l[1])
	fmt.Fprintf(bw, "_cell_length_c   %.6f\n", l[2])
	fmt.Fprintf(bw, "_cell_angle_alpha   %.6f\n", alpha)
	fmt.Fprintf(bw, "_cell_angle_beta   %.6f\n", beta)
	fmt.Fprintf(bw, "_cell_angle_gamma   %.6f\n", gamma)
	fmt.Fprintf(bw, "_symmetry_Int_Tables_number   1\n")
	fmt.Fprintf(bw, "_chemical_formula_sum   '%s'\n", formulaSum(s))
	fmt.Fprintf(bw, "_cell_volume   %.6f\n", lattice.Volume(s.Lattice))
	fmt.Fprintf(bw, "loop_\n _symmetry_equiv_pos_site_id\n _symmetry_equiv_pos_as_xyz\n  1  'x, y, z'\n")
	fmt.Fprintf(bw, "loop_\n _atom_site_type_symbol\n _atom_site_label\n _atom_site_fract_x\n _atom_site_fract_y\n _atom_site_fract_z\n _atom_site_occupancy\n")

	perSpecies := make(map[string]int)
	for _, site := range s.Sites {
		label := fmt.Sprintf("%s%d", site.Species, perSpecies[site.Species])
		perSpecies[site.Species]++
		fmt.Fprintf(bw, "  %s  %s  %.12f  %.12f  %.12f  1\n",
			site.Species, label, site.Frac[0], site.Frac[1], site.Frac[2])
	}
	return bw.Flush()
}

// formulaSum renders "Al4 O6": species ascending, counts always present.
func formulaSum(s *structure.Structure) string {
	counts := s.Composition()
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
