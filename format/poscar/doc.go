// SPDX-License-Identifier: MIT

// Package poscar reads and writes the VASP POSCAR format: a lattice plus
// site coordinates, grouped by species.
//
// Layout accepted by Read:
//
//	Al2 O3                 ← comment (species names if line 6 is absent)
//	1.0                    ← scale; negative means target volume
//	  4.76  0.00  0.00     ← a
//	 -2.38  4.12  0.00     ← b
//	  0.00  0.00 12.99     ← c
//	Al O                   ← species (VASP 5, optional)
//	12 18                  ← counts
//	Selective dynamics     ← optional
//	Direct                 ← or Cartesian
//	  0.0 0.0 0.35 ...     ← one line per site
//
// Write emits VASP 5 files in direct coordinates. Species and counts are
// taken from consecutive runs of equal species, so an unsorted structure
// produces a line like "Al O Al"; sort first for grouped output.
package poscar
