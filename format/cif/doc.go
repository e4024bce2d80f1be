// SPDX-License-Identifier: MIT

// Package cif reads and writes the subset of the Crystallographic
// Information File format needed to move single-occupancy crystal
// structures in and out of the engine.
//
// Read takes the first data block and uses:
//
//	_cell_length_a/b/c, _cell_angle_alpha/beta/gamma   (uncertainties "(n)" stripped)
//	loop_ _atom_site_fract_x/y/z + _atom_site_type_symbol or _atom_site_label
//	      _atom_site_occupancy (optional; partial occupancy is rejected)
//	loop_ _symmetry_equiv_pos_as_xyz or _space_group_symop_operation_xyz
//
// Symmetry operators expand the asymmetric unit; images closer than
// dedupTol (fractional, periodic) to an earlier image of the same atom are
// dropped. No space-group detection is attempted.
//
// Write always emits P1 with every site listed, cell parameters derived
// from the lattice matrix. The matrix orientation is not stored, only its
// lengths and angles.
package cif
