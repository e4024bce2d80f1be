// SPDX-License-Identifier: MIT
// Package: cif
//
// errors.go — sentinel errors for CIF parsing.

package cif

import "errors"

var (
	// ErrSyntax indicates malformed CIF tokens or values.
	ErrSyntax = errors.New("cif: syntax error")

	// ErrMissingCell indicates a missing cell length or angle.
	ErrMissingCell = errors.New("cif: missing cell parameter")

	// ErrNoAtoms indicates no _atom_site loop with fractional coordinates.
	ErrNoAtoms = errors.New("cif: no atom sites")

	// ErrPartialOccupancy indicates a site with occupancy below 1; only
	// single-occupancy sites are supported.
	ErrPartialOccupancy = errors.New("cif: partial occupancy not supported")

	// ErrBadSymop indicates a symmetry operator that could not be parsed.
	ErrBadSymop = errors.New("cif: bad symmetry operator")
)
