// SPDX-License-Identifier: MIT
// Package: poscar
//
// errors.go — sentinel errors for POSCAR parsing.

package poscar

import "errors"

var (
	// ErrSyntax indicates a line that does not match the POSCAR layout.
	ErrSyntax = errors.New("poscar: syntax error")

	// ErrMissingSpecies indicates that neither a species line nor a usable
	// comment line names the species.
	ErrMissingSpecies = errors.New("poscar: species names not found")
)
