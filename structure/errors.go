// SPDX-License-Identifier: MIT
// Package: structure
//
// errors.go — sentinel errors for typed structures.

package structure

import "errors"

var (
	// ErrBadScale indicates a replication factor smaller than 1.
	ErrBadScale = errors.New("structure: replication factor must be >= 1")

	// ErrEmptySpecies indicates a site without a species label.
	ErrEmptySpecies = errors.New("structure: site has no species")

	// ErrNoSites indicates a structure built without any site.
	ErrNoSites = errors.New("structure: no sites")
)
