// SPDX-License-Identifier: MIT
// Package: supercell
//
// errors.go — sentinel errors for supercell enlargement.

package supercell

import "errors"

// ErrEmptyStructure indicates enlargement was requested for a structure
// with no sites; doubling zero sites never reaches a positive threshold.
var ErrEmptyStructure = errors.New("supercell: structure has no sites")

// ErrNilStructure indicates a nil Replicator.
var ErrNilStructure = errors.New("supercell: nil structure")
