// SPDX-License-Identifier: MIT
// Package: lattice
//
// errors.go — sentinel errors for lattice arithmetic.
//
// Every message is prefixed with "lattice: ..." for easy grepping. Callers
// add context with fmt.Errorf("ctx: %w", ErrX) and branch with errors.Is.

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a row-slice matrix is not exactly 3×3.
	ErrBadShape = errors.New("lattice: matrix is not 3x3")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are required.
	ErrNaNInf = errors.New("lattice: NaN or Inf encountered")

	// ErrSingular is returned when the lattice vectors are linearly dependent
	// (zero volume) and an inverse was requested.
	ErrSingular = errors.New("lattice: singular matrix")

	// ErrBadParameters indicates cell parameters (lengths/angles) that do not
	// describe a real cell: non-positive lengths or impossible angle triples.
	ErrBadParameters = errors.New("lattice: invalid cell parameters")
)

// latticeErrorf prefixes err with the method tag, keeping the sentinel
// reachable through errors.Is.
func latticeErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
