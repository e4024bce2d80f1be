// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go — sentinel error set.
//
// Every message is prefixed with "matrix: ..." for grepping. Kernels wrap
// these with the operation tag; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested shape is non-positive
	// or a backing slice does not match rows*cols.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil matrix or vector argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when elimination finds no usable pivot.
	ErrSingular = errors.New("matrix: singular matrix")
)
