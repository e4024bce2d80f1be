// SPDX-License-Identifier: MIT
// Package: matrix
//
// types.go — the Matrix interface.

package matrix

// Matrix is a two-dimensional mutable array of float64 values.
// All methods are O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j). Returns ErrOutOfRange for bad indices.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
