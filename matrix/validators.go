// SPDX-License-Identifier: MIT
// Package: matrix
//
// validators.go — the single source of truth for shape, nil and numeric
// checks. Validators return sentinels wrapped with their own tag; callers
// wrap again at the facade.

package matrix

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense inside the interface is nil too.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare checks Rows == Cols. Assumes m is non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquareNonNil composes NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	return nil
}

// ValidateVecLen ensures x is non-nil with exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	return nil
}

// ValidateMulCompatible ensures a, b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	return nil
}

// ValidateRows checks a row-slice matrix for shape rows×cols and finite
// values. Shape is checked before values.
// Errors: ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(rows*cols).
func ValidateRows(m [][]float64, rows, cols int) error {
	if len(m) != rows {
		return validatorErrorf(fmt.Sprintf("ValidateRows: %d rows", len(m)), ErrDimensionMismatch)
	}
	for i, row := range m {
		if len(row) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d columns", i, len(row)), ErrDimensionMismatch)
		}
	}
	for i, row := range m {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateRows: component (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}
	return nil
}
