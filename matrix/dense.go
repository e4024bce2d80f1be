// SPDX-License-Identifier: MIT
// Package: matrix
//
// dense.go — row-major Dense storage and safe accessors.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf attaches the method and coordinates to a sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix. validateNaNInf makes Set reject non-finite
// values; it is carried through Clone.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix with the finite-only policy on.
// Returns ErrInvalidDimensions unless rows, cols > 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: true}, nil
}

// NewDenseData wraps a copy of data (row-major, len rows*cols). Values are
// taken as-is; NaN/Inf propagate through arithmetic instead of failing here.
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, ErrInvalidDimensions
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return &Dense{r: rows, c: cols, data: cp}, nil
}

// NewDenseFromRows builds a Dense from a row-slice matrix after
// ValidateRows: every row must have the same length and every value must
// be finite.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	if err := ValidateRows(rows, len(rows), len(rows[0])); err != nil {
		return nil, err
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}
	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows and Cols.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return m.data[off], nil
}

// Set stores v at (row, col). Rejects NaN/Inf when the policy is on.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v
	return nil
}

// Clone returns a deep copy with the same numeric policy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// RowSlices returns a freshly allocated [][]float64 copy of m.
func (m *Dense) RowSlices() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}
	return out
}

// String renders one bracketed row per line, for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
