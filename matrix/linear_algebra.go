// SPDX-License-Identifier: MIT
// Package: matrix
//
// linear_algebra.go — Mul, Transpose, MatVec, LU, Det and Inverse.
//
// Determinism:
//   - Fixed loop orders; pivot ties go to the lowest row index.
//
// Complexity:
//   - Mul O(r*n*c); Transpose/MatVec O(r*c); LU/Det/Inverse O(n^3).

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroPivot is the exact pivot value treated as singular.
const ZeroPivot = 0.0

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opDet       = "Det"
	opInverse   = "Inverse"
)

// matrixErrorf wraps a non-nil err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flat returns m's row-major values. *Dense hands out its buffer; callers
// must not write to it.
func flat(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i*cols+j] = v
		}
	}
	return out, nil
}

// Mul returns a*b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := flat(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := flat(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			av := ad[i*inner+k]
			if av == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i*cols+j] += av * bd[k*cols+j]
			}
		}
	}
	return &Dense{r: rows, c: cols, data: out}, nil
}

// Transpose returns mᵀ; m is not mutated.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := flat(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = src[i*cols+j]
		}
	}
	res := &Dense{r: cols, c: rows, data: out}
	if d, ok := m.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
	}
	return res, nil
}

// MatVec computes y = m*x for a column vector x.
// Contract: len(x) == m.Cols(). Zero entries of x are skipped, so the
// accumulation order matches a plain left-to-right dot product.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	data, err := flat(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		acc := 0.0
		for j := 0; j < cols; j++ {
			if x[j] != 0 {
				acc += data[i*cols+j] * x[j]
			}
		}
		y[i] = acc
	}
	return y, nil
}

// factorization is P·A = L·U packed into one buffer: U on and above the
// diagonal, L (unit diagonal implied) below it. perm[i] is the source row
// of row i; sign is the permutation parity.
type factorization struct {
	n    int
	lu   []float64
	perm []int
	sign float64
}

// factor runs Gaussian elimination with partial pivoting. It returns
// ErrSingular at the first column without a non-zero pivot.
func factor(m Matrix) (*factorization, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}
	src, err := flat(m)
	if err != nil {
		return nil, err
	}
	n := m.Rows()
	f := &factorization{n: n, lu: append([]float64(nil), src...), perm: make([]int, n), sign: 1}
	for i := range f.perm {
		f.perm[i] = i
	}
	a := f.lu
	for k := 0; k < n; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[p*n+k]) {
				p = i
			}
		}
		if a[p*n+k] == ZeroPivot {
			return f, ErrSingular
		}
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}
		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			l := a[i*n+k] / pivot
			a[i*n+k] = l
			if l == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}
	return f, nil
}

// LU factors m as P·m = L·U with unit-diagonal L. perm lists, for each row
// of L·U, the row of m it came from.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func LU(m Matrix) (L, U Matrix, perm []int, err error) {
	f, err := factor(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	n := f.n
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}
	u := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				l.data[i*n+j] = f.lu[i*n+j]
			case j == i:
				l.data[i*n+j] = 1
				u.data[i*n+j] = f.lu[i*n+j]
			default:
				u.data[i*n+j] = f.lu[i*n+j]
			}
		}
	}
	return l, u, f.perm, nil
}

// Det returns the determinant of a square m. A singular m yields 0 with
// no error.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Det(m Matrix) (float64, error) {
	f, err := factor(m)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}
	return det, nil
}

// Inverse returns m⁻¹ by solving L·U·x = P·e_col for every column.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func Inverse(m Matrix) (Matrix, error) {
	f, err := factor(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.n
	a := f.lu
	inv := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: true}
	y := make([]float64, n)
	for col := 0; col < n; col++ {
		// Forward: L·y = P·e_col.
		for i := 0; i < n; i++ {
			sum := 0.0
			if f.perm[i] == col {
				sum = 1
			}
			for k := 0; k < i; k++ {
				sum -= a[i*n+k] * y[k]
			}
			y[i] = sum
		}
		// Backward: U·x = y, written straight into column col.
		for i := n - 1; i >= 0; i-- {
			sum := y[i]
			for k := i + 1; k < n; k++ {
				sum -= a[i*n+k] * inv.data[k*n+col]
			}
			inv.data[i*n+col] = sum / a[i*n+i]
		}
	}
	return inv, nil
}
