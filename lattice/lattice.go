// SPDX-License-Identifier: MIT
// Package: lattice
//
// lattice.go — the Matrix3 value type and its derived quantities.
//
// Determinism & Performance:
//   - All functions are pure; Matrix3 is copied by value.
//   - Det, Inverse and the frac↔cart conversions run on the dense kernel in
//     the matrix package (pivoted LU, MatVec); a 3×3 call allocates a few
//     small buffers.

package lattice

import (
	"errors"
	"fmt"
	"math"

	"github.com/CaptainDasheng/random-exchange-atoms/matrix"
)

// singularTol bounds |det| below which a lattice is treated as singular.
const singularTol = 1e-12

// Vec3 is a 3-component vector (Cartesian or fractional, by context).
type Vec3 [3]float64

// Matrix3 holds the three lattice vectors as rows.
type Matrix3 [3]Vec3

// Dot returns the scalar product u·v.
func Dot(u, v Vec3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Norm returns the Euclidean length of v.
func Norm(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

// Lengths returns the Euclidean lengths (a, b, c) of the three rows.
// Complexity: O(1).
func Lengths(m Matrix3) [3]float64 {
	return [3]float64{Norm(m[0]), Norm(m[1]), Norm(m[2])}
}

// Angles returns (alpha, beta, gamma) in degrees.
// A zero-length row yields NaN for the angles it takes part in.
func Angles(m Matrix3) (alpha, beta, gamma float64) {
	return angle(m[1], m[2]), angle(m[0], m[2]), angle(m[0], m[1])
}

// angle returns the angle between u and v in degrees, clamping the cosine
// into [-1, 1] so rounding never produces NaN for parallel vectors.
func angle(u, v Vec3) float64 {
	cos := Dot(u, v) / (Norm(u) * Norm(v))
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// Det returns the signed determinant a·(b×c).
func Det(m Matrix3) float64 {
	d, err := matrix.Det(toDense(m))
	if err != nil {
		panic(fmt.Sprintf("lattice: Det on a 3x3 dense matrix: %v", err))
	}
	return d
}

// Volume returns the cell volume |a·(b×c)|.
func Volume(m Matrix3) float64 {
	return math.Abs(Det(m))
}

// Scale returns m with every component multiplied by s.
func Scale(m Matrix3, s float64) Matrix3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

// Inverse returns m⁻¹. Returns ErrSingular when |det(m)| is below
// singularTol, so nearly flat cells are rejected before elimination.
// Complexity: O(1).
func Inverse(m Matrix3) (Matrix3, error) {
	det := Det(m)
	if math.Abs(det) < singularTol || math.IsNaN(det) {
		return Matrix3{}, latticeErrorf("Inverse", ErrSingular)
	}
	inv, err := matrix.Inverse(toDense(m))
	if errors.Is(err, matrix.ErrSingular) {
		return Matrix3{}, latticeErrorf("Inverse", ErrSingular)
	}
	if err != nil {
		return Matrix3{}, latticeErrorf("Inverse", err)
	}
	return fromMatrix(inv), nil
}

// FracToCart converts fractional coordinates f into Cartesian: f·M, i.e.
// Mᵀ·f as a column vector.
func FracToCart(m Matrix3, f Vec3) Vec3 {
	mt, err := matrix.Transpose(toDense(m))
	if err != nil {
		panic(fmt.Sprintf("lattice: Transpose on a 3x3 dense matrix: %v", err))
	}
	y, err := matrix.MatVec(mt, f[:])
	if err != nil {
		panic(fmt.Sprintf("lattice: MatVec on a 3x3 dense matrix: %v", err))
	}
	return Vec3{y[0], y[1], y[2]}
}

// CartToFrac converts Cartesian coordinates x into fractional: x·M⁻¹.
// inv must be the inverse obtained from Inverse.
func CartToFrac(inv Matrix3, x Vec3) Vec3 {
	return FracToCart(inv, x)
}

// FromRows converts a row-slice matrix into a Matrix3.
// Returns ErrBadShape unless rows is exactly 3×3 and ErrNaNInf for
// non-finite components.
func FromRows(rows [][]float64) (Matrix3, error) {
	var m Matrix3
	if err := matrix.ValidateRows(rows, 3, 3); err != nil {
		switch {
		case errors.Is(err, matrix.ErrNaNInf):
			return m, fmt.Errorf("FromRows: %w: %w", ErrNaNInf, err)
		default:
			return m, fmt.Errorf("FromRows: %w: %w", ErrBadShape, err)
		}
	}
	for i, row := range rows {
		copy(m[i][:], row)
	}
	return m, nil
}

// toDense copies m into a 3×3 Dense. Values are not validated so NaN
// propagates the way plain arithmetic would.
func toDense(m Matrix3) *matrix.Dense {
	d, err := matrix.NewDenseData(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
	if err != nil {
		panic(fmt.Sprintf("lattice: 3x3 dense allocation: %v", err))
	}
	return d
}

// fromMatrix reads a 3×3 Matrix back into a Matrix3.
func fromMatrix(d matrix.Matrix) Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			if err != nil {
				panic(fmt.Sprintf("lattice: reading 3x3 result: %v", err))
			}
			m[i][j] = v
		}
	}
	return m
}

// Rows returns a freshly allocated row-slice copy of m.
func (m Matrix3) Rows() [][]float64 {
	rows := make([][]float64, 3)
	for i := range m {
		rows[i] = []float64{m[i][0], m[i][1], m[i][2]}
	}
	return rows
}

// FromParameters builds a lattice from lengths (a, b, c) and angles in
// degrees. a is placed along x and b in the xy-plane.
// Returns ErrBadParameters for non-positive lengths, angles outside
// (0, 180) or angle triples that do not close a cell.
func FromParameters(a, b, c, alpha, beta, gamma float64) (Matrix3, error) {
	for _, v := range []float64{a, b, c, alpha, beta, gamma} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Matrix3{}, latticeErrorf("FromParameters", ErrNaNInf)
		}
	}
	if a <= 0 || b <= 0 || c <= 0 {
		return Matrix3{}, latticeErrorf("FromParameters", ErrBadParameters)
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return Matrix3{}, latticeErrorf("FromParameters", ErrBadParameters)
		}
	}

	ca, cb, cg := cosDeg(alpha), cosDeg(beta), cosDeg(gamma)
	sg := sinDeg(gamma)

	cx := c * cb
	cy := c * (ca - cb*cg) / sg
	cz2 := c*c - cx*cx - cy*cy
	if cz2 <= 0 {
		return Matrix3{}, latticeErrorf("FromParameters", ErrBadParameters)
	}

	return Matrix3{
		{a, 0, 0},
		{b * cg, b * sg, 0},
		{cx, cy, math.Sqrt(cz2)},
	}, nil
}

// cosDeg and sinDeg snap the exact right angle so orthogonal cells come
// out with exact zeros instead of 6e-17 residue.
func cosDeg(d float64) float64 {
	if d == 90 {
		return 0
	}
	return math.Cos(d * math.Pi / 180)
}

func sinDeg(d float64) float64 {
	if d == 90 {
		return 1
	}
	return math.Sin(d * math.Pi / 180)
}
