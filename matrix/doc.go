// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel behind the
// lattice layer: a row-major Dense type with safe accessors, the shared
// validators, and Mul, Transpose, MatVec, LU, Det and Inverse.
//
// What & Why:
//
//	Lattice vectors, their inverse and the frac↔cart conversions are all
//	3×3 dense problems. Keeping them on one generic kernel gives a single
//	source of truth for shape checks, the finite-only numeric policy and
//	singularity detection.
//
// Conventions:
//   - Storage is row-major: offset = i*cols + j.
//   - Public functions never panic on user input; they return sentinels
//     from errors.go wrapped with the operation tag.
//   - Inputs are never mutated; every kernel allocates its result.
//   - LU uses partial pivoting so permuted cells (a basis vector along a
//     later axis) factor without a spurious zero pivot.
package matrix
