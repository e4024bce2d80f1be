// SPDX-License-Identifier: MIT

// Package lattice provides the 3×3 lattice arithmetic shared by the typed
// structure, the flat record and the cell jitter.
//
// A lattice is stored as a Matrix3 whose rows are the basis vectors a, b
// and c in Cartesian Ångström. Derived quantities (lengths, angles,
// volume) are always recomputed from the rows; nothing here caches them,
// because a perturbed matrix invalidates every derived value.
//
//	      c
//	      │  b
//	      │ /
//	      │/____ a
//
// Conventions:
//   - Row i of the matrix is axis i (0: a, 1: b, 2: c).
//   - Angles are in degrees: alpha = ∠(b,c), beta = ∠(a,c), gamma = ∠(a,b).
//   - FromParameters places a along x and b in the xy-plane.
//
// The dense work (determinant, inverse, matrix-vector products) is done
// by package matrix; this package adapts fixed-size values onto it.
//
// Errors are package-level sentinels (see errors.go); match them with errors.Is.
package lattice
