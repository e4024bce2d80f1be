// SPDX-License-Identifier: MIT

// Package exchange randomly swaps species labels between the sites of a
// record and then sorts the sites canonically by species.
//
// A swap exchanges exactly two labels, so the number of sites and the
// multiset of species never change. Site placements (fractional
// coordinates) stay where they are; only which species occupies them moves.
//
// Draws:
//
//	i := src.Intn(n)  // uniform over [0, n-1]
//	j := src.Intn(n)  // independent of i
//
// i == j is a legal draw and counts toward the requested swap total; it
// is never resampled.
//
// Randomness is injected through IndexSource (a *rand.Rand satisfies it),
// so tests can script the exact indices drawn.
package exchange
