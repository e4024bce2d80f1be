// SPDX-License-Identifier: MIT

// Package jitter randomly perturbs the components of a record's lattice
// matrix.
//
// Each of the nine components is an independent trial: a percentage u is
// drawn uniformly from [1, 100) and, when u < probability, the component
// moves by L_i * uniform(changeMin/100, changeMax/100), where L_i is the
// length of its lattice vector measured before any component was touched.
//
//	probability = 10   → about 9/99 of components move per call
//	probability = 0    → nothing moves
//	probability = 100  → every component moves
//
// Nothing checks the resulting cell; large ranges can produce degenerate
// or inverted cells.
package jitter
