// SPDX-License-Identifier: MIT

// Package structure is the typed crystal representation the perturbation
// engine collaborates with.
//
// A Structure is a lattice (three row vectors) plus an ordered list of
// single-occupancy sites placed in fractional coordinates. It provides
// exactly what the engine asks of a collaborator:
//
//   - SiteCount and Lengths, read by the supercell enlarger;
//   - Replicate, the integer supercell operation;
//   - Record, a full flat export (derived fields populated);
//   - FromRecord, reconstruction from a (possibly perturbed) record, with
//     Cartesian positions recomputed from matrix and fractional placement.
//
// File formats live in package format and its subpackages.
package structure
