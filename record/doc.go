// SPDX-License-Identifier: MIT

// Package record defines the flat, format-agnostic snapshot of a crystal
// structure that the perturbation engine mutates.
//
// A Record carries the lattice matrix and an ordered list of sites. It is
// deliberately detached from any file format and from the typed structure
// it was exported from:
//
//   - FromStructure exports a record and immediately invalidates every
//     derived field (lattice lengths, angles, volume, Cartesian positions),
//     since swaps and jitter make them stale.
//   - Only Lattice.Matrix, Site.Species and Site.Frac are trustworthy after
//     initialization; collaborators recompute everything else.
//   - Site order carries no physical meaning; it is the target of the
//     canonical species sort.
//
// Records round-trip through YAML (Encode/Decode) so a snapshot can be
// inspected or fed back in without a structure file format.
package record
