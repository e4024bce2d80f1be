// Package rea generates perturbed variants of a crystal structure by
// random exchange of atoms.
//
// A run starts from one ordered structure (POSCAR, CIF or a YAML record),
// optionally enlarges it along its shortest axis until it holds enough
// sites, and then produces any number of variants. Each variant restarts
// from the same base: random site pairs swap species, the sites are
// sorted by species and the lattice vectors may be jittered by a few
// percent of their axis length.
//
// Packages:
//
//	lattice/    — 3×3 lattice math: lengths, angles, volume, inverse
//	structure/  — typed structure: sites at fractional positions
//	record/     — flat record snapshot with YAML codec
//	supercell/  — enlargement along the shortest axis
//	exchange/   — random species swaps and the stable species sort
//	jitter/     — lattice vector perturbation
//	format/     — POSCAR, CIF and record readers/writers
//	session/    — the perturbation lifecycle tying the above together
//	cmd/rea     — command line: generate, inspect, convert
//
// All randomness flows through an injected source, so a fixed seed
// reproduces a run exactly.
package rea
