// SPDX-License-Identifier: MIT

// Package format is the boundary between file formats and the engine.
//
// Format tags are resolved once, by content, into a closed enumeration:
//
//	"poscar", "vasp"          → Poscar   (read, write)
//	"cif"                     → Cif      (read, write)
//	"yaml", "yml", "record"   → Record   (read, write; the flat record as YAML)
//
// Anything else is an *UnsupportedFormatError, which matches
// ErrUnsupportedFormat under errors.Is. Writers are checked before any
// file is created, so an unsupported tag never leaves a partial file.
package format
