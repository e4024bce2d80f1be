// SPDX-License-Identifier: MIT
// Package: format
//
// format.go — Format enumeration and Read/Write dispatch.

package format

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CaptainDasheng/random-exchange-atoms/format/cif"
	"github.com/CaptainDasheng/random-exchange-atoms/format/poscar"
	"github.com/CaptainDasheng/random-exchange-atoms/record"
	"github.com/CaptainDasheng/random-exchange-atoms/structure"
)

// Format is a closed set of structure file formats.
type Format int

const (
	Unknown Format = iota
	Poscar
	Cif
	Record
)

var names = map[Format]string{
	Poscar: "poscar",
	Cif:    "cif",
	Record: "yaml",
}

// String returns the canonical tag.
func (f Format) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return "unknown"
}

// Readable reports whether a reader exists for f.
func (f Format) Readable() bool {
	return f == Poscar || f == Cif || f == Record
}

// Writable reports whether a writer exists for f.
func (f Format) Writable() bool {
	return f == Poscar || f == Cif || f == Record
}

// Ext returns the conventional file extension ("" for POSCAR).
func (f Format) Ext() string {
	switch f {
	case Cif:
		return ".cif"
	case Record:
		return ".yaml"
	default:
		return ""
	}
}

// ParseFormat resolves a tag by case-insensitive content equality.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "poscar", "vasp", "contcar":
		return Poscar, nil
	case "cif":
		return Cif, nil
	case "yaml", "yml", "record":
		return Record, nil
	default:
		return Unknown, unsupported(tag, DirectionParse)
	}
}

// DetectFromPath guesses the format from a file name: POSCAR/CONTCAR
// names and .vasp, .cif, .yaml/.yml extensions.
func DetectFromPath(path string) (Format, error) {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasPrefix(base, "poscar"), strings.HasPrefix(base, "contcar"),
		strings.HasSuffix(base, ".vasp"):
		return Poscar, nil
	case strings.HasSuffix(base, ".cif"):
		return Cif, nil
	case strings.HasSuffix(base, ".yaml"), strings.HasSuffix(base, ".yml"):
		return Record, nil
	default:
		return Unknown, unsupported(filepath.Base(path), DirectionParse)
	}
}

// Read parses a structure in format f.
func Read(r io.Reader, f Format) (*structure.Structure, error) {
	switch f {
	case Poscar:
		return poscar.Read(r)
	case Cif:
		return cif.Read(r)
	case Record:
		rec, err := record.Decode(r)
		if err != nil {
			return nil, err
		}
		return structure.FromRecord(rec)
	default:
		return nil, unsupported(f.String(), DirectionRead)
	}
}

// ReadFile opens path and parses it in format f. The format is checked
// before the file is opened.
func ReadFile(path string, f Format) (*structure.Structure, error) {
	if !f.Readable() {
		return nil, unsupported(f.String(), DirectionRead)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	s, err := Read(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write serializes s in format f.
func Write(w io.Writer, s *structure.Structure, f Format) error {
	switch f {
	case Poscar:
		return poscar.Write(w, s)
	case Cif:
		return cif.Write(w, s)
	case Record:
		return record.Encode(w, s.Record())
	default:
		return unsupported(f.String(), DirectionWrite)
	}
}

// Marshal serializes s in format f into memory.
func Marshal(s *structure.Structure, f Format) ([]byte, error) {
	if !f.Writable() {
		return nil, unsupported(f.String(), DirectionWrite)
	}
	var buf bytes.Buffer
	if err := Write(&buf, s, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes s completely in memory and then writes path in one
// scoped open/write/close. Nothing is created when f is unsupported or
// serialization fails.
func WriteFile(path string, s *structure.Structure, f Format) (err error) {
	data, err := Marshal(s, f)
	if err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = fh.Write(data)
	return err
}
