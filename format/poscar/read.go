// SPDX-License-Identifier: MIT
// Package: poscar
//
// read.go — POSCAR parser.

package poscar

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/CaptainDasheng/random-exchange-atoms/lattice"
	"github.com/CaptainDasheng/random-exchange-atoms/structure"
)

// lineReader yields non-blank lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text != "" {
			return text, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("line %d: unexpected end of file: %w", lr.line, ErrSyntax)
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", lr.line, fmt.Sprintf(format, args...), ErrSyntax)
}

// Read parses a POSCAR/CONTCAR stream into a Structure.
func Read(r io.Reader) (*structure.Structure, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	comment, err := lr.next()
	if err != nil {
		return nil, err
	}

	scaleLine, err := lr.next()
	if err != nil {
		return nil, err
	}
	scale, err := strconv.ParseFloat(strings.Fields(scaleLine)[0], 64)
	if err != nil || scale == 0 {
		return nil, lr.errorf("bad scale %q", scaleLine)
	}

	var lat lattice.Matrix3
	for i := 0; i < 3; i++ {
		row, err := lr.next()
		if err != nil {
			return nil, err
		}
		v, err := parseVec(row)
		if err != nil {
			return nil, lr.errorf("lattice vector %d: %v", i+1, err)
		}
		lat[i] = v
	}

	// A negative scale is the requested cell volume.
	if scale < 0 {
		vol := lattice.Volume(lat)
		if vol == 0 {
			return nil, lr.errorf("zero-volume lattice with volume scale")
		}
		scale = math.Cbrt(-scale / vol)
	}
	lat = lattice.Scale(lat, scale)

	line, err := lr.next()
	if err != nil {
		return nil, err
	}
	var species []string
	if startsWithLetter(line) {
		species = strings.Fields(line)
		if line, err = lr.next(); err != nil {
			return nil, err
		}
	}

	var counts []int
	for _, f := range strings.Fields(line) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, lr.errorf("bad site count %q", f)
		}
		counts = append(counts, n)
	}

	if species == nil {
		// VASP 4: fall back to the comment when it names exactly len(counts) elements.
		species = strings.Fields(comment)
		if len(species) != len(counts) || !allLetters(species) {
			return nil, fmt.Errorf("Read: %w", ErrMissingSpecies)
		}
	}
	if len(species) != len(counts) {
		return nil, lr.errorf("%d species for %d counts", len(species), len(counts))
	}

	mode, err := lr.next()
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(strings.ToLower(mode), "s") {
		if mode, err = lr.next(); err != nil {
			return nil, err
		}
	}
	cartesian := false
	switch unicode.ToLower(rune(mode[0])) {
	case 'c', 'k':
		cartesian = true
	case 'd':
	default:
		return nil, lr.errorf("unknown coordinate mode %q", mode)
	}

	var inv lattice.Matrix3
	if cartesian {
		if inv, err = lattice.Inverse(lat); err != nil {
			return nil, fmt.Errorf("Read: %w", err)
		}
	}

	var sites []structure.Site
	for k, sp := range species {
		for n := 0; n < counts[k]; n++ {
			row, err := lr.next()
			if err != nil {
				return nil, err
			}
			v, err := parseVec(row)
			if err != nil {
				return nil, lr.errorf("site %d: %v", len(sites)+1, err)
			}
			if cartesian {
				v = lattice.CartToFrac(inv, lattice.Vec3{v[0] * scale, v[1] * scale, v[2] * scale})
			}
			sites = append(sites, structure.Site{Species: sp, Frac: v})
		}
	}

	s, err := structure.New(lat, sites)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return s, nil
}

// parseVec reads the first three fields of a line as floats; trailing
// fields (selective-dynamics flags, species tags) are ignored.
func parseVec(line string) (lattice.Vec3, error) {
	var v lattice.Vec3
	f := strings.Fields(line)
	if len(f) < 3 {
		return v, fmt.Errorf("need 3 numbers, got %d fields", len(f))
	}
	for i := 0; i < 3; i++ {
		x, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return v, err
		}
		v[i] = x
	}
	return v, nil
}

func startsWithLetter(s string) bool {
	return s != "" && unicode.IsLetter(rune(s[0]))
}

func allLetters(fields []string) bool {
	for _, f := range fields {
		for _, r := range f {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}
