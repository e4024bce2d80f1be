// SPDX-License-Identifier: MIT
// Package: cif
//
// symop.go — parsing and applying "x, y, z"-style symmetry operators.

package cif

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/CaptainDasheng/random-exchange-atoms/lattice"
)

// dedupTol is the periodic fractional distance below which two images of
// one atom are the same site.
const dedupTol = 1e-4

// symop maps f → rot·f + trans.
type symop struct {
	rot   lattice.Matrix3
	trans lattice.Vec3
}

var identity = symop{rot: lattice.Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

// parseSymop reads an operator such as "-x+1/2, y, -z+1/2".
func parseSymop(s string) (symop, error) {
	var op symop
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return op, fmt.Errorf("%q: %w", s, ErrBadSymop)
	}
	for k, p := range parts {
		row, t, err := parseSymopExpr(p)
		if err != nil {
			return op, fmt.Errorf("%q: %v: %w", s, err, ErrBadSymop)
		}
		op.rot[k] = row
		op.trans[k] = t
	}
	return op, nil
}

// parseSymopExpr parses one component: a signed sum of terms, each either
// a number, a variable, or a coefficient times a variable ("2x", "1/2*y").
func parseSymopExpr(expr string) (lattice.Vec3, float64, error) {
	var (
		row   lattice.Vec3
		trans float64
	)
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(expr), " ", ""))
	if s == "" {
		return row, 0, fmt.Errorf("empty component")
	}

	for i := 0; i < len(s); {
		sign := 1.0
		switch s[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}
		j := i
		for j < len(s) && s[j] != '+' && s[j] != '-' {
			j++
		}
		term := s[i:j]
		i = j
		if term == "" {
			return row, 0, fmt.Errorf("dangling sign")
		}

		last := term[len(term)-1]
		if last >= 'x' && last <= 'z' {
			coef := 1.0
			if num := strings.TrimSuffix(term[:len(term)-1], "*"); num != "" {
				v, err := parseFraction(num)
				if err != nil {
					return row, 0, err
				}
				coef = v
			}
			row[last-'x'] += sign * coef
			continue
		}
		v, err := parseFraction(term)
		if err != nil {
			return row, 0, err
		}
		trans += sign * v
	}
	return row, trans, nil
}

// parseFraction accepts "0.5", "1/2" and "1".
func parseFraction(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, fmt.Errorf("zero denominator in %q", s)
		}
		return n / d, nil
	}
	return strconv.ParseFloat(s, 64)
}

// apply maps f through op and wraps the result into [0, 1).
func (op symop) apply(f lattice.Vec3) lattice.Vec3 {
	var out lattice.Vec3
	for k := 0; k < 3; k++ {
		out[k] = wrap(lattice.Dot(op.rot[k], f) + op.trans[k])
	}
	return out
}

// wrap folds v into [0, 1), snapping values within 1e-9 of 1 to 0.
func wrap(v float64) float64 {
	v -= math.Floor(v)
	if 1-v < 1e-9 {
		return 0
	}
	return v
}

// samePeriodic reports whether a and b coincide modulo lattice translations.
func samePeriodic(a, b lattice.Vec3) bool {
	for k := 0; k < 3; k++ {
		d := a[k] - b[k]
		d -= math.Round(d)
		if math.Abs(d) > dedupTol {
			return false
		}
	}
	return true
}
