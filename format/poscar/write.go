// SPDX-License-Identifier: MIT
// Package: poscar
//
// write.go — VASP 5 POSCAR writer, direct coordinates.

package poscar

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CaptainDasheng/random-exchange-atoms/structure"
)

// coordFormat is used for every lattice and coordinate component.
const coordFormat = "%.12f"

// Write serializes s as a POSCAR. The comment line is the formula.
func Write(w io.Writer, s *structure.Structure) error {
	bw := bufio.NewWriter(w)

	symbols, counts := Groups(s)

	fmt.Fprintln(bw, s.Formula())
	fmt.Fprintln(bw, "1.0")
	for _, row := range s.Lattice {
		writeTriple(bw, row[0], row[1], row[2])
	}
	fmt.Fprintln(bw, strings.Join(symbols, " "))
	nums := make([]string, len(counts))
	for i, c := range counts {
		nums[i] = strconv.Itoa(c)
	}
	fmt.Fprintln(bw, strings.Join(nums, " "))
	fmt.Fprintln(bw, "direct")
	for _, site := range s.Sites {
		writeTriple(bw, site.Frac[0], site.Frac[1], site.Frac[2])
	}

	return bw.Flush()
}

func writeTriple(w io.Writer, x, y, z float64) {
	fmt.Fprintf(w, "  "+coordFormat+"  "+coordFormat+"  "+coordFormat+"\n", x, y, z)
}

// Groups returns species and counts of consecutive runs of equal species.
func Groups(s *structure.Structure) ([]string, []int) {
	var (
		symbols []string
		counts  []int
	)
	for _, site := range s.Sites {
		if n := len(symbols); n > 0 && symbols[n-1] == site.Species {
			counts[n-1]++
			continue
		}
		symbols = append(symbols, site.Species)
		counts = append(counts, 1)
	}
	return symbols, counts
}
