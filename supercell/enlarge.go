// SPDX-License-Identifier: MIT
// Package: supercell
//
// enlarge.go — shortest-axis doubling until a minimum site count is met.
//
// Contract:
//   - minSites <= SiteCount() (including 0 and negatives) is a no-op.
//   - Each iteration multiplies the site count by exactly 2.
//   - Axis lengths are read from s itself on every iteration.
//   - Replicate errors abort the loop and are returned wrapped.
//
// Complexity: O(log2(minSites/n)) replications.

package supercell

import "fmt"

const methodEnlarge = "Enlarge"

// Replicator is the collaborator surface Enlarge needs.
type Replicator interface {
	SiteCount() int
	Lengths() [3]float64
	Replicate(scale [3]int) error
}

// Enlarge doubles s along its shortest axis until it has at least
// minSites sites. It reports whether s was modified.
func Enlarge(s Replicator, minSites int) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("%s: %w", methodEnlarge, ErrNilStructure)
	}

	initial := s.SiteCount()
	if initial == 0 && minSites > 0 {
		return false, fmt.Errorf("%s: minSites=%d: %w", methodEnlarge, minSites, ErrEmptyStructure)
	}

	for s.SiteCount() < minSites {
		scale := ScaleForAxis(ShortestAxis(s.Lengths()))
		if err := s.Replicate(scale); err != nil {
			return s.SiteCount() != initial, fmt.Errorf("%s: replicate %v: %w", methodEnlarge, scale, err)
		}
	}

	return s.SiteCount() != initial, nil
}

// ShortestAxis returns the index of the strictly smallest length; the
// first minimum wins ties (a before b before c).
func ShortestAxis(lengths [3]float64) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if lengths[i] < lengths[axis] {
			axis = i
		}
	}
	return axis
}

// ScaleForAxis returns the replication vector that doubles only axis.
func ScaleForAxis(axis int) [3]int {
	scale := [3]int{1, 1, 1}
	scale[axis] = 2
	return scale
}
