// SPDX-License-Identifier: MIT
// Package: exchange
//
// exchange.go — N random pairwise swaps followed by a stable species sort.
//
// Contract:
//   - len(rec.Sites) >= 1 (else ErrNoSites), swaps >= 0, src != nil.
//   - Validation happens before any mutation; on error rec is unchanged.
//   - Two Intn(n) draws per swap, in order (i then j).
//
// Complexity: O(swaps + n log n).

package exchange

import (
	"fmt"
	"sort"

	"github.com/CaptainDasheng/random-exchange-atoms/record"
)

const methodRun = "Run"

// DefaultSwaps is the swap count used when callers have no preference.
const DefaultSwaps = 100

// IndexSource draws uniform integers in [0, n). *rand.Rand implements it.
type IndexSource interface {
	Intn(n int) int
}

// Run performs swaps random species exchanges on rec and then sorts its
// sites by species.
func Run(rec *record.Record, swaps int, src IndexSource) error {
	if rec == nil {
		return fmt.Errorf("%s: %w", methodRun, record.ErrNilRecord)
	}
	if src == nil {
		return fmt.Errorf("%s: %w", methodRun, ErrNeedRandSource)
	}
	if swaps < 0 {
		return fmt.Errorf("%s: swaps=%d: %w", methodRun, swaps, ErrNegativeSwaps)
	}
	n := len(rec.Sites)
	if n == 0 {
		return fmt.Errorf("%s: %w", methodRun, ErrNoSites)
	}

	for k := 0; k < swaps; k++ {
		i := src.Intn(n)
		j := src.Intn(n)
		if err := Swap(rec, i, j); err != nil {
			// Only reachable with a misbehaving source.
			return fmt.Errorf("%s: swap %d: %w", methodRun, k, err)
		}
	}
	Sort(rec)
	return nil
}

// Swap exchanges the species of sites i and j. i == j is a no-op.
func Swap(rec *record.Record, i, j int) error {
	n := len(rec.Sites)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("Swap(%d,%d) with %d sites: %w", i, j, n, ErrOutOfRange)
	}
	rec.Sites[i].Species, rec.Sites[j].Species = rec.Sites[j].Species, rec.Sites[i].Species
	return nil
}

// Sort orders sites ascending by species label. Ties keep their prior
// relative order.
func Sort(rec *record.Record) {
	sort.SliceStable(rec.Sites, func(a, b int) bool {
		return rec.Sites[a].Species < rec.Sites[b].Species
	})
}

// IsSorted reports whether sites are non-decreasing by species.
func IsSorted(rec *record.Record) bool {
	return sort.SliceIsSorted(rec.Sites, func(a, b int) bool {
		return rec.Sites[a].Species < rec.Sites[b].Species
	})
}
