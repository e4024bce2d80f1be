// Package exchange_test verifies swap conservation, the canonical sort
// and the forced-draw scenarios.
package exchange_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/CaptainDasheng/random-exchange-atoms/exchange"
	"github.com/CaptainDasheng/random-exchange-atoms/record"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed list of indices and counts draws.
type scriptedSource struct {
	seq   []int
	draws int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.seq[s.draws%len(s.seq)]
	s.draws++
	return v
}

// newRecord builds a record with the given species, site i placed at
// fractional x = i so tests can follow where each site went.
func newRecord(species ...string) *record.Record {
	rec := &record.Record{
		Lattice: record.Lattice{Matrix: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
	}
	for i, sp := range species {
		rec.Sites = append(rec.Sites, record.Site{Species: sp, Frac: []float64{float64(i), 0, 0}})
	}
	return rec
}

func fracX(rec *record.Record) []float64 {
	out := make([]float64, len(rec.Sites))
	for i, s := range rec.Sites {
		out[i] = s.Frac[0]
	}
	return out
}

func sortedSpecies(rec *record.Record) []string {
	out := rec.SpeciesSequence()
	sort.Strings(out)
	return out
}

// TestForcedSwapScenario: {A,A,B,B} with draws (0,2) is [B,A,A,B] before
// the sort and [A,A,B,B] after, ties keeping their relative order.
func TestForcedSwapScenario(t *testing.T) {
	rec := newRecord("A", "A", "B", "B")
	require.NoError(t, exchange.Swap(rec, 0, 2))
	require.Equal(t, []string{"B", "A", "A", "B"}, rec.SpeciesSequence())

	exchange.Sort(rec)
	require.Equal(t, []string{"A", "A", "B", "B"}, rec.SpeciesSequence())
	require.Equal(t, []float64{1, 2, 0, 3}, fracX(rec))

	// Same outcome through Run with a scripted source.
	rec = newRecord("A", "A", "B", "B")
	src := &scriptedSource{seq: []int{0, 2}}
	require.NoError(t, exchange.Run(rec, 1, src))
	require.Equal(t, 2, src.draws)
	require.Equal(t, []string{"A", "A", "B", "B"}, rec.SpeciesSequence())
	require.Equal(t, []float64{1, 2, 0, 3}, fracX(rec))
}

// TestSelfSwapCountsTowardTotal documents that i == j draws are kept:
// one requested swap consumes exactly one pair of draws even when the
// pair is a self swap, and nothing is resampled.
func TestSelfSwapCountsTowardTotal(t *testing.T) {
	rec := newRecord("B", "A")
	src := &scriptedSource{seq: []int{1, 1}}

	require.NoError(t, exchange.Run(rec, 3, src))
	require.Equal(t, 6, src.draws)
	// Only the sort moved anything.
	require.Equal(t, []string{"A", "B"}, rec.SpeciesSequence())
	require.Equal(t, []float64{1, 0}, fracX(rec))
}

// TestSwapConservation checks count and multiset invariance plus the
// sort postcondition over many seeds and swap counts.
func TestSwapConservation(t *testing.T) {
	species := []string{"Al", "O", "O", "Fe", "O", "Al", "Ti", "O", "Fe", "Al"}
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, swaps := range []int{0, 1, 5, 100, 1000} {
			rec := newRecord(species...)
			before := sortedSpecies(rec)

			require.NoError(t, exchange.Run(rec, swaps, rng))
			require.Len(t, rec.Sites, len(species))
			require.Equal(t, before, sortedSpecies(rec))
			require.True(t, exchange.IsSorted(rec))
		}
	}
}

// TestRunDeterministicWithSeed locks outcomes to the seed.
func TestRunDeterministicWithSeed(t *testing.T) {
	a := newRecord("A", "B", "C", "D", "E")
	b := newRecord("A", "B", "C", "D", "E")
	require.NoError(t, exchange.Run(a, 50, rand.New(rand.NewSource(7))))
	require.NoError(t, exchange.Run(b, 50, rand.New(rand.NewSource(7))))
	require.Equal(t, fracX(a), fracX(b))
}

// TestRunErrors covers every precondition and checks the record is left
// unchanged.
func TestRunErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	empty := newRecord()
	require.ErrorIs(t, exchange.Run(empty, 1, rng), exchange.ErrNoSites)
	require.ErrorIs(t, exchange.Run(empty, 0, rng), exchange.ErrNoSites)

	rec := newRecord("B", "A")
	require.ErrorIs(t, exchange.Run(rec, -1, rng), exchange.ErrNegativeSwaps)
	require.ErrorIs(t, exchange.Run(rec, 1, nil), exchange.ErrNeedRandSource)
	require.ErrorIs(t, exchange.Run(nil, 1, rng), record.ErrNilRecord)
	require.Equal(t, []string{"B", "A"}, rec.SpeciesSequence())

	require.ErrorIs(t, exchange.Swap(rec, 0, 2), exchange.ErrOutOfRange)
	require.ErrorIs(t, exchange.Swap(rec, -1, 0), exchange.ErrOutOfRange)
	require.ErrorIs(t, exchange.Run(rec, 1, &scriptedSource{seq: []int{5}}), exchange.ErrOutOfRange)
}

// TestZeroSwapsStillSorts: the sort runs even when no swap is requested.
func TestZeroSwapsStillSorts(t *testing.T) {
	rec := newRecord("O", "Al", "O", "Al")
	require.NoError(t, exchange.Run(rec, 0, &scriptedSource{seq: []int{0}}))
	require.Equal(t, []string{"Al", "Al", "O", "O"}, rec.SpeciesSequence())
	require.Equal(t, []float64{1, 3, 0, 2}, fracX(rec))
}
