// Package supercell_test exercises the enlargement policy against both a
// real structure and a recording fake.
package supercell_test

import (
	"errors"
	"testing"

	"github.com/CaptainDasheng/random-exchange-atoms/lattice"
	"github.com/CaptainDasheng/random-exchange-atoms/structure"
	"github.com/CaptainDasheng/random-exchange-atoms/supercell"
	"github.com/stretchr/testify/require"
)

// fakeCell tracks lengths and site count and records every scale it
// was asked to apply.
type fakeCell struct {
	sites   int
	lengths [3]float64
	calls   [][3]int
	failAt  int // fail on this call number (1-based); 0 never fails
}

func (f *fakeCell) SiteCount() int      { return f.sites }
func (f *fakeCell) Lengths() [3]float64 { return f.lengths }
func (f *fakeCell) Replicate(scale [3]int) error {
	f.calls = append(f.calls, scale)
	if f.failAt == len(f.calls) {
		return errors.New("boom")
	}
	for i, k := range scale {
		f.lengths[i] *= float64(k)
		f.sites *= k
	}
	return nil
}

// orthoStructure builds an orthorhombic structure with n sites.
func orthoStructure(t *testing.T, a, b, c float64, n int) *structure.Structure {
	t.Helper()
	sites := make([]structure.Site, n)
	for i := range sites {
		sites[i] = structure.Site{Species: "X", Frac: lattice.Vec3{float64(i) / float64(n), 0, 0}}
	}
	s, err := structure.New(lattice.Matrix3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}, sites)
	require.NoError(t, err)
	return s
}

// TestEnlargeAxisSelection: lengths (1,2,3) with one doubling needed
// must double a and exactly double the site count.
func TestEnlargeAxisSelection(t *testing.T) {
	s := orthoStructure(t, 1, 2, 3, 2)

	modified, err := supercell.Enlarge(s, 3)
	require.NoError(t, err)
	require.True(t, modified)
	require.Equal(t, 4, s.SiteCount())
	require.Equal(t, [3]float64{2, 2, 3}, s.Lengths())
}

// TestEnlargeNoOp covers thresholds at or below the current count.
func TestEnlargeNoOp(t *testing.T) {
	for _, minSites := range []int{-1, 0, 1, 4} {
		s := orthoStructure(t, 1, 2, 3, 4)
		modified, err := supercell.Enlarge(s, minSites)
		require.NoError(t, err)
		require.False(t, modified, "minSites=%d", minSites)
		require.Equal(t, 4, s.SiteCount())
		require.Equal(t, [3]float64{1, 2, 3}, s.Lengths())
	}
}

// TestEnlargeInterleavesAxes re-reads the lengths each iteration, so a
// cubic cell grows a, b, c in turn.
func TestEnlargeInterleavesAxes(t *testing.T) {
	f := &fakeCell{sites: 1, lengths: [3]float64{3, 3, 3}}

	modified, err := supercell.Enlarge(f, 8)
	require.NoError(t, err)
	require.True(t, modified)
	require.Equal(t, [][3]int{{2, 1, 1}, {1, 2, 1}, {1, 1, 2}}, f.calls)
	require.Equal(t, 8, f.sites)
	require.Equal(t, [3]float64{6, 6, 6}, f.lengths)
}

// TestEnlargeTieBreak prefers the earliest axis among equal minima.
func TestEnlargeTieBreak(t *testing.T) {
	require.Equal(t, 0, supercell.ShortestAxis([3]float64{2, 2, 2}))
	require.Equal(t, 1, supercell.ShortestAxis([3]float64{3, 2, 2}))
	require.Equal(t, 2, supercell.ShortestAxis([3]float64{3, 3, 1}))
}

// TestEnlargeMonotonic: for a range of thresholds the count never drops
// and always reaches the threshold.
func TestEnlargeMonotonic(t *testing.T) {
	for threshold := 0; threshold <= 40; threshold++ {
		s := orthoStructure(t, 2.5, 4, 7, 3)
		_, err := supercell.Enlarge(s, threshold)
		require.NoError(t, err)
		require.GreaterOrEqual(t, s.SiteCount(), 3)
		require.GreaterOrEqual(t, s.SiteCount(), threshold)
		require.Zero(t, s.SiteCount()%3, "growth is by integer multiples")
	}
}

// TestEnlargeEmpty refuses to loop forever on an empty structure.
func TestEnlargeEmpty(t *testing.T) {
	f := &fakeCell{sites: 0, lengths: [3]float64{1, 1, 1}}
	_, err := supercell.Enlarge(f, 1)
	require.ErrorIs(t, err, supercell.ErrEmptyStructure)
	require.Empty(t, f.calls)

	_, err = supercell.Enlarge(nil, 1)
	require.ErrorIs(t, err, supercell.ErrNilStructure)
}

// TestEnlargeReplicateError reports partial growth and the cause.
func TestEnlargeReplicateError(t *testing.T) {
	f := &fakeCell{sites: 1, lengths: [3]float64{1, 2, 3}, failAt: 2}
	modified, err := supercell.Enlarge(f, 16)
	require.Error(t, err)
	require.True(t, modified)
	require.Equal(t, 2, f.sites)
}
