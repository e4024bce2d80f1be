// Package poscar_test covers POSCAR parsing variants and golden writer
// output.
package poscar_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CaptainDasheng/random-exchange-atoms/format/poscar"
	"github.com/CaptainDasheng/random-exchange-atoms/lattice"
	"github.com/CaptainDasheng/random-exchange-atoms/structure"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

const vasp5 = `Fe3 O4 sample
1.0
  2.0 0.0 0.0
  0.0 2.0 0.0
  0.0 0.0 2.0
Fe O
1 2
Direct
  0.0 0.0 0.0
  0.5 0.5 0.0
  0.5 0.0 0.5 O
`

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// TestReadVASP5 parses a direct-coordinate file with a species line.
func TestReadVASP5(t *testing.T) {
	s, err := poscar.Read(strings.NewReader(vasp5))
	require.NoError(t, err)
	require.Equal(t, 3, s.SiteCount())
	require.Equal(t, [3]float64{2, 2, 2}, s.Lengths())
	require.Equal(t, "Fe", s.Sites[0].Species)
	require.Equal(t, "O", s.Sites[2].Species)
	require.Equal(t, lattice.Vec3{0.5, 0, 0.5}, s.Sites[2].Frac)
}

// TestReadVASP4CommentSpecies takes species names from the comment line.
func TestReadVASP4CommentSpecies(t *testing.T) {
	src := `Zn S
1.0
 5.4 0 0
 0 5.4 0
 0 0 5.4
1 1
Direct
0 0 0
0.25 0.25 0.25
`
	s, err := poscar.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []string{"Zn", "S"}, []string{s.Sites[0].Species, s.Sites[1].Species})
}

// TestReadMissingSpecies fails when nothing names the species.
func TestReadMissingSpecies(t *testing.T) {
	src := `generated by a tool
1.0
 1 0 0
 0 1 0
 0 0 1
1
Direct
0 0 0
`
	_, err := poscar.Read(strings.NewReader(src))
	require.ErrorIs(t, err, poscar.ErrMissingSpecies)
}

// TestReadCartesianScaledSelective exercises scale, selective dynamics and
// Cartesian input together.
func TestReadCartesianScaledSelective(t *testing.T) {
	src := `Cu
2.0
 1 0 0
 0 1 0
 0 0 2
Cu
2
Selective dynamics
Cartesian
 0 0 0 T T T
 0.5 0.5 1.0 F F F
`
	s, err := poscar.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, [3]float64{2, 2, 4}, s.Lengths())
	want := lattice.Vec3{0.5, 0.5, 0.5}
	for i := range want {
		require.InDelta(t, want[i], s.Sites[1].Frac[i], 1e-12)
	}
}

// TestReadVolumeScale treats a negative scale as the target volume.
func TestReadVolumeScale(t *testing.T) {
	src := `Po
-27.0
 1 0 0
 0 1 0
 0 0 1
Po
1
Direct
0 0 0
`
	s, err := poscar.Read(strings.NewReader(src))
	require.NoError(t, err)
	l := s.Lengths()
	require.InDelta(t, 3.0, l[0], 1e-12)
	require.InDelta(t, 27.0, lattice.Volume(s.Lattice), 1e-9)
}

// TestReadSyntaxErrors covers truncated and garbled inputs.
func TestReadSyntaxErrors(t *testing.T) {
	cases := map[string]string{
		"truncated":  "Fe\n1.0\n1 0 0\n",
		"bad scale":  "Fe\nabc\n1 0 0\n0 1 0\n0 0 1\nFe\n1\nDirect\n0 0 0\n",
		"bad count":  "Fe\n1.0\n1 0 0\n0 1 0\n0 0 1\nFe\nx\nDirect\n0 0 0\n",
		"bad mode":   "Fe\n1.0\n1 0 0\n0 1 0\n0 0 1\nFe\n1\nReciprocal\n0 0 0\n",
		"short site": "Fe\n1.0\n1 0 0\n0 1 0\n0 0 1\nFe\n1\nDirect\n0 0\n",
		"few sites":  "Fe\n1.0\n1 0 0\n0 1 0\n0 0 1\nFe\n2\nDirect\n0 0 0\n",
		"mismatch":   "Fe O\n1.0\n1 0 0\n0 1 0\n0 0 1\nFe O\n1\nDirect\n0 0 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := poscar.Read(strings.NewReader(src))
			require.ErrorIs(t, err, poscar.ErrSyntax)
		})
	}
}

// TestWriteGolden pins the writer output for a grouped structure.
func TestWriteGolden(t *testing.T) {
	s, err := structure.New(
		lattice.Matrix3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]structure.Site{
			{Species: "Cl", Frac: lattice.Vec3{0.5, 0.5, 0.5}},
			{Species: "Na", Frac: lattice.Vec3{0, 0, 0}},
		},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, poscar.Write(&buf, s))
	newGolden(t).Assert(t, "rocksalt", buf.Bytes())
}

// TestWriteUnsortedRuns shows why sites are sorted before export: runs
// are written as they appear.
func TestWriteUnsortedRuns(t *testing.T) {
	s, err := structure.New(
		lattice.Matrix3{{2, 0, 0}, {0, 2, 0}, {0, 0, 6}},
		[]structure.Site{
			{Species: "Al", Frac: lattice.Vec3{0, 0, 0}},
			{Species: "O", Frac: lattice.Vec3{0, 0, 0.5}},
			{Species: "Al", Frac: lattice.Vec3{0.5, 0.5, 0.25}},
		},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, poscar.Write(&buf, s))
	newGolden(t).Assert(t, "unsorted_runs", buf.Bytes())

	symbols, counts := poscar.Groups(s)
	require.Equal(t, []string{"Al", "O", "Al"}, symbols)
	require.Equal(t, []int{1, 1, 1}, counts)
}

// TestRoundTrip writes and reads back the same structure.
func TestRoundTrip(t *testing.T) {
	s, err := poscar.Read(strings.NewReader(vasp5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, poscar.Write(&buf, s))

	back, err := poscar.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, s.Lattice, back.Lattice)
	require.Equal(t, s.Sites, back.Sites)
}
