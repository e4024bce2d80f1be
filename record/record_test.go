// Package record_test checks record initialization, validation and the
// YAML round trip.
package record_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/CaptainDasheng/random-exchange-atoms/matrix"
	"github.com/CaptainDasheng/random-exchange-atoms/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullExporter hands out a record with every derived field populated.
type fullExporter struct{ calls int }

func (e *fullExporter) Record() *record.Record {
	e.calls++
	f := func(v float64) *float64 { return &v }
	return &record.Record{
		Lattice: record.Lattice{
			Matrix: [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}},
			A:      f(2), B: f(2), C: f(2),
			Alpha: f(90), Beta: f(90), Gamma: f(90),
			Volume: f(8),
		},
		Sites: []record.Site{
			{Species: "Na", Frac: []float64{0, 0, 0}, Position: []float64{0, 0, 0}},
			{Species: "Cl", Frac: []float64{0.5, 0.5, 0.5}, Position: []float64{1, 1, 1}},
		},
	}
}

// TestFromStructureInvalidates checks that every derived field is nil
// regardless of what the exporter populated.
func TestFromStructureInvalidates(t *testing.T) {
	src := &fullExporter{}
	rec := record.FromStructure(src)

	require.Equal(t, 1, src.calls)
	assert.Nil(t, rec.Lattice.A)
	assert.Nil(t, rec.Lattice.B)
	assert.Nil(t, rec.Lattice.C)
	assert.Nil(t, rec.Lattice.Alpha)
	assert.Nil(t, rec.Lattice.Beta)
	assert.Nil(t, rec.Lattice.Gamma)
	assert.Nil(t, rec.Lattice.Volume)
	for i, s := range rec.Sites {
		assert.Nil(t, s.Position, "site %d position must be cleared", i)
		assert.Len(t, s.Frac, 3, "site %d keeps its fractional placement", i)
	}

	// Matrix and species survive.
	require.Equal(t, [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}, rec.Lattice.Matrix)
	require.Equal(t, []string{"Na", "Cl"}, rec.SpeciesSequence())
}

// TestValidate walks through each malformed shape.
func TestValidate(t *testing.T) {
	good := func() *record.Record { return record.FromStructure(&fullExporter{}) }

	require.NoError(t, good().Validate())

	var nilRec *record.Record
	require.ErrorIs(t, nilRec.Validate(), record.ErrNilRecord)

	cases := map[string]func(r *record.Record){
		"two rows":      func(r *record.Record) { r.Lattice.Matrix = r.Lattice.Matrix[:2] },
		"short row":     func(r *record.Record) { r.Lattice.Matrix[1] = []float64{1, 2} },
		"no sites":      func(r *record.Record) { r.Sites = nil },
		"empty species": func(r *record.Record) { r.Sites[0].Species = "" },
		"bad frac":      func(r *record.Record) { r.Sites[1].Frac = []float64{0.5} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := good()
			mutate(r)
			require.ErrorIs(t, r.Validate(), record.ErrMalformedRecord)
		})
	}
}

// TestValidateMatrixNonFinite reports both the record sentinel and the
// underlying numeric one.
func TestValidateMatrixNonFinite(t *testing.T) {
	r := record.FromStructure(&fullExporter{})
	r.Lattice.Matrix[2][1] = math.Inf(-1)

	err := r.ValidateMatrix()
	require.ErrorIs(t, err, record.ErrMalformedRecord)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	r.Lattice.Matrix = r.Lattice.Matrix[:1]
	require.ErrorIs(t, r.ValidateMatrix(), matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures a clone shares no storage with its source.
func TestCloneIndependence(t *testing.T) {
	orig := record.FromStructure(&fullExporter{})
	cp := orig.Clone()

	cp.Lattice.Matrix[0][0] = 99
	cp.Sites[0].Species = "K"
	cp.Sites[0].Frac[0] = 0.25

	require.Equal(t, 2.0, orig.Lattice.Matrix[0][0])
	require.Equal(t, "Na", orig.Sites[0].Species)
	require.Equal(t, 0.0, orig.Sites[0].Frac[0])
	require.Nil(t, cp.Sites[0].Position)
}

// TestComposition covers counting and formula rendering.
func TestComposition(t *testing.T) {
	r := &record.Record{Sites: []record.Site{
		{Species: "O"}, {Species: "Al"}, {Species: "O"}, {Species: "O"}, {Species: "Al"}, {Species: "Fe"},
	}}
	require.Equal(t, map[string]int{"O": 3, "Al": 2, "Fe": 1}, r.Composition())
	require.Equal(t, "Al2FeO3", r.Formula())
}

// TestYAMLRoundTrip encodes an invalidated record, checks nulls are
// explicit and decodes it back.
func TestYAMLRoundTrip(t *testing.T) {
	rec := record.FromStructure(&fullExporter{})

	var buf bytes.Buffer
	require.NoError(t, record.Encode(&buf, rec))
	require.Contains(t, buf.String(), "volume: null")

	back, err := record.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, rec.Lattice.Matrix, back.Lattice.Matrix)
	require.Equal(t, rec.SpeciesSequence(), back.SpeciesSequence())
}

// TestDecodeRejectsMalformed ensures Decode validates its output.
func TestDecodeRejectsMalformed(t *testing.T) {
	doc := `
lattice:
  matrix: [[1, 0, 0], [0, 1, 0]]
sites:
  - species: Fe
    abc: [0, 0, 0]
`
	_, err := record.Decode(strings.NewReader(doc))
	require.ErrorIs(t, err, record.ErrMalformedRecord)
}
