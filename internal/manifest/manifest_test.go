// SPDX-License-Identifier: MIT
package manifest_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaptainDasheng/random-exchange-atoms/internal/manifest"
)

func sample() *manifest.Manifest {
	m := manifest.New(42, manifest.Parameters{
		Input: "POSCAR", InputFormat: "poscar", OutputFormat: "poscar",
		Count: 2, Swaps: 100, MinSites: 16, Jitter: true,
		Probability: 10, ChangeMin: -1, ChangeMax: 1,
	})
	m.Add(manifest.NewEntry(1, "out/POSCAR1", "Cl8Na8", 16, [3]float64{5.64, 5.64, 11.28}))
	m.Add(manifest.NewEntry(2, "out/POSCAR2", "Cl8Na8", 16, [3]float64{5.6, 5.7, 11.2}))
	return m
}

func TestNew_AssignsIDs(t *testing.T) {
	m := sample()
	assert.NotEqual(t, uuid.Nil, m.RunID)
	require.Len(t, m.Variants, 2)
	assert.NotEqual(t, m.Variants[0].ID, m.Variants[1].ID)
	assert.NoError(t, m.Validate())
}

func TestValidate(t *testing.T) {
	m := manifest.New(1, manifest.Parameters{})
	assert.ErrorIs(t, m.Validate(), manifest.ErrNoVariants)

	m.RunID = uuid.Nil
	assert.Error(t, m.Validate())
}

func TestEncodeDecode(t *testing.T) {
	m := sample()
	m.Base = &manifest.Entry{ID: uuid.New(), Path: "out/POSCAR_base", Formula: "Cl8Na8", Sites: 16}

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	assert.Contains(t, buf.String(), "run_id: "+m.RunID.String())
	assert.Contains(t, buf.String(), "seed: 42")

	got, err := manifest.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.RunID, got.RunID)
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, m.Parameters, got.Parameters)
	require.NotNil(t, got.Base)
	assert.Equal(t, "out/POSCAR_base", got.Base.Path)
	assert.Equal(t, m.Variants, got.Variants)
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "manifest.yaml")
	m := sample()
	require.NoError(t, m.WriteFile(path))

	got, err := manifest.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.RunID, got.RunID)
	assert.Len(t, got.Variants, 2)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := manifest.Decode(bytes.NewBufferString("variants: [oops"))
	assert.Error(t, err)
}
