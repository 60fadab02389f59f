package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func sampleManifest() *Manifest {
	return Build(testTime,
		[]Finding{{ID: "rsP1", Gene: "CYP2C19", Chrom: "10", Pos: 94781859, Genotype: "0/1", IsHet: true}},
		[]Finding{{ID: "rsC1", Gene: "HFE", Chrom: "6", Pos: 26090951, Genotype: "1/1", IsHom: true}},
		[]Finding{{ID: "rsT1", Gene: "HERC2", Chrom: "15", Pos: 28120472, Genotype: "1|1", IsHom: true}},
	)
}

func TestBuild(t *testing.T) {
	m := sampleManifest()

	assert.Equal(t, "2026-03-14T09:26:53Z", m.Generated)
	assert.Equal(t, 3, m.TotalVariants)
	assert.Equal(t, []string{"rsP1"}, m.Variants.Pharmacogenomic)
	assert.Equal(t, []string{"rsC1"}, m.Variants.Clinical)
	assert.Equal(t, []string{"rsT1"}, m.Variants.Traits)

	d, ok := m.VariantDetails["rsC1"]
	require.True(t, ok)
	assert.Equal(t, "clinical", d.Category)
	assert.Equal(t, "HFE", d.Gene)
	assert.Equal(t, "6", d.Chrom)
	assert.True(t, d.IsHom)
}

func TestBuild_EmptyRun(t *testing.T) {
	m := Build(testTime, nil, nil, nil)

	assert.Equal(t, 0, m.TotalVariants)
	// Lists marshal as [], not null.
	data, err := m.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pharmacogenomic": []`)
	assert.NotContains(t, string(data), "null")
}

func TestBuild_CrossCategoryDetailCollapses(t *testing.T) {
	f := Finding{ID: "rsBoth", Gene: "CYP1A2", Chrom: "15", Pos: 74749576, Genotype: "0/1", IsHet: true}
	m := Build(testTime, []Finding{f}, nil, []Finding{f})

	// Listed under both categories, one detail entry, last write wins.
	assert.Equal(t, []string{"rsBoth"}, m.Variants.Pharmacogenomic)
	assert.Equal(t, []string{"rsBoth"}, m.Variants.Traits)
	assert.Equal(t, 2, m.TotalVariants)
	require.Len(t, m.VariantDetails, 1)
	assert.Equal(t, "traits", m.VariantDetails["rsBoth"].Category)
}

func TestJSON_WireFormat(t *testing.T) {
	m := sampleManifest()
	data, err := m.JSON()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "generated")
	assert.Contains(t, raw, "total_variants")
	assert.Contains(t, raw, "variants")
	assert.Contains(t, raw, "variant_details")

	details := raw["variant_details"].(map[string]any)
	d := details["rsP1"].(map[string]any)
	assert.Contains(t, d, "chr")
	assert.Contains(t, d, "is_het")
	assert.Contains(t, d, "is_hom")
}

func TestParse_RoundTrip(t *testing.T) {
	m := sampleManifest()
	data, err := m.JSON()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestParse_ListedIDMissingDetails(t *testing.T) {
	_, err := Parse([]byte(`{
		"generated": "2026-03-14T09:26:53Z",
		"total_variants": 1,
		"variants": {"pharmacogenomic": ["rsGhost"], "clinical": [], "traits": []},
		"variant_details": {}
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rsGhost")
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.json")

	m := sampleManifest()
	data, err := m.JSON()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestIDs(t *testing.T) {
	m := sampleManifest()
	ids := m.IDs()
	assert.Len(t, ids, 3)
	assert.Contains(t, ids, "rsP1")
	assert.Contains(t, ids, "rsC1")
	assert.Contains(t, ids, "rsT1")
}
