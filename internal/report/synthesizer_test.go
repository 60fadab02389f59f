package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genomewatch/internal/catalog"
	"genomewatch/internal/manifest"
	"genomewatch/internal/scan"
)

func TestSynthesize_EndToEnd(t *testing.T) {
	cat := catalog.New(
		nil,
		[]catalog.ClinicalEntry{{
			Entry: catalog.Entry{
				ID: "rsTEST1", Gene: "TESTGENE",
				IfHet:    "One copy carried",
				IfHomAlt: "Two copies carried",
			},
			Condition: "Test condition",
		}},
		nil,
	)

	s := New(cat)
	s.SetClock(func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	})

	observed := []scan.Observed{
		{ID: "rsTEST1", Chrom: "7", Pos: 5000, Genotype: "0/1", IsHet: true},
		// rsTEST2 was in the input file but is not cataloged, so the
		// scanner would never have emitted it; nothing of it may surface.
	}

	doc, m, err := s.Synthesize(observed)
	require.NoError(t, err)

	assert.Equal(t, 1, m.TotalVariants)
	assert.Equal(t, []string{"rsTEST1"}, m.Variants.Clinical)
	assert.Empty(t, m.Variants.Pharmacogenomic)
	assert.Empty(t, m.Variants.Traits)

	d := m.VariantDetails["rsTEST1"]
	assert.Equal(t, "clinical", d.Category)
	assert.Equal(t, "7", d.Chrom)
	assert.True(t, d.IsHet)
	assert.False(t, d.IsHom)

	assert.Contains(t, doc, "rsTEST1")
	assert.Contains(t, doc, "TESTGENE")
	assert.Contains(t, doc, "One copy carried")
	assert.NotContains(t, doc, "Two copies carried")
	assert.NotContains(t, doc, "rsTEST2")
	assert.Contains(t, doc, "2026-03-14 09:26:53")
}

func TestSynthesize_ManifestRecoverableFromDocument(t *testing.T) {
	cat := catalog.Builtin()
	s := New(cat)

	observed := []scan.Observed{
		{ID: "rs1800562", Chrom: "6", Pos: 26090951, Genotype: "1/1", IsHom: true},
		{ID: "rs12913832", Chrom: "15", Pos: 28120472, Genotype: "0|1", IsHet: true},
	}

	doc, m, err := s.Synthesize(observed)
	require.NoError(t, err)

	got, err := manifest.Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestSynthesize_EmptyRun(t *testing.T) {
	s := New(catalog.Builtin())

	doc, m, err := s.Synthesize(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, m.TotalVariants)
	assert.Contains(t, doc, "No actionable pharmacogenomic variants")
	assert.Contains(t, doc, "No major clinical variants")
	assert.Contains(t, doc, "No trait variants")

	got, err := manifest.Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestRenderHTML_Ordering(t *testing.T) {
	cat := catalog.New(
		[]catalog.PharmEntry{
			{Entry: catalog.Entry{ID: "rsMild", Gene: "MILD", Severity: catalog.SeverityLow}, Drugs: "A"},
			{Entry: catalog.Entry{ID: "rsBad", Gene: "SEVERE", Severity: catalog.SeverityCritical}, Drugs: "B"},
		},
		nil, nil,
	)
	s := New(cat)

	doc, _, err := s.Synthesize([]scan.Observed{
		{ID: "rsMild", Chrom: "1", Pos: 1, Genotype: "0/1", IsHet: true},
		{ID: "rsBad", Chrom: "2", Pos: 2, Genotype: "1/1", IsHom: true},
	})
	require.NoError(t, err)

	// Critical findings render before low-severity ones regardless of
	// encounter order.
	assert.Less(t, strings.Index(doc, "rsBad"), strings.Index(doc, "rsMild"))
	assert.Contains(t, doc, `class="variant critical"`)
}

func TestRenderHTML_TraitGroupHeaders(t *testing.T) {
	cat := catalog.New(nil, nil, []catalog.TraitEntry{
		{Entry: catalog.Entry{ID: "rsEye", Gene: "HERC2"}, Trait: "Eye color", SubCategory: "Appearance"},
	})
	s := New(cat)

	doc, _, err := s.Synthesize([]scan.Observed{
		{ID: "rsEye", Chrom: "15", Pos: 28120472, Genotype: "1|1", IsHom: true},
	})
	require.NoError(t, err)

	assert.Contains(t, doc, "👁️ Appearance")
	assert.Contains(t, doc, "Eye color")
}
