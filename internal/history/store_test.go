package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genomewatch/internal/manifest"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testManifest(generated time.Time) *manifest.Manifest {
	return manifest.Build(generated,
		[]manifest.Finding{{ID: "rsP1", Gene: "CYP2C19", Chrom: "10", Pos: 94781859, Genotype: "0/1", IsHet: true}},
		[]manifest.Finding{{ID: "rsC1", Gene: "HFE", Chrom: "6", Pos: 26090951, Genotype: "1/1", IsHom: true}},
		nil,
	)
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s)
}

func TestRecordRunAndList(t *testing.T) {
	s := openInMemory(t)

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	id1, err := s.RecordRun(testManifest(first), "data/genome.vcf.gz")
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := s.RecordRun(testManifest(second), "data/genome2.vcf.gz")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	runs, err := s.Runs(0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, id2, runs[0].ID)
	assert.Equal(t, 2, runs[0].TotalVariants)
	assert.Equal(t, "data/genome2.vcf.gz", runs[0].VCFPath)
	assert.Equal(t, id1, runs[1].ID)
}

func TestRuns_Limit(t *testing.T) {
	s := openInMemory(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.RecordRun(testManifest(base.Add(time.Duration(i)*time.Hour)), "data/genome.vcf.gz")
		require.NoError(t, err)
	}

	runs, err := s.Runs(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestFindings(t *testing.T) {
	s := openInMemory(t)

	id, err := s.RecordRun(testManifest(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)), "data/genome.vcf.gz")
	require.NoError(t, err)

	findings, err := s.Findings(id)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	// Ordered by rsID.
	assert.Equal(t, "rsC1", findings[0].ID)
	assert.Equal(t, "HFE", findings[0].Gene)
	assert.True(t, findings[0].IsHom)
	assert.Equal(t, "rsP1", findings[1].ID)
	assert.True(t, findings[1].IsHet)
}

func TestRecordRun_BadTimestamp(t *testing.T) {
	s := openInMemory(t)

	m := testManifest(time.Now())
	m.Generated = "not a timestamp"

	_, err := s.RecordRun(m, "data/genome.vcf.gz")
	require.Error(t, err)
}
