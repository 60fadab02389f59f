package scan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genomewatch/internal/catalog"
	"genomewatch/internal/vcf"
)

// fakeParser replays a fixed record list.
type fakeParser struct {
	recs []*vcf.Record
	err  error
}

func (f *fakeParser) Next() (*vcf.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.recs) == 0 {
		return nil, nil
	}
	rec := f.recs[0]
	f.recs = f.recs[1:]
	return rec, nil
}

func (f *fakeParser) Close() error { return nil }

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]catalog.PharmEntry{{Entry: catalog.Entry{ID: "rsPharm", Gene: "CYP2D6"}}},
		[]catalog.ClinicalEntry{{Entry: catalog.Entry{ID: "rsClin", Gene: "HFE"}}},
		[]catalog.TraitEntry{{Entry: catalog.Entry{ID: "rsTrait", Gene: "MCM6"}, Trait: "Lactose"}},
	)
}

func TestScan_MatchesCatalogOnly(t *testing.T) {
	s := New(testCatalog())
	parser := &fakeParser{recs: []*vcf.Record{
		{ID: "rsClin", Chrom: "6", Pos: 100, Genotype: "0/1"},
		{ID: "rsNotCataloged", Chrom: "1", Pos: 200, Genotype: "1/1"},
		{ID: "rsTrait", Chrom: "2", Pos: 300, Genotype: "1|1"},
	}}

	got, err := s.Scan(parser)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "rsClin", got[0].ID)
	assert.True(t, got[0].IsHet)
	assert.False(t, got[0].IsHom)

	assert.Equal(t, "rsTrait", got[1].ID)
	assert.False(t, got[1].IsHet)
	assert.True(t, got[1].IsHom)
}

func TestScan_ReferenceCallsExcluded(t *testing.T) {
	s := New(testCatalog())
	parser := &fakeParser{recs: []*vcf.Record{
		{ID: "rsClin", Chrom: "6", Pos: 100, Genotype: "0/0"},
		{ID: "rsTrait", Chrom: "2", Pos: 300, Genotype: "./."},
		{ID: "rsPharm", Chrom: "22", Pos: 400, Genotype: ".|."},
	}}

	got, err := s.Scan(parser)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScan_UnrecognizedGenotypeKept(t *testing.T) {
	s := New(testCatalog())
	parser := &fakeParser{recs: []*vcf.Record{
		{ID: "rsPharm", Chrom: "22", Pos: 400, Genotype: "1/2"},
	}}

	got, err := s.Scan(parser)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsHet)
	assert.False(t, got[0].IsHom)
	assert.Equal(t, "1/2", got[0].Genotype)
}

func TestScan_DuplicateIDReplacedInPlace(t *testing.T) {
	s := New(testCatalog())
	parser := &fakeParser{recs: []*vcf.Record{
		{ID: "rsClin", Chrom: "6", Pos: 100, Genotype: "0/1"},
		{ID: "rsTrait", Chrom: "2", Pos: 300, Genotype: "0|1"},
		{ID: "rsClin", Chrom: "6", Pos: 100, Genotype: "1/1"},
	}}

	got, err := s.Scan(parser)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Later record wins, position in the list is preserved.
	assert.Equal(t, "rsClin", got[0].ID)
	assert.Equal(t, "1/1", got[0].Genotype)
	assert.True(t, got[0].IsHom)
	assert.Equal(t, "rsTrait", got[1].ID)
}

func TestScan_ParserError(t *testing.T) {
	s := New(testCatalog())
	parser := &fakeParser{err: errors.New("disk gone")}

	_, err := s.Scan(parser)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}
