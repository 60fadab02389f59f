// Package scan streams a genotyped VCF file and collects the variants of
// interest.
package scan

import (
	"fmt"

	"go.uber.org/zap"

	"genomewatch/internal/catalog"
	"genomewatch/internal/vcf"
)

// progressInterval is how many non-reference records pass between
// progress log lines.
const progressInterval = 500000

// Observed is one variant found in the scanned file whose rsID is in the
// catalog and whose genotype carries at least one non-reference allele.
// Instances live for the duration of a run; only the derived finding and
// manifest records are persisted.
type Observed struct {
	ID       string
	Chrom    string
	Pos      int64
	Ref      string
	Alts     []string
	Genotype string
	IsHet    bool
	IsHom    bool
}

// RecordParser reads genotyped records one at a time. *vcf.Parser
// implements it.
type RecordParser interface {
	Next() (*vcf.Record, error)
	Close() error
}

// Scanner intersects a variant stream against a catalog's rsID set.
type Scanner struct {
	cat    *catalog.Catalog
	logger *zap.Logger
}

// New creates a scanner over the given catalog.
func New(cat *catalog.Catalog) *Scanner {
	return &Scanner{cat: cat, logger: zap.NewNop()}
}

// SetLogger sets the logger for progress and summary messages.
func (s *Scanner) SetLogger(l *zap.Logger) {
	s.logger = l
}

// Scan consumes the parser in one forward pass and returns matches in
// encounter order. Reference calls are excluded unconditionally; a record
// whose genotype matches neither the heterozygous nor the homozygous-alt
// pattern is kept with both booleans false. A later record with the same
// rsID replaces the earlier match in place.
func (s *Scanner) Scan(parser RecordParser) ([]Observed, error) {
	var matches []Observed
	index := make(map[string]int)
	checked := 0

	for {
		rec, err := parser.Next()
		if err != nil {
			return nil, fmt.Errorf("read variant: %w", err)
		}
		if rec == nil {
			break
		}

		if rec.IsReferenceCall() {
			continue
		}

		checked++
		if checked%progressInterval == 0 {
			s.logger.Info("scanning", zap.Int("variants_checked", checked))
		}

		if !s.cat.Contains(rec.ID) {
			continue
		}

		obs := Observed{
			ID:       rec.ID,
			Chrom:    rec.Chrom,
			Pos:      rec.Pos,
			Ref:      rec.Ref,
			Alts:     rec.Alts,
			Genotype: rec.Genotype,
			IsHet:    rec.IsHeterozygous(),
			IsHom:    rec.IsHomozygousAlt(),
		}

		if i, seen := index[rec.ID]; seen {
			matches[i] = obs
			continue
		}
		index[rec.ID] = len(matches)
		matches = append(matches, obs)
	}

	s.logger.Info("scan complete",
		zap.Int("variants_checked", checked),
		zap.Int("matches", len(matches)))

	return matches, nil
}
