// Package vcf provides streaming VCF record parsing with genotype calls.
package vcf

import "strings"

// Reference-call genotype tokens. Records carrying one of these hold no
// non-reference allele and are never of interest.
var referenceCalls = map[string]bool{
	"0/0": true,
	"0|0": true,
	"./.": true,
	".|.": true,
}

// Record represents a single genotyped variant line from a VCF file.
type Record struct {
	Chrom    string   // Chromosome name (e.g., "12", "chr12")
	Pos      int64    // 1-based genomic position
	ID       string   // Variant identifier (e.g., rs ID)
	Ref      string   // Reference allele
	Alts     []string // Alternate alleles, in VCF order
	Genotype string   // First colon-delimited field of the sample column
}

// IsReferenceCall returns true if the genotype carries no alternate allele
// (0/0, 0|0, ./. or .|.).
func (r *Record) IsReferenceCall() bool {
	return referenceCalls[r.Genotype]
}

// IsHeterozygous returns true for one reference and one first-alternate
// allele, in either order and either phasing separator.
func (r *Record) IsHeterozygous() bool {
	switch r.Genotype {
	case "0/1", "1/0", "0|1", "1|0":
		return true
	}
	return false
}

// IsHomozygousAlt returns true for two copies of the first alternate
// allele, in either phasing separator.
func (r *Record) IsHomozygousAlt() bool {
	return r.Genotype == "1/1" || r.Genotype == "1|1"
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (r *Record) NormalizeChrom() string {
	if strings.HasPrefix(r.Chrom, "chr") {
		return r.Chrom[3:]
	}
	return r.Chrom
}
