package vcf

import "testing"

func TestRecord_GenotypeClassification(t *testing.T) {
	tests := []struct {
		genotype string
		isRef    bool
		isHet    bool
		isHom    bool
	}{
		{"0/0", true, false, false},
		{"0|0", true, false, false},
		{"./.", true, false, false},
		{".|.", true, false, false},
		{"0/1", false, true, false},
		{"1/0", false, true, false},
		{"0|1", false, true, false},
		{"1|0", false, true, false},
		{"1/1", false, false, true},
		{"1|1", false, false, true},
		// Unrecognized tokens carry no zygosity flags.
		{"1/2", false, false, false},
		{"2/2", false, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		r := Record{Genotype: tt.genotype}
		if got := r.IsReferenceCall(); got != tt.isRef {
			t.Errorf("IsReferenceCall(%q) = %v, want %v", tt.genotype, got, tt.isRef)
		}
		if got := r.IsHeterozygous(); got != tt.isHet {
			t.Errorf("IsHeterozygous(%q) = %v, want %v", tt.genotype, got, tt.isHet)
		}
		if got := r.IsHomozygousAlt(); got != tt.isHom {
			t.Errorf("IsHomozygousAlt(%q) = %v, want %v", tt.genotype, got, tt.isHom)
		}
	}
}

func TestRecord_NormalizeChrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chr1", "1"},
		{"1", "1"},
		{"chrX", "X"},
		{"MT", "MT"},
	}
	for _, tt := range tests {
		r := Record{Chrom: tt.in}
		if got := r.NormalizeChrom(); got != tt.want {
			t.Errorf("NormalizeChrom(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
