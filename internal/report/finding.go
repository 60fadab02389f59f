// Package report joins scanned variants with catalog annotations and
// renders the analysis report and its manifest.
package report

import (
	"sort"
	"strings"
	"time"

	"genomewatch/internal/catalog"
	"genomewatch/internal/manifest"
	"genomewatch/internal/scan"
)

// PharmFinding is one matched pharmacogenomic variant with its catalog
// entry. Immutable once created for a run.
type PharmFinding struct {
	catalog.PharmEntry
	Var scan.Observed
}

// ClinicalFinding is one matched clinical variant with its catalog entry.
type ClinicalFinding struct {
	catalog.ClinicalEntry
	Var scan.Observed
}

// TraitFinding is one matched trait variant with its catalog entry.
type TraitFinding struct {
	catalog.TraitEntry
	Var scan.Observed
}

// Findings holds the per-category finding lists for one run. An rsID
// cataloged under more than one category appears once per category.
type Findings struct {
	Pharm    []PharmFinding
	Clinical []ClinicalFinding
	Traits   []TraitFinding
}

// Total returns the finding count across categories.
func (f Findings) Total() int {
	return len(f.Pharm) + len(f.Clinical) + len(f.Traits)
}

// Join matches observed variants against the catalog, preserving
// encounter order within each category.
func Join(cat *catalog.Catalog, observed []scan.Observed) Findings {
	var f Findings
	for _, obs := range observed {
		if e, ok := cat.Pharmacogenomic(obs.ID); ok {
			f.Pharm = append(f.Pharm, PharmFinding{PharmEntry: e, Var: obs})
		}
		if e, ok := cat.Clinical(obs.ID); ok {
			f.Clinical = append(f.Clinical, ClinicalFinding{ClinicalEntry: e, Var: obs})
		}
		if e, ok := cat.Trait(obs.ID); ok {
			f.Traits = append(f.Traits, TraitFinding{TraitEntry: e, Var: obs})
		}
	}
	return f
}

// Interpretation selects the zygosity-dependent text for an observed
// variant: the heterozygous text when the genotype is heterozygous,
// otherwise the homozygous-alternate text. Genotypes matching neither
// recognized pattern (e.g. multi-allelic 1/2 calls) deliberately fall
// through to the homozygous-alternate text.
func Interpretation(e catalog.Entry, v scan.Observed) string {
	if v.IsHet {
		return e.IfHet
	}
	return e.IfHomAlt
}

// IsProtective reports whether either interpretation describes the
// variant as protective; such clinical findings are promoted visually.
func IsProtective(e catalog.Entry) bool {
	return strings.Contains(strings.ToLower(e.IfHet), "protective") ||
		strings.Contains(strings.ToLower(e.IfHomAlt), "protective")
}

// sortPharm orders pharmacogenomic findings by descending severity rank,
// keeping encounter order within a rank.
func sortPharm(fs []PharmFinding) {
	sort.SliceStable(fs, func(i, j int) bool {
		return fs[i].Severity.Rank() > fs[j].Severity.Rank()
	})
}

// traitGroups partitions trait findings by sub-category, sub-categories
// in lexical order, findings in encounter order within each.
func traitGroups(fs []TraitFinding) ([]string, map[string][]TraitFinding) {
	groups := make(map[string][]TraitFinding)
	for _, f := range fs {
		sub := f.SubCategory
		if sub == "" {
			sub = "Other"
		}
		groups[sub] = append(groups[sub], f)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, groups
}

// BuildManifest derives the run manifest from the finding lists. Pure and
// deterministic: identifier list order matches finding order.
func BuildManifest(generated time.Time, f Findings) *manifest.Manifest {
	conv := func(id, gene string, v scan.Observed) manifest.Finding {
		return manifest.Finding{
			ID:       id,
			Gene:     gene,
			Chrom:    v.Chrom,
			Pos:      v.Pos,
			Genotype: v.Genotype,
			IsHet:    v.IsHet,
			IsHom:    v.IsHom,
		}
	}

	pharm := make([]manifest.Finding, len(f.Pharm))
	for i, p := range f.Pharm {
		pharm[i] = conv(p.ID, p.Gene, p.Var)
	}
	clinical := make([]manifest.Finding, len(f.Clinical))
	for i, c := range f.Clinical {
		clinical[i] = conv(c.ID, c.Gene, c.Var)
	}
	traits := make([]manifest.Finding, len(f.Traits))
	for i, t := range f.Traits {
		traits[i] = conv(t.ID, t.Gene, t.Var)
	}

	return manifest.Build(generated, pharm, clinical, traits)
}
