// Package manifest defines the durable record of one analysis run and the
// machinery to embed it in reports, recover it, and diff it across runs.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Manifest summarizes one analysis run. It is written both as a
// standalone JSON file and as an embedded block inside the report
// document, and is the input to change detection on the next run.
type Manifest struct {
	Generated     string            `json:"generated"`
	TotalVariants int               `json:"total_variants"`
	Variants      Categories        `json:"variants"`
	VariantDetails map[string]Detail `json:"variant_details"`
}

// Categories holds the per-category rsID lists, in finding encounter
// order (not re-sorted).
type Categories struct {
	Pharmacogenomic []string `json:"pharmacogenomic"`
	Clinical        []string `json:"clinical"`
	Traits          []string `json:"traits"`
}

// Detail is the per-rsID record in the detail map. An rsID present in
// more than one category keeps only the last-written category here; the
// category lists remain the per-category source of truth.
type Detail struct {
	Category string `json:"category"`
	Gene     string `json:"gene"`
	Chrom    string `json:"chr"`
	Pos      int64  `json:"pos"`
	Genotype string `json:"genotype"`
	IsHet    bool   `json:"is_het"`
	IsHom    bool   `json:"is_hom"`
}

// Finding is the per-category input to Build: one matched variant joined
// with its catalog gene.
type Finding struct {
	ID       string
	Gene     string
	Chrom    string
	Pos      int64
	Genotype string
	IsHet    bool
	IsHom    bool
}

// Build constructs a manifest from the three finding lists. The result is
// deterministic for identical inputs: list order follows input order, and
// details are written pharmacogenomic, clinical, traits, so on a
// cross-category rsID the traits detail wins.
func Build(generated time.Time, pharm, clinical, traits []Finding) *Manifest {
	m := &Manifest{
		Generated:     generated.Format(time.RFC3339),
		TotalVariants: len(pharm) + len(clinical) + len(traits),
		Variants: Categories{
			Pharmacogenomic: make([]string, 0, len(pharm)),
			Clinical:        make([]string, 0, len(clinical)),
			Traits:          make([]string, 0, len(traits)),
		},
		VariantDetails: make(map[string]Detail),
	}

	add := func(category string, fs []Finding, list *[]string) {
		for _, f := range fs {
			*list = append(*list, f.ID)
			m.VariantDetails[f.ID] = Detail{
				Category: category,
				Gene:     f.Gene,
				Chrom:    f.Chrom,
				Pos:      f.Pos,
				Genotype: f.Genotype,
				IsHet:    f.IsHet,
				IsHom:    f.IsHom,
			}
		}
	}
	add("pharmacogenomic", pharm, &m.Variants.Pharmacogenomic)
	add("clinical", clinical, &m.Variants.Clinical)
	add("traits", traits, &m.Variants.Traits)

	return m
}

// JSON renders the manifest as indented JSON, the exact bytes that are
// embedded in reports and written to the standalone file.
func (m *Manifest) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Parse decodes and validates manifest JSON.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// validate checks the list/detail-map invariant: every listed rsID must
// have a detail entry.
func (m *Manifest) validate() error {
	if m.VariantDetails == nil {
		m.VariantDetails = make(map[string]Detail)
	}
	for _, list := range [][]string{
		m.Variants.Pharmacogenomic, m.Variants.Clinical, m.Variants.Traits,
	} {
		for _, id := range list {
			if _, ok := m.VariantDetails[id]; !ok {
				return fmt.Errorf("manifest: %s listed but missing from variant_details", id)
			}
		}
	}
	return nil
}

// Load reads and parses a standalone manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// IDs returns the set of rsIDs in the detail map, the identifier domain
// used for diffing.
func (m *Manifest) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(m.VariantDetails))
	for id := range m.VariantDetails {
		ids[id] = struct{}{}
	}
	return ids
}
