// Package catalog provides the curated variant annotation catalog.
//
// The catalog is a static mapping from rsID to clinical, pharmacogenomic
// and trait annotations. It is constructed once and injected into the
// scanner and report synthesizer; there is no package-level state, so
// tests can run against small synthetic catalogs.
package catalog

// Category identifies which section of the catalog an entry belongs to.
// The values double as the category strings written to the manifest.
type Category string

const (
	Pharmacogenomic Category = "pharmacogenomic"
	Clinical        Category = "clinical"
	Trait           Category = "traits"
)

// Severity tags pharmacogenomic entries by clinical importance.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Rank returns a numeric rank for severity ordering (higher = more
// severe). Entries without a tag rank as medium.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityLow:
		return 0
	default:
		return 1
	}
}

// Entry holds the fields shared by all catalog categories. The same rsID
// may legitimately appear in more than one category (e.g. a caffeine
// metabolism variant is both a drug-response marker and a trait marker).
type Entry struct {
	ID       string   // rsID, unique within its category
	Gene     string   // gene symbol
	Variant  string   // named variant (e.g. "C282Y", "*2"), empty if none
	IfHet    string   // interpretation for the heterozygous state
	IfHomAlt string   // interpretation for the homozygous-alternate state
	Severity Severity // optional importance tag
	Note     string   // optional free-text note
	Action   string   // optional recommended action
}

// PharmEntry is a pharmacogenomic catalog entry.
type PharmEntry struct {
	Entry
	Drugs string // affected drugs
}

// ClinicalEntry is a clinical disease-risk catalog entry.
type ClinicalEntry struct {
	Entry
	Condition string // associated condition
}

// TraitEntry is a trait catalog entry.
type TraitEntry struct {
	Entry
	Trait       string // trait name
	SubCategory string // trait grouping (e.g. "Appearance", "Taste")
}

// Catalog is an immutable lookup from rsID to annotation entries.
type Catalog struct {
	pharm    map[string]PharmEntry
	clinical map[string]ClinicalEntry
	traits   map[string]TraitEntry
}

// New builds a catalog from per-category entry lists.
func New(pharm []PharmEntry, clinical []ClinicalEntry, traits []TraitEntry) *Catalog {
	c := &Catalog{
		pharm:    make(map[string]PharmEntry, len(pharm)),
		clinical: make(map[string]ClinicalEntry, len(clinical)),
		traits:   make(map[string]TraitEntry, len(traits)),
	}
	for _, e := range pharm {
		c.pharm[e.ID] = e
	}
	for _, e := range clinical {
		c.clinical[e.ID] = e
	}
	for _, e := range traits {
		c.traits[e.ID] = e
	}
	return c
}

// IDs returns the set of all rsIDs known to the catalog, across
// categories.
func (c *Catalog) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, c.Size())
	for id := range c.pharm {
		ids[id] = struct{}{}
	}
	for id := range c.clinical {
		ids[id] = struct{}{}
	}
	for id := range c.traits {
		ids[id] = struct{}{}
	}
	return ids
}

// Contains reports whether the catalog knows the rsID in any category.
func (c *Catalog) Contains(id string) bool {
	if _, ok := c.pharm[id]; ok {
		return true
	}
	if _, ok := c.clinical[id]; ok {
		return true
	}
	_, ok := c.traits[id]
	return ok
}

// Pharmacogenomic looks up a pharmacogenomic entry by rsID.
func (c *Catalog) Pharmacogenomic(id string) (PharmEntry, bool) {
	e, ok := c.pharm[id]
	return e, ok
}

// Clinical looks up a clinical entry by rsID.
func (c *Catalog) Clinical(id string) (ClinicalEntry, bool) {
	e, ok := c.clinical[id]
	return e, ok
}

// Trait looks up a trait entry by rsID.
func (c *Catalog) Trait(id string) (TraitEntry, bool) {
	e, ok := c.traits[id]
	return e, ok
}

// Size returns the total entry count across categories. An rsID present
// in two categories counts twice.
func (c *Catalog) Size() int {
	return len(c.pharm) + len(c.clinical) + len(c.traits)
}
