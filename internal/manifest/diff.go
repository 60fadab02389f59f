package manifest

import "sort"

// categoryOrder fixes the reporting order of categories in diffs.
var categoryOrder = []string{"pharmacogenomic", "clinical", "traits"}

// Change is one rsID that appeared in or disappeared from the detail map
// between two runs.
type Change struct {
	ID       string
	Category string
	Gene     string
	Genotype string
}

// Diff is the reconciliation of two manifest snapshots. Added and Removed
// are grouped by category (pharmacogenomic, clinical, traits) and sorted
// by rsID within each category.
type Diff struct {
	Added   []Change
	Removed []Change
}

// Empty reports whether the two snapshots contained the same rsIDs.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Compare reconciles the previous and current manifests. The comparison
// is a set difference over the detail-map rsID domain, not a multiset.
// Details for removed rsIDs come from the previous manifest, since they
// no longer exist in the current one.
func Compare(previous, current *Manifest) Diff {
	prevIDs := previous.IDs()
	curIDs := current.IDs()

	var added, removed []string
	for id := range curIDs {
		if _, ok := prevIDs[id]; !ok {
			added = append(added, id)
		}
	}
	for id := range prevIDs {
		if _, ok := curIDs[id]; !ok {
			removed = append(removed, id)
		}
	}

	return Diff{
		Added:   group(added, current),
		Removed: group(removed, previous),
	}
}

// group orders changes by category then rsID, sourcing details from the
// given manifest.
func group(ids []string, src *Manifest) []Change {
	byCategory := make(map[string][]Change)
	for _, id := range ids {
		d := src.VariantDetails[id]
		byCategory[d.Category] = append(byCategory[d.Category], Change{
			ID:       id,
			Category: d.Category,
			Gene:     d.Gene,
			Genotype: d.Genotype,
		})
	}

	var out []Change
	for _, cat := range categoryOrder {
		changes := byCategory[cat]
		sort.Slice(changes, func(i, j int) bool { return changes[i].ID < changes[j].ID })
		out = append(out, changes...)
		delete(byCategory, cat)
	}

	// Categories outside the known vocabulary (foreign manifests) go last.
	var rest []string
	for cat := range byCategory {
		rest = append(rest, cat)
	}
	sort.Strings(rest)
	for _, cat := range rest {
		changes := byCategory[cat]
		sort.Slice(changes, func(i, j int) bool { return changes[i].ID < changes[j].ID })
		out = append(out, changes...)
	}

	return out
}
