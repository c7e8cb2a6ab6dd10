package domain

import "sort"

// Counts is the number of records per canonical zone name.
type Counts map[string]int

// Total is the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CanonicalZone normalizes a raw label and resolves it through the alias table.
func CanonicalZone(label string, aliases AliasTable) string {
	return aliases.Resolve(Normalize(label))
}

// Aggregate tallies records per canonical zone.
func Aggregate(records []Record, aliases AliasTable) Counts {
	counts := make(Counts)
	for _, rec := range records {
		counts[CanonicalZone(rec.ZoneLabel, aliases)]++
	}
	return counts
}

// UnaliasedLabels lists, sorted and without duplicates, the normalized labels
// that had no alias entry and therefore resolved to themselves.
func UnaliasedLabels(records []Record, aliases AliasTable) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		label := Normalize(rec.ZoneLabel)
		if _, ok := aliases.Lookup(label); !ok {
			seen[label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
