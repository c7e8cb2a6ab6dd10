package domain

import "sort"

// AliasTable maps normalized dataset labels to canonical zone names.
// Keys and values are always normalized; build one with NewAliasTable.
type AliasTable struct {
	entries map[string]string
}

// NewAliasTable normalizes every pair so lookups against normalized labels
// hit regardless of how the configuration was written.
func NewAliasTable(pairs map[string]string) AliasTable {
	entries := make(map[string]string, len(pairs))
	for label, canonical := range pairs {
		entries[Normalize(label)] = Normalize(canonical)
	}
	return AliasTable{entries: entries}
}

// Lookup returns the canonical name for a normalized label and whether the
// table has an entry for it.
func (t AliasTable) Lookup(label string) (string, bool) {
	canonical, ok := t.entries[label]
	return canonical, ok
}

// Resolve returns the canonical name for a normalized label, or the label
// itself when the table has no entry.
func (t AliasTable) Resolve(label string) string {
	if canonical, ok := t.entries[label]; ok {
		return canonical
	}
	return label
}

// Len reports the number of aliases.
func (t AliasTable) Len() int { return len(t.entries) }

// Labels returns the table's keys in sorted order.
func (t AliasTable) Labels() []string {
	labels := make([]string, 0, len(t.entries))
	for label := range t.entries {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
