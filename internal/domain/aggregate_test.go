package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	aliases := NewAliasTable(map[string]string{
		"UT HAGUENAU":        "HAGUENAU",
		"UT STRASBOURG NORD": "STRASBOURG-3",
		"UT STRASBOURG SUD":  "STRASBOURG-3",
	})

	t.Run("variants of one label", func(t *testing.T) {
		counts := Aggregate(records("UT HAGUENAU", "UT HAGUENAU", "ut haguenau  "), aliases)
		assert.Equal(t, Counts{"HAGUENAU": 3}, counts)
		assert.Equal(t, 3, counts.Total())
	})

	t.Run("several labels share a zone", func(t *testing.T) {
		counts := Aggregate(records("UT STRASBOURG NORD", "UT STRASBOURG SUD", "UT HAGUENAU"), aliases)
		assert.Equal(t, Counts{"STRASBOURG-3": 2, "HAGUENAU": 1}, counts)
	})

	t.Run("unmapped label is its own zone", func(t *testing.T) {
		counts := Aggregate(records("UT INCONNU", "ut inconnu"), aliases)
		assert.Equal(t, Counts{"UT INCONNU": 2}, counts)
	})

	t.Run("empty input", func(t *testing.T) {
		counts := Aggregate(nil, aliases)
		assert.Empty(t, counts)
		assert.Equal(t, 0, counts.Total())
	})
}

func TestAggregate_TotalMatchesRecordCount(t *testing.T) {
	aliases := NewAliasTable(map[string]string{"UT OBERNAI": "OBERNAI"})
	recs := records("UT OBERNAI", "", "UT ERSTEIN", " ", "ut obernai", "UT\nERSTEIN", "x")
	assert.Equal(t, len(recs), Aggregate(recs, aliases).Total())
}

func TestUnaliasedLabels(t *testing.T) {
	aliases := NewAliasTable(map[string]string{"UT HAGUENAU": "HAGUENAU"})
	got := UnaliasedLabels(records("UT HAGUENAU", "ut inconnu", "UT INCONNU", "UT ERSTEIN"), aliases)
	assert.Equal(t, []string{"UT ERSTEIN", "UT INCONNU"}, got)
}
