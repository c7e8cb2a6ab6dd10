package domain

import (
	"math"
	"sort"
)

// Join attaches a count and load share to every geometry, in input order.
// Geometries without a matching zone get a zero count. Zones without a
// geometry are not emitted but still contribute to total.
func Join(geoms []ZoneGeometry, counts Counts, total int) []ZoneSummary {
	summaries := make([]ZoneSummary, 0, len(geoms))
	for _, g := range geoms {
		count := counts[g.Name]
		summaries = append(summaries, ZoneSummary{
			Name:     g.Name,
			Shape:    g.Shape,
			Count:    count,
			SharePct: sharePct(count, total),
		})
	}
	return summaries
}

// sharePct returns count/total as a percentage rounded to two decimals,
// halves to even.
func sharePct(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(count) / float64(total) * 100
	return math.RoundToEven(pct*100) / 100
}

// MissingZones returns, sorted, the zones with a nonzero count and no
// geometry of the same name. Their records are counted in the total but
// never drawn.
func MissingZones(counts Counts, geoms []ZoneGeometry) []string {
	known := make(map[string]struct{}, len(geoms))
	for _, g := range geoms {
		known[g.Name] = struct{}{}
	}
	var missing []string
	for zone, n := range counts {
		if n == 0 {
			continue
		}
		if _, ok := known[zone]; !ok {
			missing = append(missing, zone)
		}
	}
	sort.Strings(missing)
	return missing
}

// ShareSum adds up the load shares of all summaries.
func ShareSum(summaries []ZoneSummary) float64 {
	sum := 0.0
	for _, s := range summaries {
		sum += s.SharePct
	}
	return sum
}
