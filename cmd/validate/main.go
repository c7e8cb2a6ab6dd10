// Command validate builds the zone load summary without rendering it and
// checks the data for the silent failure modes of the join: record totals,
// skipped boundary features, zones with records but no boundary, duplicate
// boundary names, and load shares that do not add up.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -records data_med_icp.csv -column UT_x \
//	  -geometry alsace_map.geojson -name-property nom \
//	  [-aliases aliases.yaml] [-strict]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/couchcryptid/zone-load-map/internal/adapter/boundary"
	"github.com/couchcryptid/zone-load-map/internal/adapter/tabular"
	"github.com/couchcryptid/zone-load-map/internal/config"
	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/couchcryptid/zone-load-map/internal/observability"
	"github.com/couchcryptid/zone-load-map/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
)

// shareTolerance absorbs per-zone rounding to two decimals.
const shareTolerance = 0.5

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	recordsPath := flag.String("records", "", "path to the CSV or XLSX record file")
	column := flag.String("column", "UT_x", "zone label column")
	sheet := flag.String("sheet", "", "XLSX sheet (default: first)")
	geometryPath := flag.String("geometry", "", "path to the GeoJSON boundary file")
	nameProperty := flag.String("name-property", "nom", "feature property holding the zone name")
	aliasPath := flag.String("aliases", "", "YAML alias file (default: built-in table)")
	strict := flag.Bool("strict", false, "fail when a record label has no alias entry")
	flag.Parse()

	if *recordsPath == "" || *geometryPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	aliases := config.DefaultAliases()
	if *aliasPath != "" {
		var err error
		aliases, err = config.LoadAliases(*aliasPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
			os.Exit(1)
		}
	}

	p := pipeline.New(
		tabular.NewReader(*recordsPath, *column, *sheet),
		boundary.NewLoader(*geometryPath, *nameProperty),
		aliases,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NewMetricsWithRegistry(prometheus.NewRegistry()),
	)

	if code := run(p, *strict); code != 0 {
		os.Exit(code)
	}
}

func run(p *pipeline.Pipeline, strict bool) int {
	fmt.Println("=== Zone Load Data Validation ===")
	fmt.Println()

	result, err := p.Run(context.Background(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateRecords(result),
		validateGeometry(result),
		validateCoverage(result),
		validateShares(result),
	}
	if strict {
		phases = append(phases, validateAliases(result))
	}

	allPassed := true
	for _, ph := range phases {
		status := "\033[32mPASS\033[0m"
		if !ph.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(ph.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", ph.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d, zones drawn: %d, share sum: %.2f%%\n",
		result.Records, len(result.Summaries), domain.ShareSum(result.Summaries))
	if !strict && len(result.Unaliased) > 0 {
		fmt.Printf("Note: %d label(s) without alias entry: %v\n", len(result.Unaliased), result.Unaliased)
	}

	for _, ph := range phases {
		if ph.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", ph.name)
		for i, e := range ph.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Records ──

func validateRecords(r *pipeline.Result) *phase {
	p := &phase{name: "Phase 1: Records (aggregation totals)"}
	if r.Records == 0 {
		p.errorf("no records read")
	}
	if r.Total != r.Records {
		p.errorf("aggregated total %d differs from record count %d", r.Total, r.Records)
	}
	if n := r.Counts[""]; n > 0 {
		p.errorf("%d record(s) have an empty zone label", n)
	}
	return p
}

// ── Phase 2: Geometry ──

func validateGeometry(r *pipeline.Result) *phase {
	p := &phase{name: "Phase 2: Geometry (boundary features)"}
	for _, err := range r.Skipped {
		p.errorf("skipped: %v", err)
	}
	seen := map[string]int{}
	for _, s := range r.Summaries {
		seen[s.Name]++
	}
	for name, n := range seen {
		if n > 1 {
			p.errorf("boundary name %q appears %d times; its count is drawn %d times", name, n, n)
		}
	}
	return p
}

// ── Phase 3: Coverage ──

func validateCoverage(r *pipeline.Result) *phase {
	p := &phase{name: "Phase 3: Coverage (zones without boundary)"}
	for _, zone := range r.Missing {
		p.errorf("zone %q has %d record(s) but no boundary; they are not drawn", zone, r.Counts[zone])
	}
	return p
}

// ── Phase 4: Shares ──

func validateShares(r *pipeline.Result) *phase {
	p := &phase{name: "Phase 4: Shares (load share sum)"}
	for _, s := range r.Summaries {
		if s.SharePct < 0 || s.SharePct > 100 {
			p.errorf("zone %q share %.2f outside [0, 100]", s.Name, s.SharePct)
		}
	}
	if r.Total == 0 {
		return p
	}

	sum := domain.ShareSum(r.Summaries)
	if len(r.Missing) == 0 {
		if math.Abs(sum-100) > shareTolerance {
			p.errorf("share sum %.2f is more than %.1f away from 100", sum, shareTolerance)
		}
	} else if sum >= 100 {
		p.errorf("share sum %.2f should be below 100 when zones are missing", sum)
	}
	return p
}

// ── Phase 5: Aliases (strict) ──

func validateAliases(r *pipeline.Result) *phase {
	p := &phase{name: "Phase 5: Aliases (strict)"}
	for _, label := range r.Unaliased {
		p.errorf("label %q has no alias entry (%d record(s))", label, r.Counts[label])
	}
	return p
}
