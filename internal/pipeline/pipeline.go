package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/couchcryptid/zone-load-map/internal/observability"
	"github.com/couchcryptid/zone-load-map/internal/render"
)

// RecordSource reads the tabular dataset.
type RecordSource interface {
	ReadRecords(ctx context.Context) ([]domain.Record, error)
}

// GeometrySource reads the zone boundaries.
type GeometrySource interface {
	LoadGeometries(ctx context.Context) (domain.GeometrySet, error)
}

// Page is a render.Canvas that can serialize itself.
type Page interface {
	render.Canvas
	WriteHTML(w io.Writer) error
}

// Result is the outcome of one run.
type Result struct {
	Records   int
	Counts    domain.Counts
	Total     int
	Summaries []domain.ZoneSummary
	Missing   []string // zones with records but no boundary
	Unaliased []string // labels that resolved to themselves
	Skipped   []error  // boundary features that could not be used
	HTML      []byte   // rendered page, empty when no Page was given
}

// Pipeline runs the load, aggregate, join, and render steps once.
type Pipeline struct {
	records    RecordSource
	geometries GeometrySource
	aliases    domain.AliasTable
	logger     *slog.Logger
	metrics    *observability.Metrics
	ready      atomic.Bool
	last       atomic.Pointer[Result]
}

// New creates a Pipeline with the given sources, alias table, and observability.
func New(records RecordSource, geometries GeometrySource, aliases domain.AliasTable, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		records:    records,
		geometries: geometries,
		aliases:    aliases,
		logger:     logger,
		metrics:    metrics,
	}
}

// CheckReadiness returns nil once a run has completed, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("map has not been built yet")
	}
	return nil
}

// Run reads both sources, joins them, and, when page is non-nil, draws the
// summaries onto it and keeps the serialized page. A source read failure
// aborts the run; malformed boundary features and unmatched zones do not.
func (p *Pipeline) Run(ctx context.Context, page Page) (*Result, error) {
	start := time.Now()

	records, err := p.records.ReadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	p.metrics.RecordsRead.Add(float64(len(records)))

	counts := domain.Aggregate(records, p.aliases)
	total := counts.Total()
	p.logger.Info("records aggregated", "records", len(records), "zones", len(counts), "total", total)

	unaliased := domain.UnaliasedLabels(records, p.aliases)
	for _, label := range unaliased {
		p.logger.Warn("label has no alias, using it as zone name", "label", label, "count", counts[label])
	}
	p.metrics.LabelsUnaliased.Set(float64(len(unaliased)))

	set, err := p.geometries.LoadGeometries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load geometries: %w", err)
	}
	for _, skipErr := range set.Skipped {
		p.logger.Warn("boundary feature skipped", "error", skipErr)
	}
	p.metrics.FeaturesLoaded.Add(float64(len(set.Zones)))
	p.metrics.FeaturesSkipped.Add(float64(len(set.Skipped)))

	summaries := domain.Join(set.Zones, counts, total)
	missing := domain.MissingZones(counts, set.Zones)
	for _, zone := range missing {
		p.logger.Warn("zone has records but no boundary, not drawn", "zone", zone, "count", counts[zone])
	}
	p.metrics.ZonesRendered.Set(float64(len(summaries)))
	p.metrics.ZonesMissing.Set(float64(len(missing)))

	result := &Result{
		Records:   len(records),
		Counts:    counts,
		Total:     total,
		Summaries: summaries,
		Missing:   missing,
		Unaliased: unaliased,
		Skipped:   set.Skipped,
	}

	if page != nil {
		render.Render(summaries, page)
		var buf bytes.Buffer
		if err := page.WriteHTML(&buf); err != nil {
			return nil, err
		}
		result.HTML = buf.Bytes()
		p.metrics.RenderedBytes.Set(float64(buf.Len()))
	}

	p.last.Store(result)
	p.ready.Store(true)
	p.metrics.PipelineReady.Set(1)
	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("map built",
		"zones", len(summaries),
		"missing_zones", len(missing),
		"skipped_features", len(set.Skipped),
		"share_sum", domain.ShareSum(summaries),
		"duration", time.Since(start),
	)
	return result, nil
}

// Page returns the last rendered page, or nil before the first run.
func (p *Pipeline) Page() []byte {
	if r := p.last.Load(); r != nil {
		return r.HTML
	}
	return nil
}

// Zones returns the summaries of the last run, or nil before the first run.
func (p *Pipeline) Zones() []domain.ZoneSummary {
	if r := p.last.Load(); r != nil {
		return r.Summaries
	}
	return nil
}
