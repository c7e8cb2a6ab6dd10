package domain

import (
	"errors"

	"github.com/twpayne/go-geom"
)

// ErrMalformedGeometry marks a boundary feature whose geometry is not a
// Polygon or MultiPolygon, or has a ring with fewer than three points.
var ErrMalformedGeometry = errors.New("malformed geometry")

// ErrUnnamedZone marks a boundary feature whose name property is absent or
// blank. Such a feature would otherwise join records with an empty label.
var ErrUnnamedZone = errors.New("unnamed zone")

// MinRingPoints is the smallest number of vertices a ring may have.
const MinRingPoints = 3

// Record is one row of the tabular source.
type Record struct {
	Row       int    // 1-based data row, header excluded
	ZoneLabel string // raw zone label as read from the source
}

// ZoneGeometry is one named boundary. Polygons are stored as single-element
// multipolygons so callers handle one shape type.
type ZoneGeometry struct {
	Name  string
	Shape *geom.MultiPolygon
}

// ZoneSummary is the join result for one boundary.
type ZoneSummary struct {
	Name     string             `json:"name"`
	Shape    *geom.MultiPolygon `json:"-"`
	Count    int                `json:"count"`
	SharePct float64            `json:"share_pct"`
}

// GeometrySet is the outcome of loading a boundary collection. Features that
// could not be used are reported in Skipped, one error each, and never abort
// the load of the others.
type GeometrySet struct {
	Zones   []ZoneGeometry
	Skipped []error
}
