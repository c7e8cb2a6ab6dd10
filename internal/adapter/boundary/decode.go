package boundary

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// fallbackNameProperty is consulted when the configured property is absent.
const fallbackNameProperty = "name"

// document holds either a FeatureCollection or a single Feature. Features stay
// raw so one undecodable feature cannot fail the whole document.
type document struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

type feature struct {
	Properties map[string]any    `json:"properties"`
	Geometry   *geojson.Geometry `json:"geometry"`
}

// Decode reads a GeoJSON FeatureCollection (or a single Feature) and returns
// one ZoneGeometry per usable feature, named by the normalized value of
// nameProperty. Unusable features are reported in GeometrySet.Skipped.
// Only an unreadable or non-GeoJSON document is an error.
func Decode(r io.Reader, nameProperty string) (domain.GeometrySet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.GeometrySet{}, fmt.Errorf("read geojson: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.GeometrySet{}, fmt.Errorf("parse geojson: %w", err)
	}

	var raws []json.RawMessage
	switch strings.ToLower(doc.Type) {
	case "featurecollection":
		raws = doc.Features
	case "feature":
		raws = []json.RawMessage{data}
	default:
		return domain.GeometrySet{}, fmt.Errorf("parse geojson: unsupported document type %q", doc.Type)
	}

	var set domain.GeometrySet
	for i, raw := range raws {
		zone, err := decodeFeature(raw, nameProperty)
		if err != nil {
			set.Skipped = append(set.Skipped, fmt.Errorf("feature %d: %w", i, err))
			continue
		}
		set.Zones = append(set.Zones, zone)
	}
	return set, nil
}

func decodeFeature(raw json.RawMessage, nameProperty string) (domain.ZoneGeometry, error) {
	var f feature
	if err := json.Unmarshal(raw, &f); err != nil {
		return domain.ZoneGeometry{}, fmt.Errorf("%w: %v", domain.ErrMalformedGeometry, err)
	}

	name := featureName(f.Properties, nameProperty)
	if name == "" {
		return domain.ZoneGeometry{}, fmt.Errorf("%w: no %q or %q property", domain.ErrUnnamedZone, nameProperty, fallbackNameProperty)
	}
	if f.Geometry == nil {
		return domain.ZoneGeometry{}, fmt.Errorf("%q: %w: missing geometry", name, domain.ErrMalformedGeometry)
	}

	g, err := f.Geometry.Decode()
	if err != nil {
		return domain.ZoneGeometry{}, fmt.Errorf("%q: %w: %v", name, domain.ErrMalformedGeometry, err)
	}

	shape, err := toMultiPolygon(g)
	if err != nil {
		return domain.ZoneGeometry{}, fmt.Errorf("%q: %w", name, err)
	}
	return domain.ZoneGeometry{Name: name, Shape: shape}, nil
}

// featureName coerces the name property to text and normalizes it. A blank
// configured property falls back too. Boundary names are never passed through
// the alias table.
func featureName(props map[string]any, nameProperty string) string {
	if name := propertyText(props[nameProperty]); name != "" {
		return name
	}
	return propertyText(props[fallbackNameProperty])
}

func propertyText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return domain.Normalize(x)
	default:
		return domain.Normalize(fmt.Sprint(x))
	}
}

// toMultiPolygon accepts Polygon and MultiPolygon geometries with at least one
// ring per polygon and at least MinRingPoints vertices per ring.
func toMultiPolygon(g geom.T) (*geom.MultiPolygon, error) {
	switch shape := g.(type) {
	case *geom.Polygon:
		if err := checkPolygon(shape); err != nil {
			return nil, err
		}
		mp, err := geom.NewMultiPolygon(shape.Layout()).SetCoords([][][]geom.Coord{shape.Coords()})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedGeometry, err)
		}
		return mp, nil
	case *geom.MultiPolygon:
		if shape.NumPolygons() == 0 {
			return nil, fmt.Errorf("%w: empty multipolygon", domain.ErrMalformedGeometry)
		}
		for i := 0; i < shape.NumPolygons(); i++ {
			if err := checkPolygon(shape.Polygon(i)); err != nil {
				return nil, fmt.Errorf("polygon %d: %w", i, err)
			}
		}
		return shape, nil
	default:
		return nil, fmt.Errorf("%w: unsupported geometry type %T", domain.ErrMalformedGeometry, g)
	}
}

func checkPolygon(p *geom.Polygon) error {
	if p.NumLinearRings() == 0 {
		return fmt.Errorf("%w: polygon has no rings", domain.ErrMalformedGeometry)
	}
	for i := 0; i < p.NumLinearRings(); i++ {
		if n := p.LinearRing(i).NumCoords(); n < domain.MinRingPoints {
			return fmt.Errorf("%w: ring %d has %d points", domain.ErrMalformedGeometry, i, n)
		}
	}
	return nil
}
