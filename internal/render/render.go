// Package render turns zone summaries into draw calls on a Canvas.
//
// This is the only place where coordinates change axis order: domain
// geometry is (longitude, latitude), Canvas points are (latitude, longitude).
package render

import (
	"fmt"
	"html"

	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/twpayne/go-geom"
)

// LatLng is a map point in (latitude, longitude) order.
type LatLng [2]float64

// PolygonStyle describes how a zone outline is drawn.
type PolygonStyle struct {
	Color       string  `json:"color"`
	Fill        bool    `json:"fill"`
	FillOpacity float64 `json:"fillOpacity"`
}

// MarkerStyle describes a circle marker.
type MarkerStyle struct {
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
	Fill        bool    `json:"fill"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Canvas accepts draw calls. A polygon is its outer ring followed by any
// holes. Tooltip and popup text may contain HTML.
type Canvas interface {
	AddPolygon(rings [][]LatLng, style PolygonStyle, tooltip string)
	AddCircleMarker(at LatLng, style MarkerStyle, popup string)
}

// Default styles: blue translucent zones, red load markers.
var (
	ZoneStyle   = PolygonStyle{Color: "blue", Fill: true, FillOpacity: 0.5}
	MarkerPaint = MarkerStyle{Radius: 6, Color: "red", Fill: true, FillOpacity: 0.9}
)

// Render draws every ring of every polygon of every zone, then a marker
// at the approximate centroid of each zone with at least one record. Zones
// with a zero count are still drawn.
func Render(summaries []domain.ZoneSummary, canvas Canvas) {
	for _, s := range summaries {
		tooltip := Tooltip(s)
		for _, rings := range polygonRings(s.Shape) {
			canvas.AddPolygon(rings, ZoneStyle, tooltip)
		}
	}

	for _, s := range summaries {
		if s.Count <= 0 {
			continue
		}
		c, ok := domain.Centroid(s.Shape)
		if !ok {
			continue
		}
		canvas.AddCircleMarker(LatLng{c.Y(), c.X()}, MarkerPaint, Popup(s))
	}
}

// Tooltip is the hover text of a zone polygon.
func Tooltip(s domain.ZoneSummary) string {
	return fmt.Sprintf("%s<br>Records: %d<br>Load share: %.2f%%", html.EscapeString(s.Name), s.Count, s.SharePct)
}

// Popup is the click text of a zone marker.
func Popup(s domain.ZoneSummary) string {
	return fmt.Sprintf("%s<br>Records: %d", html.EscapeString(s.Name), s.Count)
}

// polygonRings returns, per polygon, its rings in (latitude, longitude)
// order: the outer ring first, then the holes.
func polygonRings(shape *geom.MultiPolygon) [][][]LatLng {
	if shape == nil {
		return nil
	}
	polys := make([][][]LatLng, 0, shape.NumPolygons())
	for i := 0; i < shape.NumPolygons(); i++ {
		poly := shape.Polygon(i)
		if poly.NumLinearRings() == 0 {
			continue
		}
		rings := make([][]LatLng, poly.NumLinearRings())
		for j := range rings {
			rings[j] = swapAxes(poly.LinearRing(j).Coords())
		}
		polys = append(polys, rings)
	}
	return polys
}

func swapAxes(coords []geom.Coord) []LatLng {
	out := make([]LatLng, len(coords))
	for i, c := range coords {
		out[i] = LatLng{c.Y(), c.X()}
	}
	return out
}
