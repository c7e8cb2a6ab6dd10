package leaflet

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/couchcryptid/zone-load-map/internal/render"
)

//go:embed map.html.tmpl
var pageTemplate string

var page = template.Must(template.New("map").Parse(pageTemplate))

// TileLayer is the base map imagery.
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	TileSize    int    `json:"tileSize"`
	ZoomOffset  int    `json:"zoomOffset"`
}

// OpenStreetMapTiles is the default, keyless base layer.
func OpenStreetMapTiles() TileLayer {
	return TileLayer{
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
		TileSize:    256,
	}
}

// MapboxTiles serves the Mapbox streets style with the given access token.
func MapboxTiles(token string) TileLayer {
	return TileLayer{
		URL:         "https://api.mapbox.com/styles/v1/mapbox/streets-v12/tiles/{z}/{x}/{y}?access_token=" + url.QueryEscape(token),
		Attribution: `&copy; <a href="https://www.mapbox.com/about/maps/">Mapbox</a> &copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a>`,
		TileSize:    512,
		ZoomOffset:  -1,
	}
}

type polygonLayer struct {
	Rings   [][]render.LatLng   `json:"rings"`
	Style   render.PolygonStyle `json:"style"`
	Tooltip string              `json:"tooltip"`
}

type markerLayer struct {
	At    render.LatLng      `json:"at"`
	Style render.MarkerStyle `json:"style"`
	Popup string             `json:"popup"`
}

// Map collects draw calls and writes them as a standalone Leaflet page.
// It implements render.Canvas.
type Map struct {
	title    string
	center   render.LatLng
	zoom     int
	tiles    TileLayer
	polygons []polygonLayer
	markers  []markerLayer
}

// NewMap creates an empty map centered on center at the given zoom level.
func NewMap(title string, center render.LatLng, zoom int, tiles TileLayer) *Map {
	return &Map{title: title, center: center, zoom: zoom, tiles: tiles}
}

func (m *Map) AddPolygon(rings [][]render.LatLng, style render.PolygonStyle, tooltip string) {
	m.polygons = append(m.polygons, polygonLayer{Rings: rings, Style: style, Tooltip: tooltip})
}

func (m *Map) AddCircleMarker(at render.LatLng, style render.MarkerStyle, popup string) {
	m.markers = append(m.markers, markerLayer{At: at, Style: style, Popup: popup})
}

// Layers reports how many polygons and markers have been drawn.
func (m *Map) Layers() (polygons, markers int) {
	return len(m.polygons), len(m.markers)
}

type pageData struct {
	Title       string
	Center      render.LatLng
	Zoom        int
	Tiles       TileLayer
	Polygons    []polygonLayer
	Markers     []markerLayer
	GeneratedAt string
}

// WriteHTML renders the page. The generation time comes from the domain clock.
func (m *Map) WriteHTML(w io.Writer) error {
	data := pageData{
		Title:       m.title,
		Center:      m.center,
		Zoom:        m.zoom,
		Tiles:       m.tiles,
		Polygons:    m.polygons,
		Markers:     m.markers,
		GeneratedAt: domain.Now().UTC().Format(time.RFC3339),
	}
	if data.Polygons == nil {
		data.Polygons = []polygonLayer{}
	}
	if data.Markers == nil {
		data.Markers = []markerLayer{}
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("render map page: %w", err)
	}
	return nil
}
