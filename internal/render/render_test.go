package render_test

import (
	"testing"

	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/couchcryptid/zone-load-map/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

type polygonCall struct {
	rings   [][]render.LatLng
	style   render.PolygonStyle
	tooltip string
}

type markerCall struct {
	at    render.LatLng
	style render.MarkerStyle
	popup string
}

type recordingCanvas struct {
	polygons []polygonCall
	markers  []markerCall
}

func (c *recordingCanvas) AddPolygon(rings [][]render.LatLng, style render.PolygonStyle, tooltip string) {
	c.polygons = append(c.polygons, polygonCall{rings, style, tooltip})
}

func (c *recordingCanvas) AddCircleMarker(at render.LatLng, style render.MarkerStyle, popup string) {
	c.markers = append(c.markers, markerCall{at, style, popup})
}

func shape(polys ...[]geom.Coord) *geom.MultiPolygon {
	coords := make([][][]geom.Coord, len(polys))
	for i, p := range polys {
		coords[i] = [][]geom.Coord{p}
	}
	return geom.NewMultiPolygon(geom.XY).MustSetCoords(coords)
}

func TestRender_SwapsAxes(t *testing.T) {
	canvas := &recordingCanvas{}
	render.Render([]domain.ZoneSummary{{
		Name:     "HAGUENAU",
		Shape:    shape([]geom.Coord{{7, 48}, {8, 48}, {8, 49}}),
		Count:    3,
		SharePct: 100,
	}}, canvas)

	require.Len(t, canvas.polygons, 1)
	assert.Equal(t, [][]render.LatLng{{{48, 7}, {48, 8}, {49, 8}}}, canvas.polygons[0].rings)
	assert.Equal(t, render.ZoneStyle, canvas.polygons[0].style)
	assert.Equal(t, "HAGUENAU<br>Records: 3<br>Load share: 100.00%", canvas.polygons[0].tooltip)

	require.Len(t, canvas.markers, 1)
	assert.InDelta(t, 48+1.0/3, canvas.markers[0].at[0], 1e-9)
	assert.InDelta(t, 7+2.0/3, canvas.markers[0].at[1], 1e-9)
	assert.Equal(t, render.MarkerPaint, canvas.markers[0].style)
	assert.Equal(t, "HAGUENAU<br>Records: 3", canvas.markers[0].popup)
}

func TestRender_ZeroCountDrawnWithoutMarker(t *testing.T) {
	canvas := &recordingCanvas{}
	render.Render([]domain.ZoneSummary{{
		Name:  "SÉLESTAT",
		Shape: shape([]geom.Coord{{7.4, 48.2}, {7.5, 48.2}, {7.5, 48.3}}),
	}}, canvas)

	assert.Len(t, canvas.polygons, 1)
	assert.Empty(t, canvas.markers)
}

func TestRender_MultiPolygonOneMarker(t *testing.T) {
	canvas := &recordingCanvas{}
	render.Render([]domain.ZoneSummary{{
		Name: "STRASBOURG-3",
		Shape: shape(
			[]geom.Coord{{0, 0}, {2, 0}, {2, 2}, {0, 2}},
			[]geom.Coord{{10, 10}, {12, 10}, {12, 12}},
		),
		Count:    2,
		SharePct: 50,
	}}, canvas)

	require.Len(t, canvas.polygons, 2)
	assert.Equal(t, canvas.polygons[0].tooltip, canvas.polygons[1].tooltip)
	require.Len(t, canvas.markers, 1)
	assert.Equal(t, render.LatLng{1, 1}, canvas.markers[0].at)
}

func TestRender_DrawsHoles(t *testing.T) {
	outer := []geom.Coord{{7, 48}, {8, 48}, {8, 49}, {7, 49}, {7, 48}}
	hole := []geom.Coord{{7.4, 48.4}, {7.6, 48.4}, {7.6, 48.6}, {7.4, 48.6}, {7.4, 48.4}}
	canvas := &recordingCanvas{}
	render.Render([]domain.ZoneSummary{{
		Name:  "STRASBOURG-3",
		Shape: geom.NewMultiPolygon(geom.XY).MustSetCoords([][][]geom.Coord{{outer, hole}}),
		Count: 1,
	}}, canvas)

	require.Len(t, canvas.polygons, 1)
	rings := canvas.polygons[0].rings
	require.Len(t, rings, 2)
	assert.Len(t, rings[0], 5)
	assert.Len(t, rings[1], 5)
	assert.Equal(t, render.LatLng{48.4, 7.4}, rings[1][0])

	// The marker still uses the outer ring only.
	require.Len(t, canvas.markers, 1)
	assert.InDelta(t, 48.4, canvas.markers[0].at[0], 1e-9)
	assert.InDelta(t, 7.4, canvas.markers[0].at[1], 1e-9)
}

func TestTooltip_EscapesName(t *testing.T) {
	got := render.Tooltip(domain.ZoneSummary{Name: "<B>", Count: 1, SharePct: 33.333})
	assert.Equal(t, "&lt;B&gt;<br>Records: 1<br>Load share: 33.33%", got)
}
