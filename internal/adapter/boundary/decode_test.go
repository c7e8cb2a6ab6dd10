package boundary

import (
	"errors"
	"strings"
	"testing"

	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const polygonFeature = `{"type":"Feature","properties":{"nom":" Haguenau "},"geometry":{"type":"Polygon","coordinates":[[[7.7,48.7],[7.9,48.7],[7.9,48.9],[7.7,48.9],[7.7,48.7]]]}}`

func collection(features ...string) string {
	return `{"type":"FeatureCollection","features":[` + strings.Join(features, ",") + `]}`
}

func TestDecode_Polygon(t *testing.T) {
	set, err := Decode(strings.NewReader(collection(polygonFeature)), "nom")
	require.NoError(t, err)
	require.Len(t, set.Zones, 1)
	assert.Empty(t, set.Skipped)

	z := set.Zones[0]
	assert.Equal(t, "HAGUENAU", z.Name)
	require.Equal(t, 1, z.Shape.NumPolygons())
	ring := z.Shape.Polygon(0).LinearRing(0)
	assert.Equal(t, 5, ring.NumCoords())
	// Native lon/lat order is kept.
	assert.Equal(t, 7.7, ring.Coord(0).X())
	assert.Equal(t, 48.7, ring.Coord(0).Y())
}

func TestDecode_MultiPolygon(t *testing.T) {
	mp := `{"type":"Feature","properties":{"nom":"Strasbourg-3"},"geometry":{"type":"MultiPolygon","coordinates":[` +
		`[[[7.7,48.5],[7.8,48.5],[7.8,48.6],[7.7,48.5]]],` +
		`[[[7.9,48.5],[8.0,48.5],[8.0,48.6],[7.9,48.5]]]]}}`

	set, err := Decode(strings.NewReader(collection(mp)), "nom")
	require.NoError(t, err)
	require.Len(t, set.Zones, 1)
	assert.Equal(t, "STRASBOURG-3", set.Zones[0].Name)
	assert.Equal(t, 2, set.Zones[0].Shape.NumPolygons())
}

func TestDecode_SkipsUnsupportedGeometry(t *testing.T) {
	line := `{"type":"Feature","properties":{"nom":"Route"},"geometry":{"type":"LineString","coordinates":[[7.7,48.7],[7.8,48.8]]}}`
	other := strings.Replace(polygonFeature, "Haguenau", "Saverne", 1)

	set, err := Decode(strings.NewReader(collection(polygonFeature, line, other)), "nom")
	require.NoError(t, err)

	require.Len(t, set.Zones, 2)
	assert.Equal(t, "HAGUENAU", set.Zones[0].Name)
	assert.Equal(t, "SAVERNE", set.Zones[1].Name)
	require.Len(t, set.Skipped, 1)
	assert.True(t, errors.Is(set.Skipped[0], domain.ErrMalformedGeometry))
	assert.Contains(t, set.Skipped[0].Error(), "feature 1")
}

func TestDecode_SkipsDegenerateRing(t *testing.T) {
	tiny := `{"type":"Feature","properties":{"nom":"Tiny"},"geometry":{"type":"Polygon","coordinates":[[[7.7,48.7],[7.8,48.7]]]}}`

	set, err := Decode(strings.NewReader(collection(tiny, polygonFeature)), "nom")
	require.NoError(t, err)
	require.Len(t, set.Zones, 1)
	require.Len(t, set.Skipped, 1)
	assert.ErrorIs(t, set.Skipped[0], domain.ErrMalformedGeometry)
}

func TestDecode_SkipsMissingGeometry(t *testing.T) {
	none := `{"type":"Feature","properties":{"nom":"Nowhere"},"geometry":null}`

	set, err := Decode(strings.NewReader(collection(none)), "nom")
	require.NoError(t, err)
	assert.Empty(t, set.Zones)
	require.Len(t, set.Skipped, 1)
	assert.ErrorIs(t, set.Skipped[0], domain.ErrMalformedGeometry)
}

func TestDecode_SkipsUndecodableFeature(t *testing.T) {
	set, err := Decode(strings.NewReader(collection(`"not a feature"`, polygonFeature)), "nom")
	require.NoError(t, err)
	assert.Len(t, set.Zones, 1)
	assert.Len(t, set.Skipped, 1)
}

func TestDecode_NameFallbackAndCoercion(t *testing.T) {
	byName := strings.Replace(polygonFeature, `"nom":" Haguenau "`, `"name":"obernai"`, 1)
	numeric := strings.Replace(polygonFeature, `"nom":" Haguenau "`, `"nom":67`, 1)

	set, err := Decode(strings.NewReader(collection(byName, numeric)), "nom")
	require.NoError(t, err)
	require.Len(t, set.Zones, 2)
	assert.Equal(t, "OBERNAI", set.Zones[0].Name)
	assert.Equal(t, "67", set.Zones[1].Name)
}

func TestDecode_SkipsUnnamedFeature(t *testing.T) {
	noProps := strings.Replace(polygonFeature, `{"nom":" Haguenau "}`, `{}`, 1)
	blank := strings.Replace(polygonFeature, `" Haguenau "`, `"  \n "`, 1)
	nullProps := strings.Replace(polygonFeature, `{"nom":" Haguenau "}`, `null`, 1)

	set, err := Decode(strings.NewReader(collection(noProps, blank, nullProps, polygonFeature)), "nom")
	require.NoError(t, err)

	require.Len(t, set.Zones, 1)
	assert.Equal(t, "HAGUENAU", set.Zones[0].Name)
	require.Len(t, set.Skipped, 3)
	for _, skipErr := range set.Skipped {
		assert.ErrorIs(t, skipErr, domain.ErrUnnamedZone)
	}
}

func TestDecode_SingleFeature(t *testing.T) {
	set, err := Decode(strings.NewReader(polygonFeature), "nom")
	require.NoError(t, err)
	assert.Len(t, set.Zones, 1)
}

func TestDecode_InvalidDocument(t *testing.T) {
	_, err := Decode(strings.NewReader("{broken"), "nom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse geojson")

	_, err = Decode(strings.NewReader(`{"type":"Point","coordinates":[1,2]}`), "nom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document type")
}
