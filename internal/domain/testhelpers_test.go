package domain

import "github.com/twpayne/go-geom"

// square returns a closed ring around (lon, lat) with the given half-size.
func square(lon, lat, half float64) []geom.Coord {
	return []geom.Coord{
		{lon - half, lat - half},
		{lon + half, lat - half},
		{lon + half, lat + half},
		{lon - half, lat + half},
		{lon - half, lat - half},
	}
}

func zone(name string, rings ...[]geom.Coord) ZoneGeometry {
	polys := make([][][]geom.Coord, 0, len(rings))
	for _, r := range rings {
		polys = append(polys, [][]geom.Coord{r})
	}
	return ZoneGeometry{
		Name:  name,
		Shape: geom.NewMultiPolygon(geom.XY).MustSetCoords(polys),
	}
}

func records(labels ...string) []Record {
	recs := make([]Record, len(labels))
	for i, l := range labels {
		recs[i] = Record{Row: i + 1, ZoneLabel: l}
	}
	return recs
}
