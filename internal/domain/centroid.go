package domain

import "github.com/twpayne/go-geom"

// Centroid approximates a shape's center as the unweighted mean of the outer
// ring vertices of its first polygon. It is meant for label placement only.
// The second return is false for an empty shape.
func Centroid(shape *geom.MultiPolygon) (geom.Coord, bool) {
	if shape == nil || shape.NumPolygons() == 0 {
		return nil, false
	}
	poly := shape.Polygon(0)
	if poly.NumLinearRings() == 0 {
		return nil, false
	}
	ring := poly.LinearRing(0)
	n := ring.NumCoords()
	if n == 0 {
		return nil, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		c := ring.Coord(i)
		sumX += c.X()
		sumY += c.Y()
	}
	return geom.Coord{sumX / float64(n), sumY / float64(n)}, true
}
