// Package geo provides the distance math behind nearby search: an exact
// great-circle distance and the rectangular pre-filter that narrows store
// queries before it.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// earthRadiusKm is the spherical Earth radius used by the haversine
	// distance.
	earthRadiusKm = 6371.0

	// kmPerDegreeLat approximates the length of one degree of latitude.
	// Longitude degree length shrinks with cos(latitude).
	kmPerDegreeLat = 111.0
)

// Point builds an orb.Point from a latitude/longitude pair. orb orders
// coordinates (lon, lat); keeping the conversion here avoids swapped-axis
// mistakes at call sites.
func Point(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// DistanceKm returns the haversine great-circle distance between two points
// in kilometers.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// BoundAround returns the bounding box that strictly contains the circle of
// radiusKm around origin. It is a pre-filter only: the box over-includes near
// its corners and the caller must re-check candidates against the true
// distance. It never excludes a point inside the radius, which is what makes
// it safe to push into a store range query.
//
// The fixed 111 km/degree approximation degrades toward the poles; it is fine
// for a single mid-latitude country.
func BoundAround(origin orb.Point, radiusKm float64) orb.Bound {
	deltaLat := radiusKm / kmPerDegreeLat
	deltaLon := radiusKm / (kmPerDegreeLat * math.Cos(origin.Lat()*math.Pi/180))

	return orb.Bound{
		Min: orb.Point{origin.Lon() - deltaLon, origin.Lat() - deltaLat},
		Max: orb.Point{origin.Lon() + deltaLon, origin.Lat() + deltaLat},
	}
}
