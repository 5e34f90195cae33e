package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Gangnam station and two points at increasing distance from it.
var (
	gangnam       = Point(37.498095, 127.027610)
	seolleung     = Point(37.504487, 127.049083) // next station over, ~2 km
	seoulStation  = Point(37.554678, 126.970606) // across the river, ~8 km
)

func TestPointAxisOrder(t *testing.T) {
	p := Point(37.5, 127.0)
	assert.InDelta(t, 37.5, p.Lat(), 1e-12)
	assert.InDelta(t, 127.0, p.Lon(), 1e-12)
}

func TestDistanceKmZero(t *testing.T) {
	assert.InDelta(t, 0, DistanceKm(gangnam, gangnam), 1e-9)
}

func TestDistanceKmSymmetric(t *testing.T) {
	assert.InDelta(t, DistanceKm(gangnam, seoulStation), DistanceKm(seoulStation, gangnam), 1e-9)
}

func TestDistanceKmKnownPairs(t *testing.T) {
	// Sanity ranges, not exact values: the point is that the magnitudes are
	// right and the ordering is strict.
	nearby := DistanceKm(gangnam, seolleung)
	assert.Greater(t, nearby, 1.0)
	assert.Less(t, nearby, 3.0)

	far := DistanceKm(gangnam, seoulStation)
	assert.Greater(t, far, 6.0)
	assert.Less(t, far, 10.0)

	assert.Less(t, nearby, far)
}

// The bounding box must contain every point within the radius; over-inclusion
// near the corners is expected and filtered later by the exact distance.
func TestBoundAroundContainsRadius(t *testing.T) {
	const radiusKm = 3.0
	bound := BoundAround(gangnam, radiusKm)

	steps := []float64{0.1, 0.5, 0.9, 1.0}
	for _, frac := range steps {
		deltaLat := frac * radiusKm / kmPerDegreeLat
		candidates := []struct{ lat, lon float64 }{
			{gangnam.Lat() + deltaLat, gangnam.Lon()},
			{gangnam.Lat() - deltaLat, gangnam.Lon()},
			{gangnam.Lat(), gangnam.Lon() + deltaLat},
			{gangnam.Lat(), gangnam.Lon() - deltaLat},
		}
		for _, c := range candidates {
			p := Point(c.lat, c.lon)
			if DistanceKm(gangnam, p) <= radiusKm {
				assert.True(t, bound.Contains(p), "point within radius fell outside bound")
			}
		}
	}
}

func TestBoundAroundDimensions(t *testing.T) {
	const radiusKm = 3.0
	bound := BoundAround(gangnam, radiusKm)

	wantDeltaLat := radiusKm / kmPerDegreeLat
	assert.InDelta(t, gangnam.Lat()-wantDeltaLat, bound.Min.Lat(), 1e-9)
	assert.InDelta(t, gangnam.Lat()+wantDeltaLat, bound.Max.Lat(), 1e-9)

	// Longitude span must be wider than latitude span at Seoul's latitude.
	lonSpan := bound.Max.Lon() - bound.Min.Lon()
	latSpan := bound.Max.Lat() - bound.Min.Lat()
	assert.Greater(t, lonSpan, latSpan)
}
