package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"onduty/config"
	logs "onduty/internal/infra/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *nominatimGeocoder {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Geocode: &config.GeocodeConfig{
			BaseURL:   srv.URL,
			UserAgent: "onduty-test",
			Timeout:   5 * time.Second,
		},
	}

	return NewNominatimGeocoder(cfg, logs.NewNopLogger()).(*nominatimGeocoder)
}

func TestForward(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "onduty-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"lat":"37.498095","lon":"127.027610"}]`))
	})

	loc, err := g.Forward(context.Background(), "서울특별시", "강남구")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.InDelta(t, 37.498095, loc.Latitude, 1e-9)
	assert.InDelta(t, 127.027610, loc.Longitude, 1e-9)
}

func TestForwardNoMatch(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	})

	loc, err := g.Forward(context.Background(), "서울특별시", "없는구")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestForwardBadCoordinates(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"lat":"95.0","lon":"127.0"}]`))
	})

	loc, err := g.Forward(context.Background(), "서울특별시", "강남구")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestReverse(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Write([]byte(`{"address":{"city":"서울특별시","borough":"강남구"}}`))
	})

	region, err := g.Reverse(context.Background(), 37.498095, 127.027610)
	require.NoError(t, err)
	require.NotNil(t, region)
	assert.Equal(t, "서울특별시", region.City)
	assert.Equal(t, "강남구", region.District)
}

func TestReverseServerError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := g.Reverse(context.Background(), 37.5, 127.0)
	require.Error(t, err)
}
