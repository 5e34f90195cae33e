// Package geocode implements the Geocoder capability against a
// Nominatim-compatible endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"onduty/config"
	"onduty/internal/domain/entity"
	"onduty/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type nominatimGeocoder struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// NewNominatimGeocoder creates the production Geocoder.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	baseURL := cfg.Geocode.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &nominatimGeocoder{
		httpClient: &http.Client{Timeout: cfg.Geocode.Timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  cfg.Geocode.UserAgent,
		logger:     logger,
	}
}

// Forward resolves a city/district pair to a coordinate. No match is a
// normal outcome and returns (nil, nil).
func (g *nominatimGeocoder) Forward(ctx context.Context, city, district string) (*entity.Location, error) {
	params := url.Values{}
	params.Set("q", strings.TrimSpace(city+" "+district))
	params.Set("countrycodes", "kr")
	params.Set("format", "json")
	params.Set("limit", "1")

	var hits []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := g.get(ctx, "/search", params, &hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	lat, errLat := strconv.ParseFloat(hits[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(hits[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return nil, nil
	}

	loc := entity.Location{Latitude: lat, Longitude: lon}
	if !loc.InRange() {
		return nil, nil
	}

	return &loc, nil
}

// Reverse resolves a coordinate to its administrative division. Nominatim
// spreads the city and district over several address keys depending on the
// division type, so both are picked from a fallback chain.
func (g *nominatimGeocoder) Reverse(ctx context.Context, lat, lon float64) (*entity.Region, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("format", "json")
	params.Set("accept-language", "ko")

	var hit struct {
		Address map[string]string `json:"address"`
	}
	if err := g.get(ctx, "/reverse", params, &hit); err != nil {
		return nil, err
	}
	if len(hit.Address) == 0 {
		return nil, nil
	}

	city := firstOf(hit.Address, "city", "province", "state")
	district := firstOf(hit.Address, "borough", "district", "city", "county")
	if city == "" || district == "" {
		return nil, nil
	}

	return &entity.Region{City: city, District: district}, nil
}

func (g *nominatimGeocoder) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := g.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build geocode request")
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call geocoder")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read geocoder response")
	}

	return errors.Wrap(json.Unmarshal(body, out), "decode geocoder response")
}

func firstOf(m map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := m[key]; v != "" {
			return v
		}
	}

	return ""
}
