package impl

import (
	"io"
	"log/slog"
	"time"

	"onduty/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSearchConfig() *config.Config {
	return &config.Config{
		Registry: &config.RegistryConfig{PageSize: 1000},
		Search: &config.SearchConfig{
			DefaultRadiusKm: 3.0,
			MaxRadiusKm:     500.0,
			NearbyLimit:     1000,
		},
	}
}

// mondayNoon is a fixed, non-holiday weekday instant used across tests.
var mondayNoon = time.Date(2025, 7, 7, 12, 0, 0, 0, time.UTC)
