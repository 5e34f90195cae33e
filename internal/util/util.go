package util

import (
	"fmt"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatDistanceKm renders a distance for display: meters below 1 km
// ("850m"), otherwise kilometers with one decimal ("2.4km").
func FormatDistanceKm(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(km*1000))
	}

	return fmt.Sprintf("%.1fkm", km)
}
