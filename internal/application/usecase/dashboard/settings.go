// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"github.com/owner-portal/backend/internal/application/usecase/forecast"
)

// Settings carries the engine parameters shared by the dashboard use cases.
type Settings struct {
	DefaultHorizons      []int
	CancellationStatuses []string
	ProjectionMonths     int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DefaultHorizons:      forecast.DefaultHorizons,
		CancellationStatuses: forecast.DefaultCancellationStatuses,
		ProjectionMonths:     3,
	}
}

func (s Settings) horizonsOrDefault(horizons []int) []int {
	if len(horizons) > 0 {
		return horizons
	}
	if len(s.DefaultHorizons) > 0 {
		return s.DefaultHorizons
	}
	return forecast.DefaultHorizons
}
