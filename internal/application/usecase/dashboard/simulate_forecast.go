// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/application/usecase/forecast"
	"github.com/owner-portal/backend/internal/domain/entity"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// SimulateForecastInput carries raw records supplied by the caller instead of
// stored ones. Now is optional; the service clock is used when it is nil.
type SimulateForecastInput struct {
	ShortTerm  []entity.ShortTermBooking
	MidTerm    []entity.MidTermLease
	Statements []entity.ReconciledStatement
	Horizons   []int
	Now        *time.Time
}

// SimulateForecastOutput represents the output of a simulation.
type SimulateForecastOutput struct {
	GeneratedAt      time.Time
	IntervalsCount   int
	DiscardedRecords int
	Windows          []valueobject.ForecastWindow
	Metrics          *valueobject.PerformanceMetrics
}

// SimulateForecastUseCase runs the engine on ad-hoc records without touching storage.
type SimulateForecastUseCase struct {
	clock    adapter.Clock
	settings Settings
}

// NewSimulateForecastUseCase creates a new SimulateForecastUseCase instance.
func NewSimulateForecastUseCase(clock adapter.Clock, settings Settings) *SimulateForecastUseCase {
	return &SimulateForecastUseCase{
		clock:    clock,
		settings: settings,
	}
}

// Execute normalizes the supplied records and forecasts them.
func (uc *SimulateForecastUseCase) Execute(ctx context.Context, input SimulateForecastInput) (*SimulateForecastOutput, error) {
	horizons := uc.settings.horizonsOrDefault(input.Horizons)
	if err := forecast.ValidateHorizons(horizons); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if input.Now != nil {
		now = *input.Now
	}

	intervals := forecast.Normalize(input.ShortTerm, input.MidTerm, forecast.NormalizeOptions{
		Now:                  now,
		ForwardOnly:          true,
		CancellationStatuses: uc.settings.CancellationStatuses,
	})

	windows, err := forecast.Forecast(intervals, now, horizons)
	if err != nil {
		return nil, err
	}

	return &SimulateForecastOutput{
		GeneratedAt:      now,
		IntervalsCount:   len(intervals),
		DiscardedRecords: len(input.ShortTerm) + len(input.MidTerm) - len(intervals),
		Windows:          windows,
		Metrics:          forecast.ComputeMetrics(input.Statements),
	}, nil
}
