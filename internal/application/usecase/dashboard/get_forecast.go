// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/application/usecase/forecast"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// GetForecastInput represents the input for forecasting a property's revenue.
type GetForecastInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
	Horizons   []int // empty means the configured defaults
	Refresh    bool  // bypass the snapshot cache
}

// GetForecastOutput represents the output of a forecast.
type GetForecastOutput struct {
	PropertyID  uuid.UUID
	GeneratedAt time.Time
	Windows     []valueobject.ForecastWindow
}

// GetForecastUseCase handles rolling revenue forecasts for a property.
type GetForecastUseCase struct {
	portfolioRepo adapter.PortfolioRepository
	loader        *SnapshotLoader
	clock         adapter.Clock
	settings      Settings
}

// NewGetForecastUseCase creates a new GetForecastUseCase instance.
func NewGetForecastUseCase(
	portfolioRepo adapter.PortfolioRepository,
	loader *SnapshotLoader,
	clock adapter.Clock,
	settings Settings,
) *GetForecastUseCase {
	return &GetForecastUseCase{
		portfolioRepo: portfolioRepo,
		loader:        loader,
		clock:         clock,
		settings:      settings,
	}
}

// Execute computes the forecast windows for the requested horizons.
func (uc *GetForecastUseCase) Execute(ctx context.Context, input GetForecastInput) (*GetForecastOutput, error) {
	horizons := uc.settings.horizonsOrDefault(input.Horizons)
	if err := forecast.ValidateHorizons(horizons); err != nil {
		return nil, err
	}

	if _, err := authorizeProperty(ctx, uc.portfolioRepo, input.OwnerID, input.PropertyID); err != nil {
		return nil, err
	}

	snapshot, err := uc.loader.Fetch(ctx, input.PropertyID, input.Refresh)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	intervals := forecast.Normalize(snapshot.ShortTerm, snapshot.MidTerm, forecast.NormalizeOptions{
		Now:                  now,
		ForwardOnly:          true,
		CancellationStatuses: uc.settings.CancellationStatuses,
	})

	slog.Debug("Normalized property bookings",
		"property_id", input.PropertyID,
		"raw_records", len(snapshot.ShortTerm)+len(snapshot.MidTerm),
		"intervals", len(intervals),
	)

	windows, err := forecast.Forecast(intervals, now, horizons)
	if err != nil {
		return nil, err
	}

	return &GetForecastOutput{
		PropertyID:  input.PropertyID,
		GeneratedAt: now,
		Windows:     windows,
	}, nil
}
