// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/application/usecase/forecast"
	domainerror "github.com/owner-portal/backend/internal/domain/error"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// GetOccupancyInput represents the input for occupancy over a date range.
// EndDate is exclusive.
type GetOccupancyInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Refresh    bool
}

// GetOccupancyOutput represents the output of the occupancy use case.
type GetOccupancyOutput struct {
	PropertyID uuid.UUID
	Occupancy  valueobject.OccupancyMetrics
}

// GetOccupancyUseCase handles occupancy and per-booking figures.
type GetOccupancyUseCase struct {
	portfolioRepo adapter.PortfolioRepository
	loader        *SnapshotLoader
	settings      Settings
}

// NewGetOccupancyUseCase creates a new GetOccupancyUseCase instance.
func NewGetOccupancyUseCase(
	portfolioRepo adapter.PortfolioRepository,
	loader *SnapshotLoader,
	settings Settings,
) *GetOccupancyUseCase {
	return &GetOccupancyUseCase{
		portfolioRepo: portfolioRepo,
		loader:        loader,
		settings:      settings,
	}
}

// Execute computes occupancy for the requested range.
func (uc *GetOccupancyUseCase) Execute(ctx context.Context, input GetOccupancyInput) (*GetOccupancyOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	if _, err := authorizeProperty(ctx, uc.portfolioRepo, input.OwnerID, input.PropertyID); err != nil {
		return nil, err
	}

	snapshot, err := uc.loader.Fetch(ctx, input.PropertyID, input.Refresh)
	if err != nil {
		return nil, err
	}

	intervals := forecast.Normalize(snapshot.ShortTerm, snapshot.MidTerm, forecast.NormalizeOptions{
		CancellationStatuses: uc.settings.CancellationStatuses,
	})

	return &GetOccupancyOutput{
		PropertyID: input.PropertyID,
		Occupancy:  forecast.ComputeOccupancy(intervals, input.StartDate, input.EndDate),
	}, nil
}

// validateInput validates the input parameters.
func (uc *GetOccupancyUseCase) validateInput(input GetOccupancyInput) error {
	if input.StartDate.IsZero() {
		return domainerror.NewForecastError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if input.EndDate.IsZero() {
		return domainerror.NewForecastError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if !input.EndDate.After(input.StartDate) {
		return domainerror.NewForecastError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
