// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/application/usecase/forecast"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// GetProjectionInput represents the input for a monthly revenue projection.
type GetProjectionInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
	Months     int  // 0 means the configured default
	Refresh    bool // bypass the snapshot cache
}

// GetProjectionOutput represents the output of a monthly projection.
type GetProjectionOutput struct {
	PropertyID  uuid.UUID
	GeneratedAt time.Time
	Months      []valueobject.MonthlyProjection
}

// GetProjectionUseCase handles forward revenue laid out per calendar month.
type GetProjectionUseCase struct {
	portfolioRepo adapter.PortfolioRepository
	loader        *SnapshotLoader
	clock         adapter.Clock
	settings      Settings
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase instance.
func NewGetProjectionUseCase(
	portfolioRepo adapter.PortfolioRepository,
	loader *SnapshotLoader,
	clock adapter.Clock,
	settings Settings,
) *GetProjectionUseCase {
	return &GetProjectionUseCase{
		portfolioRepo: portfolioRepo,
		loader:        loader,
		clock:         clock,
		settings:      settings,
	}
}

// Execute projects forward revenue month by month.
func (uc *GetProjectionUseCase) Execute(ctx context.Context, input GetProjectionInput) (*GetProjectionOutput, error) {
	months := input.Months
	if months == 0 {
		months = uc.settings.ProjectionMonths
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

	projections, err := forecast.ProjectMonthly(intervals, now, months)
	if err != nil {
		return nil, err
	}

	return &GetProjectionOutput{
		PropertyID:  input.PropertyID,
		GeneratedAt: now,
		Months:      projections,
	}, nil
}
