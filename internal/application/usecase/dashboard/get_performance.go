// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/application/usecase/forecast"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// GetPerformanceInput represents the input for a property's performance metrics.
type GetPerformanceInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
	Refresh    bool
}

// GetPerformanceOutput represents the output of the performance use case.
// Metrics is nil while the property has no reconciled statements.
type GetPerformanceOutput struct {
	PropertyID uuid.UUID
	Metrics    *valueobject.PerformanceMetrics
}

// GetPerformanceUseCase handles historical performance metrics.
type GetPerformanceUseCase struct {
	portfolioRepo adapter.PortfolioRepository
	loader        *SnapshotLoader
}

// NewGetPerformanceUseCase creates a new GetPerformanceUseCase instance.
func NewGetPerformanceUseCase(portfolioRepo adapter.PortfolioRepository, loader *SnapshotLoader) *GetPerformanceUseCase {
	return &GetPerformanceUseCase{
		portfolioRepo: portfolioRepo,
		loader:        loader,
	}
}

// Execute aggregates the reconciled statements of a property.
func (uc *GetPerformanceUseCase) Execute(ctx context.Context, input GetPerformanceInput) (*GetPerformanceOutput, error) {
	if _, err := authorizeProperty(ctx, uc.portfolioRepo, input.OwnerID, input.PropertyID); err != nil {
		return nil, err
	}

	snapshot, err := uc.loader.Fetch(ctx, input.PropertyID, input.Refresh)
	if err != nil {
		return nil, err
	}

	return &GetPerformanceOutput{
		PropertyID: input.PropertyID,
		Metrics:    forecast.ComputeMetrics(snapshot.Statements),
	}, nil
}
