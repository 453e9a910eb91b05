// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/domain/entity"
)

// ListPropertiesInput represents the input for listing properties.
type ListPropertiesInput struct {
	OwnerID uuid.UUID
}

// ListPropertiesOutput represents the output of listing properties.
type ListPropertiesOutput struct {
	Properties []*entity.Property
}

// ListPropertiesUseCase handles listing the properties of an owner.
type ListPropertiesUseCase struct {
	portfolioRepo adapter.PortfolioRepository
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(portfolioRepo adapter.PortfolioRepository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		portfolioRepo: portfolioRepo,
	}
}

// Execute retrieves the properties owned by the caller.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, input ListPropertiesInput) (*ListPropertiesOutput, error) {
	properties, err := uc.portfolioRepo.ListPropertiesByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return &ListPropertiesOutput{
		Properties: properties,
	}, nil
}
