// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/domain/entity"
	domainerror "github.com/owner-portal/backend/internal/domain/error"
)

// authorizeProperty loads a property and checks that the owner may read it.
func authorizeProperty(
	ctx context.Context,
	repo adapter.PortfolioRepository,
	ownerID, propertyID uuid.UUID,
) (*entity.Property, error) {
	property, err := repo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	if property == nil {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}

	if !property.IsOwnedBy(ownerID) {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyAccessDenied,
			"you do not have access to this property",
			domainerror.ErrPropertyAccessDenied,
		)
	}

	return property, nil
}
