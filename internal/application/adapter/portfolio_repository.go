// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/domain/entity"
)

// PortfolioRepository defines read access to an owner's properties and the
// booking, lease and statement records attached to them.
type PortfolioRepository interface {
	// FindPropertyByID retrieves a property by its ID. It returns nil, nil when
	// the property does not exist.
	FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// ListPropertiesByOwner retrieves all properties owned by the given owner.
	ListPropertiesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)

	// ListPropertyIDs returns the IDs of every property.
	ListPropertyIDs(ctx context.Context) ([]uuid.UUID, error)

	// LoadSnapshot reads the bookings, leases and statements of a property.
	LoadSnapshot(ctx context.Context, propertyID uuid.UUID) (*entity.PropertySnapshot, error)
}
