// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a managed rental unit belonging to an owner.
type Property struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Address         string
	ListingChannels []string // e.g. "airbnb", "vrbo", "furnished_finder"
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy reports whether the property belongs to the given owner.
func (p *Property) IsOwnedBy(ownerID uuid.UUID) bool {
	return p != nil && p.OwnerID == ownerID
}
