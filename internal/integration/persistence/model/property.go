// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/owner-portal/backend/internal/domain/entity"
)

// PropertyModel represents the properties table in the database.
type PropertyModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name            string         `gorm:"type:varchar(255);not null"`
	Address         string         `gorm:"type:varchar(500)"`
	ListingChannels pq.StringArray `gorm:"type:text[]"`
	CreatedAt       time.Time      `gorm:"not null"`
	UpdatedAt       time.Time      `gorm:"not null"`
}

// TableName returns the table name for the PropertyModel.
func (PropertyModel) TableName() string {
	return "properties"
}

// ToEntity converts a PropertyModel to a domain Property entity.
func (m *PropertyModel) ToEntity() *entity.Property {
	channels := make([]string, len(m.ListingChannels))
	copy(channels, m.ListingChannels)

	return &entity.Property{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Name:            m.Name,
		Address:         m.Address,
		ListingChannels: channels,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// PropertyFromEntity creates a PropertyModel from a domain Property entity.
func PropertyFromEntity(property *entity.Property) *PropertyModel {
	return &PropertyModel{
		ID:              property.ID,
		OwnerID:         property.OwnerID,
		Name:            property.Name,
		Address:         property.Address,
		ListingChannels: pq.StringArray(property.ListingChannels),
		CreatedAt:       property.CreatedAt,
		UpdatedAt:       property.UpdatedAt,
	}
}
