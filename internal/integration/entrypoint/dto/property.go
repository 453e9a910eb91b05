package dto

import (
	"time"

	"github.com/owner-portal/backend/internal/domain/entity"
)

// PropertyResponse represents a property in API responses.
type PropertyResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	ListingChannels []string  `json:"listing_channels"`
	CreatedAt       time.Time `json:"created_at"`
}

// PropertyListResponse represents the response for the property list API.
type PropertyListResponse struct {
	Data []PropertyResponse `json:"data"`
}

// ToPropertyListResponse converts domain properties to a PropertyListResponse DTO.
func ToPropertyListResponse(properties []*entity.Property) PropertyListResponse {
	data := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		channels := p.ListingChannels
		if channels == nil {
			channels = []string{}
		}
		data[i] = PropertyResponse{
			ID:              p.ID.String(),
			Name:            p.Name,
			Address:         p.Address,
			ListingChannels: channels,
			CreatedAt:       p.CreatedAt,
		}
	}
	return PropertyListResponse{Data: data}
}
