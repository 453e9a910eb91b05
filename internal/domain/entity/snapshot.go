// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertySnapshot is a point-in-time copy of everything the forecasting
// engine reads for one property.
type PropertySnapshot struct {
	PropertyID uuid.UUID             `json:"propertyId"`
	ShortTerm  []ShortTermBooking    `json:"shortTerm"`
	MidTerm    []MidTermLease        `json:"midTerm"`
	Statements []ReconciledStatement `json:"statements"`
	FetchedAt  time.Time             `json:"fetchedAt"`
}
