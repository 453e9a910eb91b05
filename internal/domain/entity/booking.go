// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// ShortTermBooking is a nightly reservation as the storage service returns it.
// Dates are kept as the raw strings the backend emits; TotalAmount is nil
// when the record carries no amount.
type ShortTermBooking struct {
	ID          string           `json:"id"`
	GuestName   string           `json:"guestName"`
	CheckIn     string           `json:"checkIn"`
	CheckOut    string           `json:"checkOut"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	Status      string           `json:"status"`
}

// MidTermLease is a monthly tenancy as the storage service returns it.
type MidTermLease struct {
	ID          string           `json:"id"`
	TenantName  string           `json:"tenantName"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	MonthlyRent *decimal.Decimal `json:"monthlyRent"`
	Status      string           `json:"status"`
}
