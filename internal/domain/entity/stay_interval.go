// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StayCategory distinguishes nightly stays from monthly leases.
type StayCategory string

const (
	StayCategoryShortTerm StayCategory = "short_term"
	StayCategoryMidTerm   StayCategory = "mid_term"
)

// StayStatus is the normalized booking status.
type StayStatus string

const (
	StayStatusConfirmed StayStatus = "confirmed"
	StayStatusCancelled StayStatus = "cancelled"
	StayStatusOther     StayStatus = "other"
)

// StayInterval is the uniform, immutable representation of a booking.
// Start is inclusive and End exclusive; Start is always before End and
// TotalAmount is always positive.
type StayInterval struct {
	ID       string
	Start    time.Time
	End      time.Time
	Category StayCategory
	// TotalAmount is the stay total for short-term bookings and the monthly
	// rent for mid-term leases.
	TotalAmount decimal.Decimal
	DailyRate   decimal.Decimal
	Label       string
	Status      StayStatus
}

// IsShortTerm reports whether the interval is a nightly stay.
func (s StayInterval) IsShortTerm() bool {
	return s.Category == StayCategoryShortTerm
}

// StartsWithin reports whether the interval starts strictly inside (from, to).
func (s StayInterval) StartsWithin(from, to time.Time) bool {
	return s.Start.After(from) && s.Start.Before(to)
}
