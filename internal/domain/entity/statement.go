// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// ReconciledStatement is a finalized monthly accounting record for a property.
// Missing figures are zero, except ActualNetEarnings which is nil when the
// statement was never corrected.
type ReconciledStatement struct {
	Period            string           `json:"period"` // YYYY-MM
	TotalRevenue      decimal.Decimal  `json:"totalRevenue"`
	TotalExpenses     decimal.Decimal  `json:"totalExpenses"` // stored negative by some sources
	NetToOwner        decimal.Decimal  `json:"netToOwner"`
	ActualNetEarnings *decimal.Decimal `json:"actualNetEarnings,omitempty"`
}
