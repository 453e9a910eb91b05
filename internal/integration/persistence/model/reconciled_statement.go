package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
)

// ReconciledStatementModel represents the reconciled_statements table in the database.
// ActualNetEarnings is set when accounting corrected the net after reconciliation.
type ReconciledStatementModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PropertyID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_statement_property_period"`
	Period            string           `gorm:"type:varchar(7);not null;uniqueIndex:idx_statement_property_period"`
	TotalRevenue      decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	TotalExpenses     decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	NetToOwner        decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	ActualNetEarnings *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ReconciledStatementModel.
func (ReconciledStatementModel) TableName() string {
	return "reconciled_statements"
}

// ToEntity converts a ReconciledStatementModel to a domain ReconciledStatement.
func (m *ReconciledStatementModel) ToEntity() entity.ReconciledStatement {
	return entity.ReconciledStatement{
		Period:            m.Period,
		TotalRevenue:      m.TotalRevenue,
		TotalExpenses:     m.TotalExpenses,
		NetToOwner:        m.NetToOwner,
		ActualNetEarnings: m.ActualNetEarnings,
	}
}
