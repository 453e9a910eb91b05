package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
)

// DateLayout is the format stay dates are handed to the forecasting engine in.
const DateLayout = "2006-01-02"

// ShortTermBookingModel represents the short_term_bookings table in the database.
// Check-in and check-out are nullable because channel imports are not always complete.
type ShortTermBookingModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PropertyID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	GuestName   string           `gorm:"type:varchar(255)"`
	CheckIn     *time.Time       `gorm:"type:date;index"`
	CheckOut    *time.Time       `gorm:"type:date"`
	TotalAmount *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status      string           `gorm:"type:varchar(50);not null;default:'confirmed'"`
	Channel     string           `gorm:"type:varchar(50)"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ShortTermBookingModel.
func (ShortTermBookingModel) TableName() string {
	return "short_term_bookings"
}

// ToEntity converts a ShortTermBookingModel to the raw booking the engine reads.
func (m *ShortTermBookingModel) ToEntity() entity.ShortTermBooking {
	return entity.ShortTermBooking{
		ID:          m.ID.String(),
		GuestName:   m.GuestName,
		CheckIn:     formatDate(m.CheckIn),
		CheckOut:    formatDate(m.CheckOut),
		TotalAmount: m.TotalAmount,
		Status:      m.Status,
	}
}

// MidTermLeaseModel represents the mid_term_leases table in the database.
type MidTermLeaseModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PropertyID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	TenantName  string           `gorm:"type:varchar(255)"`
	StartDate   *time.Time       `gorm:"type:date;index"`
	EndDate     *time.Time       `gorm:"type:date"`
	MonthlyRent *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status      string           `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
}

// TableName returns the table name for the MidTermLeaseModel.
func (MidTermLeaseModel) TableName() string {
	return "mid_term_leases"
}

// ToEntity converts a MidTermLeaseModel to the raw lease the engine reads.
func (m *MidTermLeaseModel) ToEntity() entity.MidTermLease {
	return entity.MidTermLease{
		ID:          m.ID.String(),
		TenantName:  m.TenantName,
		StartDate:   formatDate(m.StartDate),
		EndDate:     formatDate(m.EndDate),
		MonthlyRent: m.MonthlyRent,
		Status:      m.Status,
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
