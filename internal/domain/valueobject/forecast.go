// Package valueobject contains domain value objects for the owner portal.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastWindow is the revenue attributed to the next HorizonDays days.
type ForecastWindow struct {
	HorizonDays   int
	Revenue       decimal.Decimal // whole currency units
	BookingsCount int
}

// PerformanceMetrics aggregates a property's reconciled statement history.
type PerformanceMetrics struct {
	TotalRevenue         decimal.Decimal
	TotalExpenses        decimal.Decimal
	TotalNet             decimal.Decimal
	AvgMonthlyRevenue    decimal.Decimal
	AvgMonthlyNet        decimal.Decimal
	GrowthRatePercent    decimal.Decimal
	NetGrowthRatePercent decimal.Decimal
	ExpenseRatioPercent  decimal.Decimal
	LatestPeriod         string
	StatementCount       int
}

// OccupancyMetrics describes how a date range was (or will be) used.
type OccupancyMetrics struct {
	From                 time.Time
	To                   time.Time
	AvailableNights      int
	BookedNights         int
	OccupancyRatePercent decimal.Decimal
	BookingsCount        int
	Revenue              decimal.Decimal
	AveragePerBooking    decimal.Decimal
	AverageDailyRate     decimal.Decimal // short-term stays only
}

// MonthlyProjection is the forward revenue attributed to one calendar month.
type MonthlyProjection struct {
	Period        string // YYYY-MM
	ShortTerm     decimal.Decimal
	MidTerm       decimal.Decimal
	Total         decimal.Decimal
	BookingsCount int
}
