package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// ComputeOccupancy measures how the nights of [from, to) are used.
//
// BookedNights is the day overlap of every interval with the range, capped at
// the available nights. Revenue follows the forecast rules: short-term stays
// starting in the range count in full, leases are prorated at rent/30.
// AveragePerBooking spreads the in-range revenue of the bookings that start in
// the range over BookingsCount, leases included. AverageDailyRate only looks at
// short-term stays that start in the range.
func ComputeOccupancy(intervals []entity.StayInterval, from, to time.Time) valueobject.OccupancyMetrics {
	metrics := valueobject.OccupancyMetrics{
		From:                 from,
		To:                   to,
		OccupancyRatePercent: decimal.Zero,
		Revenue:              decimal.Zero,
		AveragePerBooking:    decimal.Zero,
		AverageDailyRate:     decimal.Zero,
	}

	available := CalendarDaysBetween(from, to)
	if available <= 0 {
		return metrics
	}
	metrics.AvailableNights = available

	booked := 0
	revenue := decimal.Zero
	startedRevenue := decimal.Zero
	stayRevenue := decimal.Zero
	stayNights := 0

	for _, interval := range intervals {
		booked += overlapDays(interval, from, to)

		earned := interval.TotalAmount
		if !interval.IsShortTerm() {
			earned = ProrateMonthlyRent(interval, from, to)
		}

		startsInRange := !interval.Start.Before(from) && interval.Start.Before(to)
		if startsInRange {
			metrics.BookingsCount++
			startedRevenue = startedRevenue.Add(earned)
		}

		if interval.IsShortTerm() {
			if startsInRange {
				revenue = revenue.Add(earned)
				stayRevenue = stayRevenue.Add(earned)
				stayNights += max(CalendarDaysBetween(interval.Start, interval.End), 1)
			}
			continue
		}
		revenue = revenue.Add(earned)
	}

	metrics.BookedNights = min(booked, available)
	metrics.OccupancyRatePercent = decimal.NewFromInt(int64(metrics.BookedNights)).
		Div(decimal.NewFromInt(int64(available))).
		Mul(hundred)
	metrics.Revenue = revenue.Round(2)

	if metrics.BookingsCount > 0 {
		metrics.AveragePerBooking = startedRevenue.Div(decimal.NewFromInt(int64(metrics.BookingsCount))).Round(2)
	}
	if stayNights > 0 {
		metrics.AverageDailyRate = stayRevenue.Div(decimal.NewFromInt(int64(stayNights))).Round(2)
	}

	return metrics
}

// overlapDays counts the calendar days an interval shares with [from, to).
func overlapDays(interval entity.StayInterval, from, to time.Time) int {
	clippedStart := latest(interval.Start, from)
	clippedEnd := earliest(interval.End, to)
	if !clippedEnd.After(clippedStart) {
		return 0
	}
	return max(CalendarDaysBetween(clippedStart, clippedEnd), 0)
}
