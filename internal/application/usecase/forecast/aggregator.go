package forecast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
	domainerror "github.com/owner-portal/backend/internal/domain/error"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// daysPerRentMonth is the fixed month length used to turn monthly rent into a
// daily rate, whatever the lease's real month lengths are.
var daysPerRentMonth = decimal.NewFromInt(30)

// DefaultHorizons are the forecast windows shown on the owner dashboard.
var DefaultHorizons = []int{30, 60, 90}

// Forecast computes one window per horizon, in the order given, from a single
// (intervals, now) snapshot.
//
// Short-term stays contribute their whole amount to every window that contains
// their start date, even when the stay runs past the window end. Mid-term
// leases are prorated by the days they overlap the window at rent/30 per day.
// A booking counts toward BookingsCount when it starts strictly inside
// (now, now+horizon). Revenue is rounded to whole units once per window.
func Forecast(
	intervals []entity.StayInterval,
	now time.Time,
	horizonsDays []int,
) ([]valueobject.ForecastWindow, error) {
	if err := ValidateHorizons(horizonsDays); err != nil {
		return nil, err
	}

	windows := make([]valueobject.ForecastWindow, 0, len(horizonsDays))
	for _, horizon := range horizonsDays {
		windows = append(windows, forecastWindow(intervals, now, horizon))
	}
	return windows, nil
}

// ValidateHorizons rejects non-positive horizons.
func ValidateHorizons(horizonsDays []int) error {
	for _, horizon := range horizonsDays {
		if horizon <= 0 {
			return domainerror.NewForecastError(
				domainerror.ErrCodeInvalidHorizon,
				fmt.Sprintf("invalid horizon %d", horizon),
				domainerror.ErrInvalidHorizon,
			)
		}
	}
	return nil
}

func forecastWindow(intervals []entity.StayInterval, now time.Time, horizon int) valueobject.ForecastWindow {
	windowEnd := now.AddDate(0, 0, horizon)
	revenue := decimal.Zero
	count := 0

	for _, interval := range intervals {
		switch interval.Category {
		case entity.StayCategoryShortTerm:
			if interval.StartsWithin(now, windowEnd) {
				revenue = revenue.Add(interval.TotalAmount)
				count++
			}
		case entity.StayCategoryMidTerm:
			revenue = revenue.Add(ProrateMonthlyRent(interval, now, windowEnd))
			if interval.StartsWithin(now, windowEnd) {
				count++
			}
		}
	}

	return valueobject.ForecastWindow{
		HorizonDays:   horizon,
		Revenue:       revenue.Round(0),
		BookingsCount: count,
	}
}

// ProrateMonthlyRent attributes a lease's monthly rent to [from, to): the
// calendar days of the lease clipped to the range, at rent/30 per day. The
// result is not rounded.
func ProrateMonthlyRent(lease entity.StayInterval, from, to time.Time) decimal.Decimal {
	clippedStart := latest(lease.Start, from)
	clippedEnd := earliest(lease.End, to)
	if clippedEnd.Before(clippedStart) {
		return decimal.Zero
	}

	days := CalendarDaysBetween(clippedStart, clippedEnd)
	if days <= 0 {
		return decimal.Zero
	}

	return lease.TotalAmount.Mul(decimal.NewFromInt(int64(days))).Div(daysPerRentMonth)
}
