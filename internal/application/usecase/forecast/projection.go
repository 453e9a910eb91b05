package forecast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
	domainerror "github.com/owner-portal/backend/internal/domain/error"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// ProjectMonthly spreads forward revenue over calendar months, starting with
// the month that contains now. Only revenue after now is attributed: short-term
// stays starting after now land in the month of their start date, leases are
// prorated over each month from max(monthStart, now) at rent/30 per day.
func ProjectMonthly(
	intervals []entity.StayInterval,
	now time.Time,
	months int,
) ([]valueobject.MonthlyProjection, error) {
	if months <= 0 {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeInvalidMonthCount,
			fmt.Sprintf("invalid month count %d", months),
			domainerror.ErrInvalidMonthCount,
		)
	}

	first := monthStart(now)
	projections := make([]valueobject.MonthlyProjection, 0, months)

	for i := 0; i < months; i++ {
		periodStart := first.AddDate(0, i, 0)
		periodEnd := periodStart.AddDate(0, 1, 0)
		from := latest(periodStart, now)

		shortTerm := decimal.Zero
		midTerm := decimal.Zero
		count := 0

		for _, interval := range intervals {
			startsInPeriod := interval.Start.After(now) &&
				!interval.Start.Before(periodStart) &&
				interval.Start.Before(periodEnd)

			switch interval.Category {
			case entity.StayCategoryShortTerm:
				if startsInPeriod {
					shortTerm = shortTerm.Add(interval.TotalAmount)
					count++
				}
			case entity.StayCategoryMidTerm:
				midTerm = midTerm.Add(ProrateMonthlyRent(interval, from, periodEnd))
				if startsInPeriod {
					count++
				}
			}
		}

		projections = append(projections, valueobject.MonthlyProjection{
			Period:        FormatPeriod(periodStart),
			ShortTerm:     shortTerm.Round(0),
			MidTerm:       midTerm.Round(0),
			Total:         shortTerm.Add(midTerm).Round(0),
			BookingsCount: count,
		})
	}

	return projections, nil
}
