package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
)

// refNow is the reference instant shared by the tests in this package.
var refNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func dayFromNow(n int) time.Time {
	return refNow.AddDate(0, 0, n)
}

func dateFromNow(n int) string {
	return dayFromNow(n).Format("2006-01-02")
}

func stay(id string, category entity.StayCategory, startDay, endDay int, total int64) entity.StayInterval {
	return entity.StayInterval{
		ID:          id,
		Start:       dayFromNow(startDay),
		End:         dayFromNow(endDay),
		Category:    category,
		TotalAmount: decimal.NewFromInt(total),
		Status:      entity.StayStatusConfirmed,
	}
}
