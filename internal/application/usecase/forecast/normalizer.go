package forecast

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
)

// DefaultCancellationStatuses are the status values treated as cancellations
// when no explicit list is configured.
var DefaultCancellationStatuses = []string{
	"cancelled",
	"canceled",
	"cancelled_by_guest",
	"cancelled_by_host",
	"declined",
	"expired",
	"void",
}

// confirmedStatuses map to entity.StayStatusConfirmed.
var confirmedStatuses = map[string]struct{}{
	"confirmed":   {},
	"booked":      {},
	"accepted":    {},
	"active":      {},
	"checked_in":  {},
	"checked_out": {},
	"completed":   {},
}

// NormalizeOptions controls which records survive normalization.
type NormalizeOptions struct {
	// Now is the reference instant used when ForwardOnly is set.
	Now time.Time
	// ForwardOnly drops intervals that ended before Now. Historical
	// callers (occupancy, reporting) leave it unset.
	ForwardOnly bool
	// CancellationStatuses overrides DefaultCancellationStatuses when non-empty.
	CancellationStatuses []string
}

// Normalize converts raw short-term bookings and mid-term leases into stay
// intervals. Records that are malformed, cancelled, carry no positive amount
// or (in forward mode) have already ended are skipped; a bad record never
// aborts the batch. Short-term intervals come first, each group in input order.
func Normalize(
	shortTerm []entity.ShortTermBooking,
	midTerm []entity.MidTermLease,
	opts NormalizeOptions,
) []entity.StayInterval {
	cancelled := statusSet(opts.CancellationStatuses)
	intervals := make([]entity.StayInterval, 0, len(shortTerm)+len(midTerm))

	for _, booking := range shortTerm {
		interval, ok := normalizeShortTerm(booking, cancelled)
		if !ok || elapsed(interval, opts) {
			continue
		}
		intervals = append(intervals, interval)
	}

	for _, lease := range midTerm {
		interval, ok := normalizeMidTerm(lease, cancelled)
		if !ok || elapsed(interval, opts) {
			continue
		}
		intervals = append(intervals, interval)
	}

	return intervals
}

func normalizeShortTerm(b entity.ShortTermBooking, cancelled map[string]struct{}) (entity.StayInterval, bool) {
	start, end, ok := parseRange(b.CheckIn, b.CheckOut)
	if !ok {
		return entity.StayInterval{}, false
	}
	if isCancelled(b.Status, cancelled) {
		return entity.StayInterval{}, false
	}
	if b.TotalAmount == nil || !b.TotalAmount.IsPositive() {
		return entity.StayInterval{}, false
	}

	return entity.StayInterval{
		ID:          b.ID,
		Start:       start,
		End:         end,
		Category:    entity.StayCategoryShortTerm,
		TotalAmount: *b.TotalAmount,
		DailyRate:   perDay(*b.TotalAmount, start, end),
		Label:       b.GuestName,
		Status:      normalizeStatus(b.Status),
	}, true
}

func normalizeMidTerm(l entity.MidTermLease, cancelled map[string]struct{}) (entity.StayInterval, bool) {
	start, end, ok := parseRange(l.StartDate, l.EndDate)
	if !ok {
		return entity.StayInterval{}, false
	}
	if isCancelled(l.Status, cancelled) {
		return entity.StayInterval{}, false
	}
	if l.MonthlyRent == nil || !l.MonthlyRent.IsPositive() {
		return entity.StayInterval{}, false
	}

	return entity.StayInterval{
		ID:          l.ID,
		Start:       start,
		End:         end,
		Category:    entity.StayCategoryMidTerm,
		TotalAmount: *l.MonthlyRent,
		DailyRate:   perDay(*l.MonthlyRent, start, end),
		Label:       l.TenantName,
		Status:      normalizeStatus(l.Status),
	}, true
}

// parseRange parses both ends of a stay and enforces start < end.
func parseRange(rawStart, rawEnd string) (time.Time, time.Time, bool) {
	start, ok := ParseDate(rawStart)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := ParseDate(rawEnd)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// perDay spreads amount over the calendar days of [start, end). Same-day
// stays count as one day.
func perDay(amount decimal.Decimal, start, end time.Time) decimal.Decimal {
	days := CalendarDaysBetween(start, end)
	if days < 1 {
		days = 1
	}
	return amount.Div(decimal.NewFromInt(int64(days)))
}

func elapsed(interval entity.StayInterval, opts NormalizeOptions) bool {
	return opts.ForwardOnly && interval.End.Before(opts.Now)
}

func statusSet(statuses []string) map[string]struct{} {
	if len(statuses) == 0 {
		statuses = DefaultCancellationStatuses
	}
	set := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		key := canonicalStatus(s)
		if key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

func isCancelled(status string, cancelled map[string]struct{}) bool {
	_, ok := cancelled[canonicalStatus(status)]
	return ok
}

func normalizeStatus(status string) entity.StayStatus {
	if _, ok := confirmedStatuses[canonicalStatus(status)]; ok {
		return entity.StayStatusConfirmed
	}
	return entity.StayStatusOther
}

// canonicalStatus lower-cases and trims a status, folding "-" and " " into "_".
func canonicalStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
