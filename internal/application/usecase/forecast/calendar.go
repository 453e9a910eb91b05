// Package forecast turns booking and statement snapshots into revenue
// forecasts and performance figures. Every function in this package is pure:
// "now" is always a parameter and nothing is read from a clock or a store.
package forecast

import (
	"strings"
	"time"
)

// dateLayouts are the formats the storage service is known to emit.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// periodLayouts are the accepted statement period formats.
var periodLayouts = []string{
	"2006-01",
	"2006-01-02",
}

// PeriodLayout is the canonical statement period format.
const PeriodLayout = "2006-01"

// ParseDate parses a raw backend date. Date-only values are read as UTC
// midnight. The boolean is false for empty or unparseable input.
func ParseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParsePeriod parses a statement period into the first instant of its month (UTC).
func ParsePeriod(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// FormatPeriod formats the month containing t as YYYY-MM.
func FormatPeriod(t time.Time) string {
	return t.UTC().Format(PeriodLayout)
}

// CalendarDaysBetween returns the number of calendar-day boundaries between
// the UTC dates of a and b. It is negative when b falls on an earlier date.
func CalendarDaysBetween(a, b time.Time) int {
	return int(dateOf(b).Sub(dateOf(a)).Hours() / 24)
}

// monthStart returns the first instant of the UTC month containing t.
func monthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
