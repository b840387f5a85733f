package calendar

import (
	"strconv"
	"strings"
	"time"

	apperrors "tenant-calendar-backend/internal/errors"
)

// Postgres stores timestamps with microsecond resolution, so the last
// representable instant of a month is one microsecond before the next.
const storeResolution = time.Microsecond

// ParseMonth parses path parameters into a year and a month in 1..12
func ParseMonth(yearParam, monthParam string) (int, int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(yearParam))
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, apperrors.ErrInvalidMonth
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthParam))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, apperrors.ErrInvalidMonth
	}
	return year, month, nil
}

// MonthWindow returns the first and last instant of a UTC calendar month
func MonthWindow(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidMonth
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-storeResolution)
	return start, end, nil
}

// RestrictToWindow keeps only events starting inside [start, end] and
// recomputes the event counts from what is left.
func (r Result) RestrictToWindow(start, end time.Time) Result {
	window := DateRange{From: &start, To: &end}
	kept := make([]UnifiedEvent, 0, len(r.Events))
	for _, e := range r.Events {
		if window.Contains(e.StartDate) {
			kept = append(kept, e)
		}
	}
	r.Events = kept
	r.Summary = countEvents(kept, r.Summary)
	return r
}
