package domain

import (
	"fmt"
	"time"
)

// dateLayout is the human-readable calendar-date format used in all API
// responses, e.g. "Fri Jan 05 2024". No time-of-day component is ever exposed.
const dateLayout = "Mon Jan 02 2006"

// acceptedLayouts are the input formats accepted for exercise dates and
// log-query bounds.
var acceptedLayouts = []string{time.DateOnly, time.RFC3339}

// ParseDate parses an ISO-8601-like date string ("2006-01-02" or RFC 3339).
// The error wraps ErrInvalidInput so handlers map it to a 400.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable date %q", ErrInvalidInput, s)
}

// FormatDate renders t as the calendar-date string used in responses.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Day truncates t to midnight UTC. All date comparisons happen at
// calendar-date granularity.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WithinRange reports whether date falls in [from, to], both bounds inclusive,
// compared at calendar-date granularity. Time-of-day on any argument is ignored.
func WithinRange(date, from, to time.Time) bool {
	d := Day(date)
	return !d.Before(Day(from)) && !d.After(Day(to))
}
