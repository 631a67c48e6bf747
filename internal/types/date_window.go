package types

import (
	"strings"
	"time"
)

// desiredDateLayouts are tried in order. Layouts without a zone parse as UTC.
var desiredDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDesiredDate parses an ISO-8601 date or timestamp
func ParseDesiredDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range desiredDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsWithinNextTwoMonths reports whether date falls between now and two
// calendar months from now, inclusive.
func IsWithinNextTwoMonths(date string) bool {
	return IsWithinNextTwoMonthsAt(date, time.Now())
}

// IsWithinNextTwoMonthsAt is IsWithinNextTwoMonths against a fixed now.
// The upper bound uses AddDate, so month overflow normalizes the way a
// calendar does: two months after Dec 31 is Mar 2 (or Mar 3 in a non-leap year).
func IsWithinNextTwoMonthsAt(date string, now time.Time) bool {
	t, ok := ParseDesiredDate(date)
	if !ok {
		return false
	}
	limit := now.AddDate(0, 2, 0)
	return !t.Before(now) && !t.After(limit)
}
