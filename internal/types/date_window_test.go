package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsWithinNextTwoMonthsAt(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "inside the window", date: "2024-02-01", want: true},
		{name: "same instant as now", date: "2024-01-15", want: true},
		{name: "exact upper bound", date: "2024-03-15", want: true},
		{name: "one second past the upper bound", date: "2024-03-15T00:00:01Z", want: false},
		{name: "past the window", date: "2024-04-01", want: false},
		{name: "in the past", date: "2023-12-01", want: false},
		{name: "timestamp with offset", date: "2024-02-10T09:30:00-05:00", want: true},
		{name: "zone-less timestamp", date: "2024-02-10T09:30:00", want: true},
		{name: "malformed", date: "not-a-date", want: false},
		{name: "impossible day", date: "2024-02-30", want: false},
		{name: "empty", date: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinNextTwoMonthsAt(tt.date, now))
		})
	}
}

func TestIsWithinNextTwoMonthsAt_MonthOverflow(t *testing.T) {
	// Dec 31 + 2 months overflows February and lands on Mar 2 in a leap year
	now := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWithinNextTwoMonthsAt("2024-03-02", now))
	assert.False(t, IsWithinNextTwoMonthsAt("2024-03-03", now))

	// and on Mar 3 otherwise
	now = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsWithinNextTwoMonthsAt("2025-03-03", now))
	assert.False(t, IsWithinNextTwoMonthsAt("2025-03-04", now))
}

func TestIsWithinNextTwoMonths_UsesWallClock(t *testing.T) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(time.RFC3339)
	assert.True(t, IsWithinNextTwoMonths(tomorrow))
	assert.False(t, IsWithinNextTwoMonths("1999-01-01"))
}
