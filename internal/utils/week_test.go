package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Monday maps to itself", "2024-01-01", "2024-01-01"},
		{"Tuesday maps back to Monday", "2024-01-02", "2024-01-01"},
		{"Sunday maps back six days", "2024-01-07", "2024-01-01"},
		{"Next Monday starts a new week", "2024-01-08", "2024-01-08"},
		{"Mid-year Thursday", "2024-06-13", "2024-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseDate(tt.in)
			require.NoError(t, err)

			got := StartOfWeek(in)
			assert.Equal(t, tt.want, FormatDate(got))
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestStartOfWeekDropsTimeOfDay(t *testing.T) {
	in := time.Date(2024, 1, 3, 15, 42, 7, 0, time.UTC)

	got := StartOfWeek(in)
	assert.Equal(t, "2024-01-01", FormatDate(got))
	assert.Zero(t, got.Hour())
	assert.Zero(t, got.Minute())
}

func TestEndOfWeek(t *testing.T) {
	in, err := ParseDate("2024-01-03")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-07", FormatDate(EndOfWeek(in)))
}

func TestWeekLabel(t *testing.T) {
	in, err := ParseDate("2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, "Jan 1, 2024", WeekLabel(in))
}

func TestValidClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"00:00", true},
		{"23:59", true},
		{"9:00", false}, // unpadded hour would sort after "17:00"
		{"24:00", false},
		{"12:60", false},
		{"12.30", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidClockTime(tt.in))
		})
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}
