package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2026, time.April, 30},
		{2026, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysIn(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(time.Date(2026, time.June, 30, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), got)

	for _, s := range []string{"", "2024-2-29", "2023-02-29", "2024-13-01", "2024-04-31", "2024-00-10", "20x4-01-01", "2024/01/01"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, s)
	}
}
