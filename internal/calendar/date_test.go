package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate_RoundTrip(t *testing.T) {
	// The parse is lexical, so the result must be identical no matter what
	// the process-local timezone is. UTC-11 is where a timezone-aware parse
	// of a date-only string shifts the day backward.
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-11", -11*3600),
		time.FixedZone("UTC+13", 13*3600),
	}

	dates := []string{
		"2024-03-05",
		"2024-02-29",
		"2024-01-01",
		"2024-12-31",
		"1999-06-15",
		"2025-10-09",
	}

	restore := time.Local
	defer func() { time.Local = restore }()

	for _, zone := range zones {
		time.Local = zone
		for _, d := range dates {
			t.Run(fmt.Sprintf("%s in %s", d, zone), func(t *testing.T) {
				key, err := ParseEventDate(d)
				require.NoError(t, err)
				assert.Equal(t, d, key.EventDate())
			})
		}
	}
}

func TestParseEventDate_Components(t *testing.T) {
	t.Parallel()

	key, err := ParseEventDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, DateKey{Day: 5, Month: 2, Year: 2024}, key)
	assert.Equal(t, "5-2-2024", key.String())
}

func TestParseEventDate_Invalid(t *testing.T) {
	t.Parallel()

	for _, d := range []string{
		"",
		"2024-03",
		"2024/03/05",
		"2024-13-01",
		"2024-00-01",
		"2024-02-30",
		"2023-02-29",
		"2024-04-31",
		"abcd-03-05",
		"2024-xx-05",
		"2024-03-yy",
		"0000-03-05",
	} {
		_, err := ParseEventDate(d)
		assert.Error(t, err, "date %q", d)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month int // zero-based
		want  int
	}{
		{2024, 0, 31},
		{2024, 1, 29}, // leap year
		{2023, 1, 28},
		{1900, 1, 28}, // century, not divisible by 400
		{2000, 1, 29}, // divisible by 400
		{2024, 3, 30},
		{2024, 11, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month),
			"year %d month %d", tt.year, tt.month)
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.FixedZone("UTC-11", -11*3600))
	assert.Equal(t, DateKey{Day: 5, Month: 2, Year: 2024}, Today(now))
}
