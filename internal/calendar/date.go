package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKey identifies a single calendar day. Month is zero-based to match
// the month grid.
type DateKey struct {
	Day   int
	Month int
	Year  int
}

// ParseEventDate extracts the components of a YYYY-MM-DD string lexically.
// It deliberately never round-trips through a time.Time: parsing a
// date-only string with a generic date constructor shifts the date backward
// by a day in timezones behind UTC.
func ParseEventDate(s string) (DateKey, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return DateKey{}, fmt.Errorf("invalid event date %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return DateKey{}, fmt.Errorf("invalid event date %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return DateKey{}, fmt.Errorf("invalid event date %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > DaysInMonth(year, month-1) {
		return DateKey{}, fmt.Errorf("invalid event date %q", s)
	}

	return DateKey{Day: day, Month: month - 1, Year: year}, nil
}

// EventDate formats the key back to the wire representation, zero-padded,
// built directly from the integer components.
func (k DateKey) EventDate() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month+1, k.Day)
}

// String renders the bucket key as day-month-year.
func (k DateKey) String() string {
	return fmt.Sprintf("%d-%d-%d", k.Day, k.Month, k.Year)
}

// DaysInMonth returns the number of days in the given month (zero-based).
// Day 0 of the next month normalizes to the last day of this one, which
// handles the Gregorian leap rule.
func DaysInMonth(year, monthIndex int) int {
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// Today converts a wall-clock instant to its calendar day.
func Today(now time.Time) DateKey {
	return DateKey{Day: now.Day(), Month: int(now.Month()) - 1, Year: now.Year()}
}
