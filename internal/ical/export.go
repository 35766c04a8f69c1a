package ical

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"daykeep/internal/calendar"
	"daykeep/internal/models"
)

// Events with a parseable HH:MM time get a fixed one-hour duration; the
// data model stores no end time.
const timedEventDuration = time.Hour

// Export renders a user's events as an iCalendar feed. Dated events without
// a usable time-of-day become all-day VEVENTs; events with an HH:MM time
// become timed VEVENTs. The calendar date is taken apart lexically, so the
// feed carries exactly the stored day regardless of the server's timezone.
func Export(events []models.Event, now time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, e := range events {
		key, err := calendar.ParseEventDate(e.EventDate)
		if err != nil {
			return "", fmt.Errorf("event %d: %w", e.EventID, err)
		}

		ev := cal.AddEvent(fmt.Sprintf("daykeep-event-%d", e.EventID))
		ev.SetDtStampTime(now)
		ev.SetSummary(e.Emoji + " " + e.EventName)

		day := time.Date(key.Year, time.Month(key.Month+1), key.Day, 0, 0, 0, 0, time.UTC)
		if tod, err := time.Parse("15:04", e.EventTime); err == nil {
			start := day.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute)
			ev.SetStartAt(start)
			ev.SetEndAt(start.Add(timedEventDuration))
			continue
		}

		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
	}

	return cal.Serialize(), nil
}
