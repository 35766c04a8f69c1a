package calendar

import "daykeep/internal/models"

// BucketEvents derives the day-keyed mapping from the server's flat event
// list. Server order is preserved within each day. Events with a malformed
// date are skipped; the server validates dates on write, so this only
// guards against foreign rows.
func BucketEvents(events []models.Event) map[DateKey][]models.Event {
	buckets := make(map[DateKey][]models.Event, len(events))
	for _, e := range events {
		key, err := ParseEventDate(e.EventDate)
		if err != nil {
			continue
		}
		buckets[key] = append(buckets[key], e)
	}
	return buckets
}
