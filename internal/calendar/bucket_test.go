package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daykeep/internal/models"
)

func marchEvents() []models.Event {
	return []models.Event{
		{EventID: 1, EventName: "Dentist", EventDate: "2024-03-05", EventTime: "09:00", Emoji: "📌"},
		{EventID: 2, EventName: "Gym", EventDate: "2024-03-05", EventTime: "18:00", Emoji: "🏋️"},
		{EventID: 3, EventName: "Standup", EventDate: "2024-03-06", Emoji: "📌"},
	}
}

func TestBucketEvents(t *testing.T) {
	t.Parallel()

	buckets := BucketEvents(marchEvents())

	day5 := buckets[DateKey{Day: 5, Month: 2, Year: 2024}]
	require.Len(t, day5, 2)
	assert.Equal(t, "Dentist", day5[0].EventName)
	assert.Equal(t, "Gym", day5[1].EventName)

	day6 := buckets[DateKey{Day: 6, Month: 2, Year: 2024}]
	require.Len(t, day6, 1)
	assert.Equal(t, "Standup", day6[0].EventName)
}

func TestBucketEvents_DeleteThenRebucket(t *testing.T) {
	t.Parallel()

	// Deletion is a refetch-and-rebucket, never an incremental removal: the
	// new mapping is derived from the server's authoritative list.
	afterDelete := []models.Event{
		{EventID: 2, EventName: "Gym", EventDate: "2024-03-05", EventTime: "18:00", Emoji: "🏋️"},
		{EventID: 3, EventName: "Standup", EventDate: "2024-03-06", Emoji: "📌"},
	}

	buckets := BucketEvents(afterDelete)

	day5 := buckets[DateKey{Day: 5, Month: 2, Year: 2024}]
	require.Len(t, day5, 1)
	assert.Equal(t, "Gym", day5[0].EventName)
	assert.Len(t, buckets[DateKey{Day: 6, Month: 2, Year: 2024}], 1)
}

func TestBucketEvents_SkipsMalformedDates(t *testing.T) {
	t.Parallel()

	buckets := BucketEvents([]models.Event{
		{EventID: 1, EventName: "ok", EventDate: "2024-03-05"},
		{EventID: 2, EventName: "broken", EventDate: "yesterday"},
	})

	assert.Len(t, buckets, 1)
	assert.Len(t, buckets[DateKey{Day: 5, Month: 2, Year: 2024}], 1)
}

func TestBucketEvents_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, BucketEvents(nil))
}
