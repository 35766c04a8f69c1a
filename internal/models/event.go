package models

// DefaultEmoji marks events created without an explicit emoji.
const DefaultEmoji = "📌"

// Event is a calendar annotation for a single day. EventDate is a plain
// YYYY-MM-DD string; it is stored and returned verbatim so that no timezone
// conversion can shift the date.
type Event struct {
	EventID   int64  `db:"event_id" json:"event_id"`
	UserID    string `db:"user_id" json:"-"`
	EventName string `db:"event_name" json:"event_name"`
	EventDate string `db:"event_date" json:"event_date"`
	EventTime string `db:"event_time" json:"event_time"`
	Emoji     string `db:"emoji" json:"emoji"`
}
