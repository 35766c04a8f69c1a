package services

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"daykeep/internal/calendar"
	"daykeep/internal/models"
)

// EventServiceProvider defines the interface for calendar events. There is
// no update operation; the client edits by delete and recreate.
type EventServiceProvider interface {
	Create(userID, name, date, timeOfDay, emoji string) (models.Event, error)
	List(userID string) ([]models.Event, error)
	Delete(userID string, eventID int64) error
}

// EventService provides business logic for per-user calendar events.
type EventService struct {
	db *sqlx.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sqlx.DB) *EventService {
	return &EventService{db: db}
}

// Create validates the calendar date lexically and stores the event. The
// date is kept as a plain string; no timezone interpretation happens on the
// way in or out. An empty emoji falls back to the pin glyph.
func (s *EventService) Create(userID, name, date, timeOfDay, emoji string) (models.Event, error) {
	key, err := calendar.ParseEventDate(date)
	if err != nil {
		return models.Event{}, ErrInvalidDate
	}
	if emoji == "" {
		emoji = models.DefaultEmoji
	}

	event := models.Event{
		UserID:    userID,
		EventName: name,
		EventDate: key.EventDate(), // canonical zero-padded form
		EventTime: timeOfDay,
		Emoji:     emoji,
	}

	query, args, err := sq.Insert("events").
		Columns("user_id", "event_name", "event_date", "event_time", "emoji").
		Values(event.UserID, event.EventName, event.EventDate, event.EventTime, event.Emoji).
		ToSql()
	if err != nil {
		return models.Event{}, err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return models.Event{}, err
	}
	event.EventID, err = res.LastInsertId()
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// List returns all events for the user. No date ordering is imposed; the
// client buckets and orders for display.
func (s *EventService) List(userID string) ([]models.Event, error) {
	events := []models.Event{}
	err := s.db.Select(&events,
		"SELECT event_id, user_id, event_name, event_date, event_time, emoji FROM events WHERE user_id = ?",
		userID)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Delete removes an event owned by the user. Absent and not-owned are both
// ErrNotFound.
func (s *EventService) Delete(userID string, eventID int64) error {
	query, args, err := sq.Delete("events").
		Where(sq.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
