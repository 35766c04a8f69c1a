package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"daykeep/internal/auth"
	"daykeep/internal/ical"
	"daykeep/internal/services"
)

// EventHandler handles HTTP requests for calendar events.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// List returns all of the user's events. Ordering is imposed client-side.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	events, err := h.service.List(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list events")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// Create stores a new event. The date arrives as a client-constructed
// YYYY-MM-DD string and is validated lexically.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	var payload struct {
		EventName string `json:"event_name"`
		EventDate string `json:"event_date"`
		EventTime string `json:"event_time"`
		Emoji     string `json:"emoji"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.service.Create(userID, payload.EventName, payload.EventDate, payload.EventTime, payload.Emoji)
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		respondError(w, http.StatusBadRequest, "Invalid event date")
		return
	case err != nil:
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create event")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

// Delete removes an event. There is no update endpoint; the client edits by
// delete and recreate.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, "Event not found")
		return
	}

	err = h.service.Delete(userID, id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, "Event not found")
		return
	case err != nil:
		log.Error().Err(err).Str("user_id", userID).Int64("event_id", id).Msg("Failed to delete event")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Event deleted!"})
}

// Export renders the user's events as an iCalendar feed.
func (h *EventHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	events, err := h.service.List(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list events for export")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	feed, err := ical.Export(events, time.Now())
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to build calendar feed")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="daykeep.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))
}
