package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"daykeep/internal/auth"
	"daykeep/internal/services"
)

// TodoHandler handles HTTP requests for a user's todo list. The acting
// identity always comes from the token; ids in request bodies are ignored.
type TodoHandler struct {
	service services.TodoServiceProvider
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(service services.TodoServiceProvider) *TodoHandler {
	return &TodoHandler{service: service}
}

// List returns the user's todos in insertion order.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	todos, err := h.service.List(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list todos")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	respondJSON(w, http.StatusOK, todos)
}

// Create adds a new todo for the user.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	var payload struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.service.Create(userID, payload.Description)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create todo")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	respondJSON(w, http.StatusCreated, todo)
}

// Update patches a todo's description and/or completion flag.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	var payload struct {
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.service.Update(userID, id, payload.Description, payload.Completed)
	switch {
	case errors.Is(err, services.ErrEmptyUpdate):
		respondError(w, http.StatusBadRequest, "Nothing to update")
		return
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	case err != nil:
		log.Error().Err(err).Str("user_id", userID).Int64("todo_id", id).Msg("Failed to update todo")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	respondJSON(w, http.StatusOK, todo)
}

// Delete removes a todo and echoes the deleted row.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	todo, err := h.service.Delete(userID, id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	case err != nil:
		log.Error().Err(err).Str("user_id", userID).Int64("todo_id", id).Msg("Failed to delete todo")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":     "Todo deleted!",
		"deletedTodo": todo,
	})
}
