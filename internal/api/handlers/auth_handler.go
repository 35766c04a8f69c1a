package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"daykeep/internal/auth"
	"daykeep/internal/services"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	service services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupPayload defines the structure for registration requests.
type SignupPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user and returns a session token.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Register(payload.Username, payload.Email, payload.Password)
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		respondError(w, http.StatusBadRequest, "Email already exists")
		return
	case errors.Is(err, auth.ErrWeakPassword):
		// The message enumerates every unmet rule category.
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "User created successfully",
		"token":   token,
	})
}

// Login authenticates a user and returns a fresh session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Login(payload.Email, payload.Password)
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusBadRequest, "Invalid user or email")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		respondError(w, http.StatusBadRequest, "Invalid password")
		return
	case err != nil:
		log.Error().Err(err).Str("email", payload.Email).Msg("Login failed")
		respondError(w, http.StatusInternalServerError, genericErrorMsg)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}
