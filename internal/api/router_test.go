package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daykeep/internal/auth"
	"daykeep/internal/config"
	"daykeep/internal/models"
)

type fakeUserService struct{}

func (fakeUserService) Register(username, email, password string) (string, error) {
	return "token", nil
}

func (fakeUserService) Login(email, password string) (string, error) {
	return "token", nil
}

type fakeTodoService struct{}

func (fakeTodoService) Create(userID, description string) (models.Todo, error) {
	return models.Todo{TodoID: 1, UserID: userID, Description: description}, nil
}

func (fakeTodoService) List(userID string) ([]models.Todo, error) {
	return []models.Todo{}, nil
}

func (fakeTodoService) Update(userID string, todoID int64, description *string, completed *bool) (models.Todo, error) {
	return models.Todo{TodoID: todoID, UserID: userID}, nil
}

func (fakeTodoService) Delete(userID string, todoID int64) (models.Todo, error) {
	return models.Todo{TodoID: todoID, UserID: userID}, nil
}

func (fakeTodoService) PurgeOlderThan(cutoff time.Time) (int64, error) {
	return 0, nil
}

type fakeEventService struct{}

func (fakeEventService) Create(userID, name, date, timeOfDay, emoji string) (models.Event, error) {
	return models.Event{EventID: 1, UserID: userID, EventName: name, EventDate: date}, nil
}

func (fakeEventService) List(userID string) ([]models.Event, error) {
	return []models.Event{}, nil
}

func (fakeEventService) Delete(userID string, eventID int64) error {
	return nil
}

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	token, err := auth.GenerateToken("user-1", []byte(cfg.JWTSecret), auth.TokenLifetime)
	require.NoError(t, err)
	return NewRouter(cfg, fakeUserService{}, fakeTodoService{}, fakeEventService{}), token
}

// The resource routes live at the root; only signup and login sit
// under the /api prefix.
func TestRouter_ResourceRoutesMountedAtRoot(t *testing.T) {
	t.Parallel()

	router, token := newTestRouter(t)

	for _, path := range []string{"/todos", "/events"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	for _, path := range []string{"/api/todos", "/api/events"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestRouter_AuthRoutesUnderAPIPrefix(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"ada@example.com","password":"pw"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "resource routes require a token")
}
