package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(secret []byte, gotUserID *string) http.Handler {
	return Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if ok {
			*gotUserID = id
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestMiddleware_MissingToken(t *testing.T) {
	t.Parallel()

	var userID string
	h := protected([]byte("k"), &userID)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, userID)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	var userID string
	h := protected([]byte("k"), &userID)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, userID)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", []byte("k"), -1)
	require.NoError(t, err)

	var userID string
	h := protected([]byte("k"), &userID)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("user-42", []byte("k"), TokenLifetime)
	require.NoError(t, err)

	var userID string
	h := protected([]byte("k"), &userID)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", userID)
}

func TestMiddleware_BarePrefixlessToken(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", []byte("k"), TokenLifetime)
	require.NoError(t, err)

	var userID string
	h := protected([]byte("k"), &userID)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", userID)
}
