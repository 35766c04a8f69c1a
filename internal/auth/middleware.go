package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type contextKey string

const userIDKey = contextKey("userID")

// ContextWithUserID returns a context carrying the acting user's identifier.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the acting user's identifier set by Middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Middleware protects routes with bearer-token authentication. Requests
// without a token are rejected before reaching the handler; requests with a
// bad or expired token fail the validation check. The decoded user id is
// placed in the request context and is the only identity resource handlers
// may trust.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The Bearer prefix is optional; a bare token is accepted too.
			tokenStr := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, "Access denied")
				return
			}

			claims, err := ValidateToken(tokenStr, secret)
			if err != nil {
				log.Warn().Err(err).Msg("JWT verification failed")
				writeError(w, http.StatusBadRequest, "Invalid token")
				return
			}

			ctx := ContextWithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
