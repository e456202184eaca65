package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/pandroidYT/doxxd-backend/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the principal id attached by RequireAuth, or ""
// for a request that never passed the gate.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// stripScheme removes an optional case-insensitive "Bearer " prefix from the
// Authorization header value. Both "Authorization: <token>" and
// "Authorization: Bearer <token>" are accepted; this is the single parsing
// rule for the whole API.
func stripScheme(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// RequireAuth is the authorization gate: it extracts the bearer token,
// verifies it, and attaches the recovered principal id to the request
// context. Missing or failing tokens are rejected with 401 and never reach
// the downstream handler. The gate itself never touches the store.
func (s *Server) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			errorJSON(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		userID, err := auth.GetUserIDFromToken(stripScheme(header), s.jwtSecret)
		if err != nil {
			s.logger.Debug(r.Context(), "token rejected", "reason", err.Error())
			errorJSON(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
