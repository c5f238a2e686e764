package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/framepeach/framepeach/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the user id attached by RequireAuth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RequireAuth validates the bearer token from the Authorization header and
// injects the user id into the request context. Absent, malformed, invalid
// or expired tokens all yield 401 with a generic message.
func (s *Server) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeJSON(w, http.StatusUnauthorized, apiResponse{Message: "missing token"})
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeJSON(w, http.StatusUnauthorized, apiResponse{Message: "invalid authorization header"})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, apiResponse{Message: "invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
