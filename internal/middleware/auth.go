package middleware

import (
	"context"
	"net/http"
	"strings"

	"tweety-backend/internal/models"
)

type contextKey string

const authUserKey contextKey = "auth_user"

// AuthMiddleware authenticates requests that carry the bearer credential in
// the Authorization header. Most endpoints take the token in the request
// body instead and verify inline; only the chat relay uses this.
func AuthMiddleware(identity models.IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := identity.Verify(r.Context(), parts[1])
			if err != nil {
				respondError(w, "Authentication failed", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), authUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAuthUser extracts the authenticated user from context
func GetAuthUser(ctx context.Context) models.AuthUser {
	user, ok := ctx.Value(authUserKey).(models.AuthUser)
	if !ok {
		return models.AuthUser{}
	}
	return user
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
