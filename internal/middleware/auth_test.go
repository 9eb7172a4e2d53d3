package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tweety-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdentity struct {
	tokens map[string]models.AuthUser
}

func (s *stubIdentity) Verify(ctx context.Context, token string) (models.AuthUser, error) {
	user, ok := s.tokens[token]
	if !ok {
		return models.AuthUser{}, models.ErrUnauthenticated
	}
	return user, nil
}

func (s *stubIdentity) GetUser(ctx context.Context, uid string) (models.AuthUser, error) {
	return models.AuthUser{}, models.ErrNotFound
}

func TestAuthMiddleware(t *testing.T) {
	user := models.AuthUser{UID: "uid-1", Email: "alice@x.com", Name: "Alice"}
	ident := &stubIdentity{tokens: map[string]models.AuthUser{"good-token": user}}

	var seen models.AuthUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetAuthUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(ident)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic good-token", wantStatus: http.StatusUnauthorized},
		{name: "bad token", authHeader: "Bearer bogus", wantStatus: http.StatusUnauthorized},
		{name: "valid", authHeader: "Bearer good-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/gemini-chat", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	require.Equal(t, user, seen)
}

func TestGetAuthUser_MissingFromContext(t *testing.T) {
	assert.Equal(t, models.AuthUser{}, GetAuthUser(context.Background()))
}
