package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tweety-backend/internal/config"
	"tweety-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler() *AuthHandler {
	ident := &stubIdentity{
		tokens: map[string]models.AuthUser{"token-alice": testAlice},
	}
	return NewAuthHandler(ident, config.ClientConfig{
		APIKey:     "public-api-key",
		AuthDomain: "tweety.example.com",
		ProjectID:  "tweety-test",
	})
}

func TestCheckUserLogin_Valid(t *testing.T) {
	h := newAuthHandler()

	rec := doPost(t, h.CheckUserLogin, map[string]string{"token": "token-alice"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckUserLoginResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Authenticated)
	assert.Equal(t, testAlice.Name+" is authenticated", resp.Message)
	assert.Equal(t, testAlice.AvatarURL, resp.UserImg)
}

func TestCheckUserLogin_Invalid(t *testing.T) {
	h := newAuthHandler()

	rec := doPost(t, h.CheckUserLogin, map[string]string{"token": "bogus"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp CheckUserLoginResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Authenticated)
	assert.Equal(t, "User is not authenticated", resp.Message)
}

func TestClientConfig(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodGet, "/firebase-config", nil)
	rec := httptest.NewRecorder()
	h.ClientConfig(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "public-api-key", resp["apiKey"])
	assert.Equal(t, "tweety.example.com", resp["authDomain"])
	assert.Equal(t, "tweety-test", resp["projectId"])
}
