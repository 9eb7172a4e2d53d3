package handlers

import (
	"encoding/json"
	"net/http"

	"tweety-backend/internal/config"
	"tweety-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// AuthHandler handles login checks and the public client configuration
type AuthHandler struct {
	identity  models.IdentityProvider
	clientCfg config.ClientConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identity models.IdentityProvider, clientCfg config.ClientConfig) *AuthHandler {
	return &AuthHandler{
		identity:  identity,
		clientCfg: clientCfg,
	}
}

// CheckUserLoginRequest represents the request body for a login check
type CheckUserLoginRequest struct {
	Token string `json:"token"`
}

// CheckUserLoginResponse represents the login check result
type CheckUserLoginResponse struct {
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
	UserImg       string `json:"userImg,omitempty"`
}

// CheckUserLogin handles POST /check-user-login
func (h *AuthHandler) CheckUserLogin(w http.ResponseWriter, r *http.Request) {
	var req CheckUserLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusUnauthorized, CheckUserLoginResponse{
			Message:       "User is not authenticated",
			Authenticated: false,
		})
		return
	}

	user, err := h.identity.Verify(r.Context(), req.Token)
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, CheckUserLoginResponse{
			Message:       "User is not authenticated",
			Authenticated: false,
		})
		return
	}

	log.Debug().Str("uid", user.UID).Msg("Login check passed")

	respondJSON(w, http.StatusOK, CheckUserLoginResponse{
		Message:       user.Name + " is authenticated",
		Authenticated: true,
		UserImg:       user.AvatarURL,
	})
}

// ClientConfig handles GET /firebase-config. The payload is public by
// design; clients bootstrap their provider SDK from it.
func (h *AuthHandler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.clientCfg)
}
