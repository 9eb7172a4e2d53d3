package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tweety-backend/internal/models"
	"tweety-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	profileService *services.ProfileService
	identity       models.IdentityProvider
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService, identity models.IdentityProvider) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		identity:       identity,
	}
}

// GetProfileResponse represents the profile fetch result
type GetProfileResponse struct {
	ProfileExists bool            `json:"profileExists"`
	Profile       *models.Profile `json:"profile"`
}

// GetProfile handles POST /get-user-profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	user, err := h.identity.Verify(ctx, req.UserToken)
	if err != nil {
		respondError(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	profile, err := h.profileService.Get(ctx, user.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		log.Error().Err(err).Str("user_email", user.Email).Msg("Failed to fetch profile")
		respondError(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, GetProfileResponse{
		ProfileExists: profile != nil,
		Profile:       profile,
	})
}

// SaveProfileRequest represents the request body for saving a profile. Age
// is accepted as either a JSON number or a string; the service parses it.
type SaveProfileRequest struct {
	Name      string `json:"name"`
	Age       any    `json:"age"`
	Bio       string `json:"bio"`
	UserToken string `json:"userToken"`
}

// SaveProfileResponse represents the profile save result
type SaveProfileResponse struct {
	Success bool `json:"success"`
}

// SaveProfile handles POST /save-user-profile
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	user, err := h.identity.Verify(ctx, req.UserToken)
	if err != nil {
		respondError(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	if err := h.profileService.Save(ctx, user.Email, req.Name, req.Age, req.Bio); err != nil {
		log.Error().Err(err).Str("user_email", user.Email).Msg("Failed to save profile")
		respondError(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	log.Info().Str("user_email", user.Email).Msg("Profile saved")

	respondJSON(w, http.StatusOK, SaveProfileResponse{Success: true})
}
