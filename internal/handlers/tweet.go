package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tweety-backend/internal/models"
	"tweety-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// TweetHandler handles tweet and feed HTTP requests
type TweetHandler struct {
	tweetService *services.TweetService
	identity     models.IdentityProvider
}

// NewTweetHandler creates a new tweet handler
func NewTweetHandler(tweetService *services.TweetService, identity models.IdentityProvider) *TweetHandler {
	return &TweetHandler{
		tweetService: tweetService,
		identity:     identity,
	}
}

// CreateTweetRequest represents the request body for posting a tweet
type CreateTweetRequest struct {
	Tweet     string `json:"tweet"`
	UserToken string `json:"userToken"`
}

// CreateTweet handles POST /user-new-post
func (h *TweetHandler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondTyped(w, "Invalid tweet", "error", http.StatusBadRequest)
		return
	}

	user, err := h.identity.Verify(ctx, req.UserToken)
	if err != nil {
		respondTyped(w, "User is not authenticated", "error", http.StatusUnauthorized)
		return
	}

	if err := h.tweetService.Post(ctx, user, req.Tweet); err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			respondTyped(w, "Invalid tweet", "error", http.StatusBadRequest)
		case errors.Is(err, models.ErrProfileRequired):
			respondTyped(w, "Please complete your profile first", "error", http.StatusUnauthorized)
		default:
			log.Error().Err(err).Str("user_email", user.Email).Msg("Failed to post tweet")
			respondTyped(w, "Failed to post tweet", "error", http.StatusInternalServerError)
		}
		return
	}

	log.Info().Str("user_email", user.Email).Msg("Tweet posted")

	respondTyped(w, "Tweet posted successfully!", "success", http.StatusOK)
}

// TokenRequest represents a request body carrying only the bearer credential
type TokenRequest struct {
	Token     string `json:"token"`
	UserToken string `json:"userToken"`
}

// GetUserTweets handles POST /get-user-tweets
func (h *TweetHandler) GetUserTweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondTyped(w, "Could not fetch your tweets. Please try again.", "error", http.StatusInternalServerError)
		return
	}

	user, err := h.identity.Verify(ctx, req.UserToken)
	if err != nil {
		respondTyped(w, "Could not fetch your tweets. Please try again.", "error", http.StatusInternalServerError)
		return
	}

	feed, err := h.tweetService.ListMine(ctx, user)
	if err != nil {
		log.Error().Err(err).Str("user_email", user.Email).Msg("Failed to fetch user tweets")
		respondTyped(w, "Could not fetch your tweets. Please try again.", "error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, feed)
}

// AllUsersTweets handles POST /all-users-tweets
func (h *TweetHandler) AllUsersTweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.identity.Verify(ctx, req.Token)
	if err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	feed, err := h.tweetService.ListAll(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch all tweets")
		respondMessage(w, "Error fetching tweets", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Tweets []services.FeedTweet `json:"tweets"`
	}{Tweets: feed})
}

// PostIDRequest represents a request body targeting a single tweet
type PostIDRequest struct {
	PostID    string `json:"postID"`
	UserToken string `json:"userToken"`
}

// ToggleLikeResponse represents the like toggle result
type ToggleLikeResponse struct {
	Message    string `json:"message"`
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likesCount"`
}

// ToggleLike handles POST /like-or-dislike-tweet
func (h *TweetHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PostIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.identity.Verify(ctx, req.UserToken)
	if err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	liked, likesCount, err := h.tweetService.ToggleLike(ctx, user, req.PostID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondMessage(w, "Tweet not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("post_id", req.PostID).Msg("Failed to toggle like")
		respondTyped(w, "Could not process your like. Please try again.", "error", http.StatusInternalServerError)
		return
	}

	message := "Tweet unliked successfully"
	if liked {
		message = "Tweet liked successfully"
	}

	respondJSON(w, http.StatusOK, ToggleLikeResponse{
		Message:    message,
		Liked:      liked,
		LikesCount: likesCount,
	})
}

// DeletePost handles POST /delete-post-by-id
func (h *TweetHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PostIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.identity.Verify(ctx, req.UserToken)
	if err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.tweetService.Delete(ctx, user, req.PostID); err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			respondMessage(w, "User is not authorized to delete this tweet", http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Str("post_id", req.PostID).Msg("Failed to delete tweet")
		respondTyped(w, "Could not delete tweet. Please try again.", "error", http.StatusInternalServerError)
		return
	}

	log.Info().Str("user_email", user.Email).Str("post_id", req.PostID).Msg("Tweet deleted")

	respondMessage(w, "Tweet deleted successfully", http.StatusOK)
}
