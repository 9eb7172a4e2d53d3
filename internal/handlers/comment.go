package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tweety-backend/internal/models"
	"tweety-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	tweetService *services.TweetService
	identity     models.IdentityProvider
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(tweetService *services.TweetService, identity models.IdentityProvider) *CommentHandler {
	return &CommentHandler{
		tweetService: tweetService,
		identity:     identity,
	}
}

// PostCommentRequest represents the request body for posting a comment
type PostCommentRequest struct {
	Comment   string `json:"comment"`
	PostID    string `json:"postID"`
	UserToken string `json:"userToken"`
}

// PostCommentResponse represents the posted comment result
type PostCommentResponse struct {
	Message string          `json:"message"`
	Comment *models.Comment `json:"comment"`
}

// PostComment handles POST /post-tweet-comment
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PostCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.identity.Verify(ctx, req.UserToken)
	if err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	comment, err := h.tweetService.PostComment(ctx, user, req.PostID, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProfileRequired):
			respondMessage(w, "Please complete your profile first", http.StatusUnauthorized)
		case errors.Is(err, models.ErrNotFound):
			respondMessage(w, "Tweet not found", http.StatusNotFound)
		default:
			log.Error().Err(err).Str("post_id", req.PostID).Msg("Failed to post comment")
			respondMessage(w, "Error posting comment", http.StatusInternalServerError)
		}
		return
	}

	respondJSON(w, http.StatusOK, PostCommentResponse{
		Message: "Comment posted successfully",
		Comment: comment,
	})
}

// GetComments handles POST /get-tweet-comments
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PostIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	if _, err := h.identity.Verify(ctx, req.UserToken); err != nil {
		respondMessage(w, "User is not authenticated", http.StatusUnauthorized)
		return
	}

	comments, err := h.tweetService.ListComments(ctx, req.PostID)
	if err != nil {
		log.Error().Err(err).Str("post_id", req.PostID).Msg("Failed to fetch comments")
		respondMessage(w, "Error getting tweet comments", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Comments []models.Comment `json:"comments"`
	}{Comments: comments})
}
