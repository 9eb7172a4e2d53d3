package handlers

import (
	"encoding/json"
	"net/http"

	"tweety-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// ChatHandler relays chat prompts to the generative-AI service. Unlike the
// other endpoints, it authenticates via the Authorization header middleware.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the request body for a chat prompt
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /gemini-chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Failed to generate response", http.StatusInternalServerError)
		return
	}

	reply, err := h.chatService.Generate(ctx, req.Message)
	if err != nil {
		log.Error().Err(err).Msg("Chat generation failed")
		respondError(w, "Failed to generate response", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, reply)
}
