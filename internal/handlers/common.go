package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the {error} failure shape used by the profile and chat
// endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the {message, type?} shape used by the tweet and
// engagement endpoints
type MessageResponse struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// respondJSON writes a JSON response with the given status
func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// respondError sends an {error} response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondMessage sends a {message} response
func respondMessage(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, MessageResponse{Message: message})
}

// respondTyped sends a {message, type} response
func respondTyped(w http.ResponseWriter, message, typ string, statusCode int) {
	respondJSON(w, statusCode, MessageResponse{Message: message, Type: typ})
}
