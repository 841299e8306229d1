// Package handlers implements the API endpoint handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deriverse/deriscope/internal/service"
	"github.com/deriverse/deriscope/internal/solana"
)

// envelope mirrors the JSON wrapper the dashboard frontend expects.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Handlers manages all HTTP endpoint handlers.
type Handlers struct {
	analytics *service.Analytics
}

// New creates a handlers instance over the analytics service.
func New(analytics *service.Analytics) *Handlers {
	return &Handlers{analytics: analytics}
}

// writeJSON writes a JSON response with a fallback on encoder failure.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"success":false,"error":"json encoding failed"}`, http.StatusInternalServerError)
	}
}

// writeSuccess wraps data in the success envelope.
func (h *Handlers) writeSuccess(w http.ResponseWriter, data any) {
	h.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// writeError wraps a user-facing message in the failure envelope.
func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, envelope{Success: false, Error: message})
}

// writeServiceError maps boundary errors to status codes and the messages
// the dashboard shows: 400 for malformed addresses, 429 for upstream
// throttling (so the frontend can schedule a retry), 500 otherwise.
func (h *Handlers) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, solana.ErrInvalidAddress):
		h.writeError(w, http.StatusBadRequest, "Invalid Solana wallet address")
	case errors.Is(err, solana.ErrRateLimited):
		h.writeError(w, http.StatusTooManyRequests, "Rate limited by Solana RPC. Please try again in a moment.")
	default:
		h.writeError(w, http.StatusInternalServerError, fallback)
	}
}

// NotFound handles 404 responses.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.writeError(w, http.StatusNotFound, "The requested endpoint does not exist")
}
