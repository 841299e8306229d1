package handlers

import (
	"net/http"
	"time"
)

type healthData struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /api/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, healthData{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
