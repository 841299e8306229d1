package handlers

import "net/http"

// Markets handles GET /api/markets: the tradable market catalog with
// simulated live pricing.
func (h *Handlers) Markets(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, h.analytics.Markets())
}
