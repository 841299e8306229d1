package handlers

import "net/http"

// Portfolio handles GET /api/portfolio?address=<wallet>.
func (h *Handlers) Portfolio(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		h.writeError(w, http.StatusBadRequest, "Wallet address is required")
		return
	}

	portfolio, err := h.analytics.Portfolio(r.Context(), address)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch portfolio from blockchain")
		return
	}
	h.writeSuccess(w, portfolio)
}
