package handlers

import (
	"net/http"
	"time"

	"github.com/deriverse/deriscope/internal/export"
)

// Trades handles GET /api/trades?address=<wallet>&symbol=<optional>: the
// full analytics bundle for a wallet.
func (h *Handlers) Trades(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		h.writeError(w, http.StatusBadRequest, "Wallet address is required")
		return
	}
	symbol := r.URL.Query().Get("symbol")

	bundle, err := h.analytics.TradeBundle(r.Context(), address, symbol)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch trades data")
		return
	}
	h.writeSuccess(w, bundle)
}

// ExportTrades handles GET /api/trades/export?address=<wallet>&symbol=<optional>,
// serving the trade journal as a CSV download.
func (h *Handlers) ExportTrades(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		w.Header().Set("Content-Type", "application/json")
		h.writeError(w, http.StatusBadRequest, "Wallet address is required")
		return
	}
	symbol := r.URL.Query().Get("symbol")

	trades, err := h.analytics.ExportTrades(r.Context(), address, symbol)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		h.writeServiceError(w, err, "Failed to fetch trades data")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(address, time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.TradesCSV(trades)))
}
