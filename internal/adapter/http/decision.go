package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const defaultDecisionLimit = 50

// handleListDecisions returns a SKU's decision log, newest first. The
// optional limit query parameter defaults to 50.
func (h *Handler) handleListDecisions(w http.ResponseWriter, r *http.Request) {
	skuID := chi.URLParam(r, "sku_id")
	limit := defaultDecisionLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	if _, err := h.svc.SKUs.Get(r.Context(), skuID); err != nil {
		h.writeError(w, "get sku", err, nil)
		return
	}
	decisions, err := h.svc.Decisions.ListBySKU(r.Context(), skuID, limit)
	if err != nil {
		h.writeError(w, "list decisions", err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, decisions)
}
