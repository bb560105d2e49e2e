package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type performanceResponse struct {
	Source   string                  `json:"source"`
	Sources  []string                `json:"sources,omitempty"`
	Attempts []attemptResponse       `json:"attempts"`
	Metric   domain.NormalizedMetric `json:"metric"`
}

// handlePerformance fetches a campaign's performance for [from, to). Both
// bounds are RFC3339 timestamps and default to the last 24 hours. With
// merge=true every source is asked and the results are merged.
func (h *Handler) handlePerformance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := h.now().UTC()
	w0 := domain.Window{Start: now.Add(-24 * time.Hour), End: now}

	var err error
	if s := q.Get("from"); s != "" {
		if w0.Start, err = time.Parse(time.RFC3339, s); err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("to"); s != "" {
		if w0.End, err = time.Parse(time.RFC3339, s); err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	}
	if !w0.Valid() {
		http.Error(w, "'from' must be before 'to'", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Campaigns.Get(r.Context(), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeError(w, "get campaign", err, nil)
		return
	}

	var res port.PerformanceResult
	if q.Get("merge") == "true" {
		res, err = h.svc.Orchestrator.AggregatePerformance(r.Context(), *c, w0)
	} else {
		res, err = h.svc.Orchestrator.FetchPerformance(r.Context(), *c, w0)
	}
	if err != nil {
		h.writeError(w, "fetch performance", err, res.Attempts)
		return
	}
	h.writeJSON(w, http.StatusOK, performanceResponse{
		Source:   res.Source,
		Sources:  res.Sources,
		Attempts: toAttempts(res.Attempts),
		Metric:   res.Metric,
	})
}
