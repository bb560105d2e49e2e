package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"adpilot/internal/core/domain"
)

type runCycleRequest struct {
	AsOf *time.Time `json:"as_of"`
}

type outcomeResponse struct {
	SKUID    string                       `json:"sku_id"`
	Status   string                       `json:"status"`
	Reason   string                       `json:"reason,omitempty"`
	Decision *domain.IntelligenceDecision `json:"decision,omitempty"`
}

type cycleResponse struct {
	AsOf      time.Time         `json:"as_of"`
	CycleHour time.Time         `json:"cycle_hour"`
	Outcomes  []outcomeResponse `json:"outcomes"`
}

// handleRunCycle runs one decision cycle. The body is optional; without
// as_of the cycle runs for the current time.
func (h *Handler) handleRunCycle(w http.ResponseWriter, r *http.Request) {
	var req runCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	asOf := h.now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	report, err := h.svc.Engine.RunCycle(r.Context(), asOf)
	if err != nil {
		h.writeError(w, "run cycle", err, nil)
		return
	}

	resp := cycleResponse{AsOf: report.AsOf, CycleHour: report.CycleHour, Outcomes: make([]outcomeResponse, 0, len(report.Outcomes))}
	for _, o := range report.Outcomes {
		resp.Outcomes = append(resp.Outcomes, outcomeResponse{
			SKUID:    o.SKUID,
			Status:   string(o.Status),
			Reason:   o.Reason,
			Decision: o.Decision,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
