package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type createCampaignRequest struct {
	Platform   domain.Platform `json:"platform"`
	AccountID  string          `json:"account_id"`
	Name       string          `json:"name"`
	Budget     int64           `json:"budget"`
	Objective  string          `json:"objective"`
	BudgetType string          `json:"budget_type"`
}

type updateBudgetRequest struct {
	Budget int64 `json:"budget"`
}

// handleCreateCampaign creates a campaign for a SKU through the vendor
// fallback chain. The campaign is recorded paused until the engine funds it.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	skuID := chi.URLParam(r, "sku_id")
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if _, err := h.svc.SKUs.Get(r.Context(), skuID); err != nil {
		h.writeError(w, "get sku", err, nil)
		return
	}

	c, res, err := h.svc.Orchestrator.CreateCampaign(r.Context(), port.CreateCampaignReq{
		SKUID:     skuID,
		Platform:  req.Platform,
		AccountID: req.AccountID,
		Spec: domain.CampaignSpec{
			Name:       req.Name,
			Budget:     req.Budget,
			Objective:  req.Objective,
			BudgetType: req.BudgetType,
		},
	})
	if err != nil {
		h.writeError(w, "create campaign", err, res.Attempts)
		return
	}
	h.writeJSON(w, http.StatusCreated, operationResponse{Source: res.Source, Attempts: toAttempts(res.Attempts), Campaign: toCampaign(*c)})
}

func (h *Handler) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Budget <= 0 {
		http.Error(w, "budget must be positive", http.StatusBadRequest)
		return
	}
	h.mutate(w, r, "update budget", func(c domain.Campaign) (port.Result, error) {
		return h.svc.Orchestrator.UpdateBudget(r.Context(), c, req.Budget)
	})
}

// handlePause pauses a campaign on behalf of a user. The engine never
// reactivates user-paused campaigns.
func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "pause", func(c domain.Campaign) (port.Result, error) {
		return h.svc.Orchestrator.Pause(r.Context(), c, false)
	})
}

func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "activate", func(c domain.Campaign) (port.Result, error) {
		return h.svc.Orchestrator.Activate(r.Context(), c)
	})
}

// mutate loads the campaign named in the path, runs op and answers with the
// refreshed campaign record.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, name string, op func(domain.Campaign) (port.Result, error)) {
	id := chi.URLParam(r, "campaign_id")
	c, err := h.svc.Campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err, nil)
		return
	}

	res, err := op(*c)
	if err != nil {
		h.writeError(w, name, err, res.Attempts)
		return
	}

	if updated, err := h.svc.Campaigns.Get(r.Context(), id); err == nil {
		c = updated
	}
	h.writeJSON(w, http.StatusOK, operationResponse{Source: res.Source, Attempts: toAttempts(res.Attempts), Campaign: toCampaign(*c)})
}
