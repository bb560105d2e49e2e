package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/port"
)

// Services are the use cases and repositories behind the admin surface.
type Services struct {
	Engine       port.Engine
	Orchestrator port.Orchestrator
	SKUs         port.SKURepository
	Campaigns    port.CampaignRepository
	Decisions    port.DecisionRepository
}

// Handler is the inbound HTTP adapter. It triggers cycles, runs ad-hoc
// orchestrated operations and serves the decision log and performance
// reads. Routes are registered on a chi.Router.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
	now    func() time.Time
}

// NewHandler creates a handler with all routes configured. metrics, when
// not nil, is served on /metrics.
func NewHandler(svc Services, logger *slog.Logger, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger, now: time.Now}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/cycles", h.handleRunCycle)
		r.Get("/skus/{sku_id}/decisions", h.handleListDecisions)
		r.Post("/skus/{sku_id}/campaigns", h.handleCreateCampaign)
		r.Route("/campaigns/{campaign_id}", func(r chi.Router) {
			r.Post("/budget", h.handleUpdateBudget)
			r.Post("/pause", h.handlePause)
			r.Post("/activate", h.handleActivate)
			r.Get("/performance", h.handlePerformance)
		})
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
