package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type attemptResponse struct {
	Source  string `json:"source"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

type errorResponse struct {
	Error    string            `json:"error"`
	Attempts []attemptResponse `json:"attempts,omitempty"`
}

type campaignResponse struct {
	ID         string    `json:"id"`
	SKUID      string    `json:"sku_id"`
	Platform   string    `json:"platform"`
	AccountID  string    `json:"account_id"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	Budget     int64     `json:"budget"`
	Status     string    `json:"status"`
	AutoPaused bool      `json:"auto_paused"`
	Source     string    `json:"source,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type operationResponse struct {
	Source   string            `json:"source"`
	Attempts []attemptResponse `json:"attempts"`
	Campaign *campaignResponse `json:"campaign,omitempty"`
}

func toAttempts(attempts []domain.Attempt) []attemptResponse {
	out := make([]attemptResponse, 0, len(attempts))
	for _, a := range attempts {
		r := attemptResponse{Source: a.Source, Outcome: string(a.Outcome)}
		if a.Err != nil {
			r.Error = a.Err.Error()
		}
		out = append(out, r)
	}
	return out
}

func toCampaign(c domain.Campaign) *campaignResponse {
	return &campaignResponse{
		ID:         c.ID,
		SKUID:      c.SKUID,
		Platform:   string(c.Platform),
		AccountID:  c.AccountID,
		ExternalID: c.ExternalID,
		Name:       c.Name,
		Budget:     c.Budget,
		Status:     string(c.Status),
		AutoPaused: c.AutoPaused,
		Source:     c.Source,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps an error onto a status code. Orchestration failures carry
// every attempt made before giving up.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error, attempts []domain.Attempt) {
	var exhausted *domain.AllSourcesExhaustedError
	if errors.As(err, &exhausted) && len(attempts) == 0 {
		attempts = exhausted.Attempts
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAllSourcesExhausted):
		status = http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error(), Attempts: toAttempts(attempts)})
}
