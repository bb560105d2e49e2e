package domain

import "time"

// Action is the overall outcome chosen for a SKU in one cycle.
type Action string

const (
	ActionReallocate Action = "REALLOCATE"
	ActionPause      Action = "PAUSE"
	ActionActivate   Action = "ACTIVATE"
	ActionNoOp       Action = "NO_OP"
)

// Operation is one capability of a connector or integrator.
type Operation string

const (
	OpCreateCampaign Operation = "create_campaign"
	OpUpdateBudget   Operation = "update_budget"
	OpPause          Operation = "pause"
	OpActivate       Operation = "activate"
	OpGetPerformance Operation = "get_performance"
)

// Operations lists every capability in a stable order.
var Operations = []Operation{OpCreateCampaign, OpUpdateBudget, OpPause, OpActivate, OpGetPerformance}

// CampaignDelta records one operation the engine issued for a campaign and
// how it ended.
type CampaignDelta struct {
	CampaignID string    `json:"campaign_id"`
	Operation  Operation `json:"operation"`
	OldBudget  int64     `json:"old_budget"`
	NewBudget  int64     `json:"new_budget"`
	Delta      int64     `json:"delta"`
	Applied    bool      `json:"applied"`
	Source     string    `json:"source,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Rationale captures the inputs that led to a decision.
type Rationale struct {
	Impressions         int64   `json:"impressions"`
	ImpressionThreshold int64   `json:"impression_threshold"`
	Confidence          float64 `json:"confidence"`
	ROAS                float64 `json:"roas"`
	// ForecastDaysRemaining is nil when nothing is being spent.
	ForecastDaysRemaining *float64 `json:"forecast_days_remaining"`
	BurnRatePerDay        int64    `json:"burn_rate_per_day"`
	RemainingBudget       int64    `json:"remaining_budget"`
	Pacing                string   `json:"pacing"`
	Transition            string   `json:"transition,omitempty"`
	ExploreReserve        int64    `json:"explore_reserve,omitempty"`
	Excluded              []string `json:"excluded,omitempty"`
	Warnings              []string `json:"warnings,omitempty"`
	Failures              []string `json:"failures,omitempty"`
}

// IntelligenceDecision is the append-only record of one SKU's cycle.
type IntelligenceDecision struct {
	ID           string          `json:"id"`
	SKUID        string          `json:"sku_id"`
	ClientID     string          `json:"client_id"`
	CycleHour    time.Time       `json:"cycle_hour"`
	Timestamp    time.Time       `json:"timestamp"`
	Mode         Mode            `json:"mode"`
	PreviousMode Mode            `json:"previous_mode"`
	Action       Action          `json:"action"`
	Deltas       []CampaignDelta `json:"campaign_deltas"`
	Rationale    Rationale       `json:"rationale"`
}
