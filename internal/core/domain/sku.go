package domain

import "time"

// Mode is the intelligence policy a SKU is currently optimised under.
type Mode string

const (
	ModeExplore Mode = "EXPLORE"
	ModeExploit Mode = "EXPLOIT"
)

// SKUStatus is the lifecycle status of a SKU. SKUs are archived rather than
// deleted while campaigns still reference them.
type SKUStatus string

const (
	SKUStatusActive   SKUStatus = "active"
	SKUStatusPaused   SKUStatus = "paused"
	SKUStatusArchived SKUStatus = "archived"
)

// ModeState is the persisted state of the EXPLORE/EXPLOIT machine for one
// SKU. RegressionStreak counts consecutive cycles in EXPLOIT whose ROAS fell
// below the regression threshold.
type ModeState struct {
	Mode             Mode      `json:"mode"`
	EnteredAt        time.Time `json:"entered_at"`
	RegressionStreak int       `json:"regression_streak"`
}

// SKU represents a product-level grouping of campaigns sharing one budget
// pool and one intelligence mode. Budgets are stored in integer units
// (e.g. cents).
type SKU struct {
	ID          string
	ClientID    string
	Name        string
	TotalBudget int64
	Status      SKUStatus
	ModeState
	Overrides IntelligenceOverrides
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IntelligenceOverrides holds optional per-SKU tuning merged on top of the
// global intelligence configuration. A nil field keeps the global value.
type IntelligenceOverrides struct {
	ImpressionThreshold  *int64   `json:"impression_threshold,omitempty"`
	MinExploreDays       *float64 `json:"min_explore_days,omitempty"`
	ExploitConfidence    *float64 `json:"exploit_confidence,omitempty"`
	MinROASForExploit    *float64 `json:"min_roas_for_exploit,omitempty"`
	RegressionROAS       *float64 `json:"regression_roas,omitempty"`
	RegressionCycles     *int     `json:"regression_cycles,omitempty"`
	FloorPercent         *float64 `json:"floor_percent,omitempty"`
	CapPercent           *float64 `json:"cap_percent,omitempty"`
	ExplorePercent       *float64 `json:"explore_percent,omitempty"`
	MinCampaignBudget    *int64   `json:"min_campaign_budget,omitempty"`
	ExploitStepPercent   *float64 `json:"exploit_step_percent,omitempty"`
	MinRunwayDays        *float64 `json:"min_runway_days,omitempty"`
	DepletionWarningDays *float64 `json:"depletion_warning_days,omitempty"`
}
