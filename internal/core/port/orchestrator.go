package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// Orchestrator routes campaign operations through the integrator fallback
// chain and persists what it learns. It is the only writer of campaign
// budget and status.
type Orchestrator interface {
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, Result, error)
	UpdateBudget(ctx context.Context, c domain.Campaign, budget int64) (Result, error)
	// Pause pauses c. auto marks the pause as issued by the decision engine.
	Pause(ctx context.Context, c domain.Campaign, auto bool) (Result, error)
	Activate(ctx context.Context, c domain.Campaign) (Result, error)
	// FetchPerformance asks candidates in order and stops at the first
	// success.
	FetchPerformance(ctx context.Context, c domain.Campaign, w domain.Window) (PerformanceResult, error)
	// AggregatePerformance asks every candidate and merges the records.
	AggregatePerformance(ctx context.Context, c domain.Campaign, w domain.Window) (PerformanceResult, error)
}

// CreateCampaignReq describes a campaign to create for a SKU.
type CreateCampaignReq struct {
	SKUID     string
	Platform  domain.Platform
	AccountID string
	Spec      domain.CampaignSpec
}

// Result reports which source served an operation and every attempt made
// along the way.
type Result struct {
	Source   string
	Attempts []domain.Attempt
}

// PerformanceResult is a Result carrying the normalized metric. Sources
// lists every source that contributed to Metric.
type PerformanceResult struct {
	Result
	Metric  domain.NormalizedMetric
	Sources []string
}
