package port

import (
	"context"
	"errors"
	"time"

	"adpilot/internal/core/domain"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// SKURepository persists SKUs and their intelligence mode state.
type SKURepository interface {
	// ListActive returns active SKUs owned by active clients.
	ListActive(ctx context.Context) ([]domain.SKU, error)
	// Get returns a SKU by id or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.SKU, error)
	// UpdateMode stores the mode machine state of a SKU.
	UpdateMode(ctx context.Context, id string, state domain.ModeState) error
}

// CampaignRepository persists campaign records. Budget and status are only
// written after a vendor confirmed the matching mutation.
type CampaignRepository interface {
	ListBySKU(ctx context.Context, skuID string) ([]domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	Create(ctx context.Context, c domain.Campaign) error
	UpdateBudget(ctx context.Context, id string, budget int64, at time.Time) error
	UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus, autoPaused bool, at time.Time) error
}

// DecisionRepository is the append-only intelligence decision log. Append
// returns ErrDuplicate when a decision for the same SKU and cycle hour
// already exists.
type DecisionRepository interface {
	Append(ctx context.Context, d domain.IntelligenceDecision) error
	Exists(ctx context.Context, skuID string, cycleHour time.Time) (bool, error)
	// ListBySKU returns the newest decisions first.
	ListBySKU(ctx context.Context, skuID string, limit int) ([]domain.IntelligenceDecision, error)
}

// MetricsStore keeps raw vendor payloads and normalized metrics. Both are
// append-only and written independently.
type MetricsStore interface {
	AppendRaw(ctx context.Context, snap domain.RawMetricSnapshot) error
	AppendNormalized(ctx context.Context, m domain.NormalizedMetric) error
	// QueryWindow returns normalized records of the scope whose window lies
	// inside w, ordered by window start and fetch time.
	QueryWindow(ctx context.Context, scope domain.MetricScope, w domain.Window) ([]domain.NormalizedMetric, error)
	// Aggregate sums the records QueryWindow would return, keeping only the
	// newest record per campaign and window.
	Aggregate(ctx context.Context, scope domain.MetricScope, w domain.Window) (domain.Aggregate, error)
}

// CycleLock claims the right to run one SKU's cycle for one hour across
// engine instances. A claim is released when the cycle ended without a
// decision so that a later run in the same hour may retry.
type CycleLock interface {
	TryAcquire(ctx context.Context, skuID string, hour time.Time) (bool, error)
	Release(ctx context.Context, skuID string, hour time.Time) error
}

// DecisionPublisher announces decisions to downstream consumers.
type DecisionPublisher interface {
	PublishDecision(ctx context.Context, d domain.IntelligenceDecision) error
}
