package memory

import (
	"context"
	"sort"
	"sync"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/normalize"
	"adpilot/internal/core/port"
)

// MetricsStore is an in-memory implementation of port.MetricsStore.
type MetricsStore struct {
	mu         sync.RWMutex
	raw        []domain.RawMetricSnapshot
	normalized []domain.NormalizedMetric
}

// NewMetricsStore creates a new in-memory metrics store.
func NewMetricsStore() *MetricsStore {
	return &MetricsStore{}
}

// AppendRaw stores a raw vendor payload.
func (s *MetricsStore) AppendRaw(_ context.Context, snap domain.RawMetricSnapshot) error {
	if snap.CampaignID == "" || !snap.Window.Valid() {
		return domain.ErrValidation
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.Payload = append([]byte(nil), snap.Payload...)
	s.raw = append(s.raw, snap)
	return nil
}

// AppendNormalized stores a normalized metric.
func (s *MetricsStore) AppendNormalized(_ context.Context, m domain.NormalizedMetric) error {
	if m.CampaignID == "" || !m.Window.Valid() {
		return domain.ErrValidation
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.normalized = append(s.normalized, m)
	return nil
}

// QueryWindow returns the normalized records of scope lying inside w.
func (s *MetricsStore) QueryWindow(_ context.Context, scope domain.MetricScope, w domain.Window) ([]domain.NormalizedMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.NormalizedMetric
	for _, m := range s.normalized {
		if !inScope(scope, m.CampaignID, m.SKUID) || !w.Contains(m.Window) {
			continue
		}
		result = append(result, m)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Window.Start.Equal(result[j].Window.Start) {
			return result[i].Window.Start.Before(result[j].Window.Start)
		}
		return result[i].FetchedAt.Before(result[j].FetchedAt)
	})
	return result, nil
}

// Aggregate sums the de-duplicated records of scope lying inside w.
func (s *MetricsStore) Aggregate(ctx context.Context, scope domain.MetricScope, w domain.Window) (domain.Aggregate, error) {
	records, err := s.QueryWindow(ctx, scope, w)
	if err != nil {
		return domain.Aggregate{}, err
	}
	return normalize.Sum(records), nil
}

// Raw returns the stored raw snapshots of a campaign.
func (s *MetricsStore) Raw(campaignID string) []domain.RawMetricSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.RawMetricSnapshot
	for _, r := range s.raw {
		if r.CampaignID == campaignID {
			result = append(result, r)
		}
	}
	return result
}

func inScope(scope domain.MetricScope, campaignID, skuID string) bool {
	if scope.CampaignID != "" {
		return scope.CampaignID == campaignID
	}
	return scope.SKUID != "" && scope.SKUID == skuID
}

var _ port.MetricsStore = (*MetricsStore)(nil)
