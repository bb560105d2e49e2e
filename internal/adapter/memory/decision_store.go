package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type decisionKey struct {
	skuID string
	hour  int64
}

// DecisionStore is an in-memory append-only decision log.
type DecisionStore struct {
	mu    sync.RWMutex
	data  []domain.IntelligenceDecision
	index map[decisionKey]struct{}
}

// NewDecisionStore creates a new in-memory decision log.
func NewDecisionStore() *DecisionStore {
	return &DecisionStore{index: make(map[decisionKey]struct{})}
}

// Append adds a decision. Returns ErrDuplicate if the SKU already has a
// decision for the same cycle hour.
func (s *DecisionStore) Append(_ context.Context, d domain.IntelligenceDecision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := decisionKey{d.SKUID, d.CycleHour.UTC().Unix()}
	if _, exists := s.index[k]; exists {
		return port.ErrDuplicate
	}
	s.index[k] = struct{}{}
	s.data = append(s.data, d)
	return nil
}

// Exists reports whether a decision was recorded for the SKU and hour.
func (s *DecisionStore) Exists(_ context.Context, skuID string, cycleHour time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[decisionKey{skuID, cycleHour.UTC().Unix()}]
	return ok, nil
}

// ListBySKU returns up to limit decisions of a SKU, newest first. A
// non-positive limit returns all of them.
func (s *DecisionStore) ListBySKU(_ context.Context, skuID string, limit int) ([]domain.IntelligenceDecision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.IntelligenceDecision
	for _, d := range s.data {
		if d.SKUID == skuID {
			result = append(result, d)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CycleHour.After(result[j].CycleHour) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// All returns every decision in append order.
func (s *DecisionStore) All() []domain.IntelligenceDecision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.IntelligenceDecision(nil), s.data...)
}
