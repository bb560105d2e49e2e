package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignStore is an in-memory implementation of port.CampaignRepository.
type CampaignStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Campaign
}

// NewCampaignStore creates a new in-memory campaign store.
func NewCampaignStore() *CampaignStore {
	return &CampaignStore{data: make(map[string]*domain.Campaign)}
}

// ListBySKU returns the campaigns of a SKU ordered by id.
func (s *CampaignStore) ListBySKU(_ context.Context, skuID string) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Campaign
	for _, c := range s.data {
		if c.SKUID == skuID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Get returns a campaign by id.
func (s *CampaignStore) Get(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.data[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	campaignCopy := *c
	return &campaignCopy, nil
}

// Create stores a new campaign. Returns ErrDuplicate if the id exists.
func (s *CampaignStore) Create(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.ID]; exists {
		return port.ErrDuplicate
	}
	s.data[c.ID] = &c
	return nil
}

// UpdateBudget sets the budget of a campaign.
func (s *CampaignStore) UpdateBudget(_ context.Context, id string, budget int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.data[id]
	if !ok {
		return port.ErrNotFound
	}
	c.Budget = budget
	c.UpdatedAt = at
	return nil
}

// UpdateStatus sets the status and the auto-pause marker of a campaign.
func (s *CampaignStore) UpdateStatus(_ context.Context, id string, status domain.CampaignStatus, autoPaused bool, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.data[id]
	if !ok {
		return port.ErrNotFound
	}
	c.Status = status
	c.AutoPaused = autoPaused
	c.UpdatedAt = at
	return nil
}
