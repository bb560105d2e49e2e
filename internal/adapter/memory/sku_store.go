// Package memory provides in-process implementations of the storage ports.
// They back tests and the STORAGE_DRIVER=memory mode.
package memory

import (
	"context"
	"sort"
	"sync"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// SKUStore is an in-memory implementation of port.SKURepository.
type SKUStore struct {
	mu       sync.RWMutex
	data     map[string]*domain.SKU
	inactive map[string]bool // client ids
}

// NewSKUStore creates a new in-memory SKU store.
func NewSKUStore() *SKUStore {
	return &SKUStore{
		data:     make(map[string]*domain.SKU),
		inactive: make(map[string]bool),
	}
}

// Put inserts or replaces a SKU.
func (s *SKUStore) Put(sku domain.SKU) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sku.ID] = &sku
}

// SetClientActive marks a client active or inactive. Clients are active
// unless marked otherwise.
func (s *SKUStore) SetClientActive(clientID string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active {
		delete(s.inactive, clientID)
		return
	}
	s.inactive[clientID] = true
}

// ListActive returns active SKUs of active clients ordered by id.
func (s *SKUStore) ListActive(_ context.Context) ([]domain.SKU, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.SKU
	for _, sku := range s.data {
		if sku.Status == domain.SKUStatusActive && !s.inactive[sku.ClientID] {
			result = append(result, *sku)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Get returns a SKU by id.
func (s *SKUStore) Get(_ context.Context, id string) (*domain.SKU, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sku, ok := s.data[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	skuCopy := *sku
	return &skuCopy, nil
}

// UpdateMode stores the mode state of a SKU.
func (s *SKUStore) UpdateMode(_ context.Context, id string, state domain.ModeState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sku, ok := s.data[id]
	if !ok {
		return port.ErrNotFound
	}
	sku.ModeState = state
	return nil
}
