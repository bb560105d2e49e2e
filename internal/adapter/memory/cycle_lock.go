package memory

import (
	"context"
	"sync"
	"time"
)

// CycleLock is a process-local port.CycleLock.
type CycleLock struct {
	mu     sync.Mutex
	claims map[decisionKey]struct{}
}

// NewCycleLock creates an empty claim set.
func NewCycleLock() *CycleLock {
	return &CycleLock{claims: make(map[decisionKey]struct{})}
}

// TryAcquire claims (skuID, hour). It returns false when already claimed.
func (l *CycleLock) TryAcquire(_ context.Context, skuID string, hour time.Time) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := decisionKey{skuID, hour.UTC().Unix()}
	if _, ok := l.claims[k]; ok {
		return false, nil
	}
	l.claims[k] = struct{}{}
	// forget claims older than a day
	cutoff := hour.Add(-24 * time.Hour).UTC().Unix()
	for c := range l.claims {
		if c.hour < cutoff {
			delete(l.claims, c)
		}
	}
	return true, nil
}

// Release drops the claim on (skuID, hour).
func (l *CycleLock) Release(_ context.Context, skuID string, hour time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.claims, decisionKey{skuID, hour.UTC().Unix()})
	return nil
}
