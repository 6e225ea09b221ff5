// Package pricing - Live configuration store
//
// The store holds the current pricing snapshot behind a read-write
// lock. Refresh replaces the whole immutable snapshot; an in-flight
// calculation sees either the old configuration or the new one in
// full, never a partially-updated item list.
package pricing

import (
	"sync"

	"go.uber.org/zap"

	"quoteforge/core/types"
	"quoteforge/internal/logging"
)

// ConfigStore is the handle every calculator call receives. The zero
// store is empty; pricing against it degrades to fallback estimates.
type ConfigStore struct {
	mu      sync.RWMutex
	current *types.PricingConfig
}

// NewConfigStore creates a store, optionally seeded with a snapshot.
func NewConfigStore(cfg *types.PricingConfig) *ConfigStore {
	return &ConfigStore{current: cfg}
}

// Swap atomically replaces the current snapshot and returns the
// previous one. Callers prune answers against the new schema after a
// swap to avoid ghost priced items.
func (s *ConfigStore) Swap(cfg *types.PricingConfig) *types.PricingConfig {
	s.mu.Lock()
	prev := s.current
	s.current = cfg
	s.mu.Unlock()

	if cfg != nil {
		logging.Info("pricing configuration swapped",
			zap.Int("items", len(cfg.Items)),
			zap.Time("last_updated", cfg.LastUpdated))
	}
	return prev
}

// Current returns the current snapshot, or nil when none is loaded.
// The snapshot must be treated as read-only.
func (s *ConfigStore) Current() *types.PricingConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Loaded reports whether a configuration is present.
func (s *ConfigStore) Loaded() bool {
	return s.Current() != nil
}
