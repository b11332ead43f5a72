package search

import (
	"sync"

	"jobscout-engine/internal/domain"
)

// ResultCache is the single-slot store of the most recent full (filtered +
// sorted, pre-pagination) result list, kept for export. Every search
// overwrites it, including searches that found nothing — "stored empty" and
// "never stored" are distinct states, and only the latter makes export fail.
//
// Two searches finishing concurrently race on the slot; last-to-finish wins.
// That's accepted: this is a convenience cache, not a correctness-critical
// store. The mutex only keeps the slot memory-safe.
type ResultCache struct {
	mu      sync.RWMutex
	stored  bool
	records []domain.JobRecord
}

func NewResultCache() *ResultCache {
	return &ResultCache{}
}

// Put replaces the slot with a copy of records.
func (c *ResultCache) Put(records []domain.JobRecord) {
	snap := make([]domain.JobRecord, len(records))
	copy(snap, records)

	c.mu.Lock()
	c.stored = true
	c.records = snap
	c.mu.Unlock()
}

// Snapshot returns the cached list and whether any search has stored one.
func (c *ResultCache) Snapshot() ([]domain.JobRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.stored {
		return nil, false
	}
	out := make([]domain.JobRecord, len(c.records))
	copy(out, c.records)
	return out, true
}
