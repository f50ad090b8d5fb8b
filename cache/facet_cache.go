package catalog_cache

import (
	"context"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// Entry is the cached facet panel of one category page.
type Entry struct {
	FilterGroups []models.FilterGroup `json:"filterGroups"`
	PriceRange   models.PriceRange    `json:"priceRange"`
}

// Store caches facet entries by category slug. A Get error is a miss to the
// caller.
type Store interface {
	Get(ctx context.Context, slug string) (Entry, bool, error)
	Set(ctx context.Context, slug string, entry Entry) error
	Invalidate(ctx context.Context) error
}

// ── In-process store ─────────────────────────────────────────────────────────

type memoryEntry struct {
	entry     Entry
	fetchedAt time.Time
}

type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = TTL
	}
	return &MemoryStore{ttl: ttl, entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, slug string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[slug]
	if !ok || s.now().Sub(e.fetchedAt) >= s.ttl {
		return Entry{}, false, nil
	}
	return e.entry, true, nil
}

func (s *MemoryStore) Set(_ context.Context, slug string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[slug] = memoryEntry{entry: entry, fetchedAt: s.now()}
	return nil
}

func (s *MemoryStore) Invalidate(context.Context) error {
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
	return nil
}
