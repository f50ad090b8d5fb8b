package catalog_cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

const TTL = 5 * time.Minute

// ── Storefront category list cache ───────────────────────────────────────────
// Stores the active categories with product counts.

type categoryEntry struct {
	data      []models.StorefrontCategory
	fetchedAt time.Time
}

var (
	categoryMu    sync.RWMutex
	categoryCache *categoryEntry
)

func GetCategories() ([]models.StorefrontCategory, bool) {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	if categoryCache != nil && time.Since(categoryCache.fetchedAt) < TTL {
		return categoryCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.StorefrontCategory) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	categoryCache = &categoryEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call after reseeding or any catalog write) ───────────────────

func InvalidateCategories() {
	categoryMu.Lock()
	categoryCache = nil
	categoryMu.Unlock()
}
