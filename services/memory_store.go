package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// MemoryCatalogStore serves a catalog held in memory, loaded from a JSON
// fixture or built in tests.
type MemoryCatalogStore struct {
	mu         sync.RWMutex
	categories []models.Category
	products   map[uuid.UUID][]models.Product
}

func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{products: make(map[uuid.UUID][]models.Product)}
}

// AddCategory registers category with its products and returns it with an id.
func (s *MemoryCatalogStore) AddCategory(category models.Category, products ...models.Product) models.Category {
	if category.ID == uuid.Nil {
		category.ID = uuid.Must(uuid.NewV7())
	}
	if category.Status == "" {
		category.Status = "Active"
	}

	owned := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.Must(uuid.NewV7()).String()
		}
		p.CategoryID = category.ID.String()
		p.CategoryName = category.Name
		owned = append(owned, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, category)
	s.products[category.ID] = append(s.products[category.ID], owned...)
	return category
}

func (s *MemoryCatalogStore) ListCategories(context.Context) ([]models.StorefrontCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.StorefrontCategory, 0, len(s.categories))
	for _, c := range s.categories {
		if c.Status != "Active" {
			continue
		}
		out = append(out, models.StorefrontCategory{
			ID:           c.ID.String(),
			Slug:         c.Slug,
			Name:         c.Name,
			Description:  c.Description,
			ProductCount: len(s.products[c.ID]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryCatalogStore) CategoryBySlug(_ context.Context, slug string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Slug == slug && c.Status == "Active" {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (s *MemoryCatalogStore) ProductsByCategory(_ context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products[categoryID]...), nil
}

// ═══════════════════════════════════════════════════════════
// JSON fixture
// ═══════════════════════════════════════════════════════════

type catalogFixture struct {
	Categories []struct {
		Slug        string           `json:"slug"`
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Products    []models.Product `json:"products"`
	} `json:"categories"`
}

// LoadCatalogFixture reads {"categories": [{slug, name, products: [...]}]}.
// Products use the Product API shape, typed sub-objects included.
func LoadCatalogFixture(r io.Reader) (*MemoryCatalogStore, error) {
	var fixture catalogFixture
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("decode catalog fixture: %w", err)
	}

	store := NewMemoryCatalogStore()
	for i, c := range fixture.Categories {
		if c.Slug == "" {
			return nil, fmt.Errorf("catalog fixture: category %d has no slug", i)
		}
		store.AddCategory(models.Category{Slug: c.Slug, Name: c.Name, Description: c.Description}, c.Products...)
	}
	return store, nil
}
