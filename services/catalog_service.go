package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	catalog_cache "github.com/Modeva-Ecommerce/modeva-pc-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/facets"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// CatalogService assembles category pages: the product payload, the facet
// panel and filtered product pages.
type CatalogService struct {
	store  CatalogStore
	engine *facets.Engine
	cache  catalog_cache.Store
	log    *zap.Logger
}

func NewCatalogService(store CatalogStore, engine *facets.Engine, cache catalog_cache.Store, logger *zap.Logger) *CatalogService {
	if engine == nil {
		engine = facets.New()
	}
	if cache == nil {
		cache = catalog_cache.NewMemoryStore(catalog_cache.TTL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{store: store, engine: engine, cache: cache, log: logger}
}

// Categories lists the active categories, served from the in-process cache
// when fresh.
func (s *CatalogService) Categories(ctx context.Context) ([]models.StorefrontCategory, error) {
	if cached, ok := catalog_cache.GetCategories(); ok {
		return cached, nil
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	catalog_cache.SetCategories(categories)
	return categories, nil
}

// Payload loads the products of a category page in the Product API shape.
func (s *CatalogService) Payload(ctx context.Context, slug string) (models.CatalogPayload, models.CategoryRef, error) {
	category, err := s.store.CategoryBySlug(ctx, slug)
	if err != nil {
		return models.CatalogPayload{}, models.CategoryRef{}, err
	}
	products, err := s.store.ProductsByCategory(ctx, category.ID)
	if err != nil {
		return models.CatalogPayload{}, models.CategoryRef{}, err
	}

	ref := category.Ref()
	return models.CatalogPayload{
		Components: products,
		Categories: []models.CategoryRef{ref},
	}, ref, nil
}

// FilterGroups returns the facet panel of a category page and its observed
// price range.
func (s *CatalogService) FilterGroups(ctx context.Context, slug string) ([]models.FilterGroup, models.PriceRange, error) {
	if entry, ok := s.cached(ctx, slug); ok {
		return entry.FilterGroups, entry.PriceRange, nil
	}

	payload, ref, err := s.Payload(ctx, slug)
	if err != nil {
		return nil, models.PriceRange{}, err
	}
	entry := s.resolve(ctx, payload, ref)
	return entry.FilterGroups, entry.PriceRange, nil
}

func (s *CatalogService) cached(ctx context.Context, slug string) (catalog_cache.Entry, bool) {
	entry, ok, err := s.cache.Get(ctx, slug)
	if err != nil {
		s.log.Warn("facet cache read failed", zap.String("slug", slug), zap.Error(err))
		return catalog_cache.Entry{}, false
	}
	return entry, ok
}

func (s *CatalogService) resolve(ctx context.Context, payload models.CatalogPayload, ref models.CategoryRef) catalog_cache.Entry {
	entry := catalog_cache.Entry{
		FilterGroups: s.engine.Groups(payload, ref),
		PriceRange:   facets.PriceRangeOf(payload.Components),
	}
	s.engine.DebugBrands(payload.Components)
	if err := s.cache.Set(ctx, ref.Slug, entry); err != nil {
		s.log.Warn("facet cache write failed", zap.String("slug", ref.Slug), zap.Error(err))
	}
	return entry
}

// BrowseQuery is one product-listing request of a category page.
type BrowseQuery struct {
	Selection models.Selection
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	Sort      string
	Page      int
	Limit     int
}

// BrowseResult is one page of filtered products with the panel state.
type BrowseResult struct {
	Products     []models.Product     `json:"products"`
	FilterGroups []models.FilterGroup `json:"filterGroups"`
	Selected     models.Selection     `json:"selected"`
	PriceRange   models.PriceRange    `json:"priceRange"`
	Total        int                  `json:"-"`
}

// Browse filters, sorts and pages the products of a category. Missing price
// bounds default to the observed range.
func (s *CatalogService) Browse(ctx context.Context, slug string, q BrowseQuery) (BrowseResult, error) {
	payload, ref, err := s.Payload(ctx, slug)
	if err != nil {
		return BrowseResult{}, err
	}

	entry, ok := s.cached(ctx, slug)
	if !ok {
		entry = s.resolve(ctx, payload, ref)
	}

	selected := models.NewSelection(entry.FilterGroups)
	for facetType, ids := range q.Selection {
		for _, id := range ids {
			if !selected.Has(facetType, id) {
				selected = selected.Toggle(facetType, id)
			}
		}
	}

	price := entry.PriceRange
	if q.MinPrice != nil {
		price.Min = *q.MinPrice
	}
	if q.MaxPrice != nil {
		price.Max = *q.MaxPrice
	}

	matched := s.engine.Apply(payload.Components, facets.Query{
		Selection: selected,
		Search:    q.Search,
		Price:     &price,
		Sort:      q.Sort,
	})

	return BrowseResult{
		Products:     page(matched, q.Page, q.Limit),
		FilterGroups: entry.FilterGroups,
		Selected:     selected,
		PriceRange:   entry.PriceRange,
		Total:        len(matched),
	}, nil
}

// Invalidate drops every cached facet panel and the category list.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	catalog_cache.InvalidateCategories()
	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate facet cache: %w", err)
	}
	return nil
}

func page(products []models.Product, page, limit int) []models.Product {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(products)
	}
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
