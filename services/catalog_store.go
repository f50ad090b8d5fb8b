package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

var ErrCategoryNotFound = errors.New("category not found")

// CatalogStore is the read side of the product catalog.
type CatalogStore interface {
	ListCategories(ctx context.Context) ([]models.StorefrontCategory, error)
	CategoryBySlug(ctx context.Context, slug string) (models.Category, error)
	ProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)
}

// ═══════════════════════════════════════════════════════════
// GORM store
// ═══════════════════════════════════════════════════════════

type GormCatalogStore struct {
	db *gorm.DB
}

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

func (s *GormCatalogStore) ListCategories(ctx context.Context) ([]models.StorefrontCategory, error) {
	query := `
		SELECT
			c.id::text AS id,
			c.slug,
			c.name,
			c.description,
			COUNT(DISTINCT p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.status = 'Active'
		WHERE c.status = 'Active'
		GROUP BY c.id, c.slug, c.name, c.description
		ORDER BY c.name ASC
	`

	categories := make([]models.StorefrontCategory, 0)
	if err := s.db.WithContext(ctx).Raw(query).Scan(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *GormCatalogStore) CategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, "Active").
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("find category %q: %w", slug, err)
	}
	return category, nil
}

func (s *GormCatalogStore) ProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var records []models.ProductRecord
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ? AND status = ?", categoryID, "Active").
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list products of category %s: %w", categoryID, err)
	}

	products := make([]models.Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.ToProduct())
	}
	return products, nil
}
