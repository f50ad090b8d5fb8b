package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/Modeva-Ecommerce/modeva-pc-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

func boolPtr(b bool) *bool { return &b }

func cpuStore() *MemoryCatalogStore {
	store := NewMemoryCatalogStore()
	store.AddCategory(models.Category{Slug: "processors", Name: "Processors"},
		models.Product{ID: "c1", Name: "AMD Ryzen 5 7600", Price: 229,
			Detail: &models.CPUDetail{Brand: "AMD", Series: "Ryzen 5", Socket: "AM5", Cores: 6, IntegratedGraphics: boolPtr(true)}},
		models.Product{ID: "c2", Name: "Intel Core i9-14900K", Price: 589,
			Detail: &models.CPUDetail{Brand: "Intel", Series: "Core i9", Socket: "LGA1700", Cores: 24}},
		models.Product{ID: "c3", Name: "AMD Ryzen 7 7800X3D", Price: 449,
			Detail: &models.CPUDetail{Series: "Ryzen 7", Socket: "AM5", Cores: 8}},
	)
	store.AddCategory(models.Category{Slug: "gift-cards", Name: "Gift Cards"})
	return store
}

// countingStore records how often products are loaded.
type countingStore struct {
	CatalogStore
	productLoads int
	err          error
}

func (s *countingStore) ProductsByCategory(ctx context.Context, id uuid.UUID) ([]models.Product, error) {
	s.productLoads++
	if s.err != nil {
		return nil, s.err
	}
	return s.CatalogStore.ProductsByCategory(ctx, id)
}

func TestCatalogService_FilterGroups(t *testing.T) {
	svc := NewCatalogService(cpuStore(), nil, nil, nil)

	groups, price, err := svc.FilterGroups(context.Background(), "processors")
	require.NoError(t, err)
	assert.Equal(t, models.PriceRange{Min: 229, Max: 589}, price)
	require.NotEmpty(t, groups)
	assert.Equal(t, "manufacturer", groups[0].Type)
	assert.Equal(t, "manufacturer=AMD", groups[0].Options[0].ID)
}

func TestCatalogService_FilterGroupsAreCached(t *testing.T) {
	store := &countingStore{CatalogStore: cpuStore()}
	svc := NewCatalogService(store, nil, catalog_cache.NewMemoryStore(0), nil)
	ctx := context.Background()

	first, _, err := svc.FilterGroups(ctx, "processors")
	require.NoError(t, err)
	second, _, err := svc.FilterGroups(ctx, "processors")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.productLoads)

	require.NoError(t, svc.Invalidate(ctx))
	_, _, err = svc.FilterGroups(ctx, "processors")
	require.NoError(t, err)
	assert.Equal(t, 2, store.productLoads)
}

func TestCatalogService_UnknownCategory(t *testing.T) {
	svc := NewCatalogService(cpuStore(), nil, nil, nil)

	_, _, err := svc.FilterGroups(context.Background(), "toasters")
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = svc.Browse(context.Background(), "toasters", BrowseQuery{})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogService_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewCatalogService(&countingStore{CatalogStore: cpuStore(), err: boom}, nil, nil, nil)

	_, _, err := svc.FilterGroups(context.Background(), "processors")
	assert.ErrorIs(t, err, boom)
}

func TestCatalogService_EmptyCategoryGetsDefaultGroup(t *testing.T) {
	svc := NewCatalogService(cpuStore(), nil, nil, nil)

	groups, price, err := svc.FilterGroups(context.Background(), "gift-cards")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "manufacturer", groups[0].Type)
	assert.Equal(t, models.PriceRange{}, price)
}

func TestCatalogService_Browse(t *testing.T) {
	svc := NewCatalogService(cpuStore(), nil, nil, nil)
	ctx := context.Background()

	res, err := svc.Browse(ctx, "processors", BrowseQuery{
		Selection: models.Selection{"socket": {"socket=AM5"}},
		Sort:      "price-desc",
		Page:      1,
		Limit:     12,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Products, 2)
	assert.Equal(t, "c3", res.Products[0].ID)
	assert.Equal(t, "c1", res.Products[1].ID)

	assert.Equal(t, []string{"socket=AM5"}, res.Selected["socket"])
	assert.Contains(t, res.Selected, "manufacturer", "every displayed group is seeded")
	assert.Empty(t, res.Selected["manufacturer"])
	assert.Equal(t, models.PriceRange{Min: 229, Max: 589}, res.PriceRange)
}

func TestCatalogService_BrowsePriceAndPaging(t *testing.T) {
	svc := NewCatalogService(cpuStore(), nil, nil, nil)
	ctx := context.Background()
	max := 449.0

	res, err := svc.Browse(ctx, "processors", BrowseQuery{MaxPrice: &max, Sort: "name-asc", Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "AMD Ryzen 5 7600", res.Products[0].Name)

	res, err = svc.Browse(ctx, "processors", BrowseQuery{MaxPrice: &max, Sort: "name-asc", Page: 2, Limit: 1})
	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "AMD Ryzen 7 7800X3D", res.Products[0].Name)

	res, err = svc.Browse(ctx, "processors", BrowseQuery{Page: 9, Limit: 12})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Products)
}

func TestCatalogService_Categories(t *testing.T) {
	catalog_cache.InvalidateCategories()
	t.Cleanup(catalog_cache.InvalidateCategories)
	svc := NewCatalogService(cpuStore(), nil, nil, nil)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Gift Cards", categories[0].Name)
	assert.Equal(t, 0, categories[0].ProductCount)
	assert.Equal(t, 3, categories[1].ProductCount)
}

func TestLoadCatalogFixture(t *testing.T) {
	fixture := `{"categories": [
		{"slug": "mice", "name": "Gaming Mice", "products": [
			{"id": "m1", "name": "Viper V3", "price": 159, "mouse": {"dpi": 35000, "connection": "Wireless"}},
			{"id": "m2", "name": "G203", "price": 29, "specifications": {"DPI": "8000"}}
		]}
	]}`

	store, err := LoadCatalogFixture(strings.NewReader(fixture))
	require.NoError(t, err)

	category, err := store.CategoryBySlug(context.Background(), "mice")
	require.NoError(t, err)
	products, err := store.ProductsByCategory(context.Background(), category.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, models.DetailMouse, products[0].DetailKind())
	assert.Equal(t, "Gaming Mice", products[0].CategoryName)

	_, err = LoadCatalogFixture(strings.NewReader(`{"categories": [{"name": "no slug"}]}`))
	assert.Error(t, err)
	_, err = LoadCatalogFixture(strings.NewReader(`not json`))
	assert.Error(t, err)
}
