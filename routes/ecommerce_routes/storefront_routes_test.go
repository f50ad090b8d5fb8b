package ecommerce_routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/Modeva-Ecommerce/modeva-pc-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Message string             `json:"message"`
	Error   bool               `json:"error"`
	Data    json.RawMessage    `json:"data"`
	Meta    *models.Pagination `json:"meta"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	catalog_cache.InvalidateCategories()
	t.Cleanup(catalog_cache.InvalidateCategories)

	store := services.NewMemoryCatalogStore()
	store.AddCategory(models.Category{Slug: "memory", Name: "Memory"},
		models.Product{ID: "r1", Name: "Corsair Vengeance 32GB", Price: 119,
			Detail: &models.RAMDetail{MemoryType: "DDR5", Capacity: "32GB", Speed: "6000 MHz"}},
		models.Product{ID: "r2", Name: "Kingston Fury 16GB", Price: 49.99,
			Detail: &models.RAMDetail{MemoryType: "DDR4", Capacity: "16GB", Speed: "3200 MHz"}},
		models.Product{ID: "r3", Name: "G.Skill Trident Z5 64GB", Price: 229,
			Detail: &models.RAMDetail{MemoryType: "DDR5", Capacity: "64GB", Speed: "6400 MHz"}},
	)

	r := gin.New()
	SetupStorefrontRoutes(r.Group("/api/v1"), services.NewCatalogService(store, nil, nil, nil))
	return r
}

func do(t *testing.T, r *gin.Engine, target string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w.Code, body
}

func TestGetCategories(t *testing.T) {
	code, body := do(t, newRouter(t), "/api/v1/store/categories")
	require.Equal(t, http.StatusOK, code)

	var categories []models.StorefrontCategory
	require.NoError(t, json.Unmarshal(body.Data, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "memory", categories[0].Slug)
	assert.Equal(t, 3, categories[0].ProductCount)
}

func TestGetCategoryFilters(t *testing.T) {
	code, body := do(t, newRouter(t), "/api/v1/store/categories/memory/filters")
	require.Equal(t, http.StatusOK, code)

	var data struct {
		FilterGroups []models.FilterGroup `json:"filterGroups"`
		PriceRange   models.PriceRange    `json:"priceRange"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, models.PriceRange{Min: 49.99, Max: 229}, data.PriceRange)

	types := make([]string, 0, len(data.FilterGroups))
	for _, g := range data.FilterGroups {
		types = append(types, g.Type)
	}
	assert.Equal(t, []string{"manufacturer", "memory_type", "capacity", "memory_speed"}, types)
}

func TestGetCategoryFilters_NotFound(t *testing.T) {
	code, body := do(t, newRouter(t), "/api/v1/store/categories/toasters/filters")
	assert.Equal(t, http.StatusNotFound, code)
	assert.True(t, body.Error)
	assert.Equal(t, "Category not found", body.Message)
}

func TestGetCategoryProducts(t *testing.T) {
	q := url.Values{}
	q.Add("filter", "memory_type:memory_type=ddr5")
	q.Add("filter", "broken")
	q.Set("sort", "name-desc")
	q.Set("limit", "1")

	code, body := do(t, newRouter(t), "/api/v1/store/categories/memory/products?"+q.Encode())
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Meta)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 1, Total: 2, TotalPages: 2}, *body.Meta)

	var data struct {
		Products []models.Product   `json:"products"`
		Selected map[string][]string `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Len(t, data.Products, 1)
	assert.Equal(t, "G.Skill Trident Z5 64GB", data.Products[0].Name)
	assert.Equal(t, models.DetailRAM, data.Products[0].DetailKind())
	assert.Equal(t, []string{"memory_type=ddr5"}, data.Selected["memory_type"])
	assert.Empty(t, data.Selected["manufacturer"])
}

func TestGetCategoryProducts_PriceBounds(t *testing.T) {
	code, body := do(t, newRouter(t), "/api/v1/store/categories/memory/products?minPrice=50&maxPrice=abc")
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Len(t, data.Products, 2, "49.99 is below the bound, an invalid max is ignored")
}

func TestGetCategoryProducts_NonFinitePriceIgnored(t *testing.T) {
	code, body := do(t, newRouter(t), "/api/v1/store/categories/memory/products?minPrice=NaN&maxPrice=Inf")
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Len(t, data.Products, 3)
}

func TestGetCategoryProducts_NotFound(t *testing.T) {
	code, _ := do(t, newRouter(t), "/api/v1/store/categories/toasters/products")
	assert.Equal(t, http.StatusNotFound, code)
}
