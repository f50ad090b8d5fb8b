package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/services"
)

var catalog *services.CatalogService

// Init sets the catalog service used by the handlers.
func Init(svc *services.CatalogService) {
	catalog = svc
}

// GetCategoryProducts godoc
// @Summary Get filtered products of a category
// @Description Applies facet selections, search, price bounds and sorting to the products of a category page.
// @Tags store
// @Produce json
// @Param slug path string true "Category slug"
// @Param q query string false "Search (name, description, specifications, configuration parts)"
// @Param filter query []string false "Facet selection <type>:<optionId> (repeatable)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param sort query string false "Sort key" Enums(price-asc, price-desc, name-asc, name-desc, rating-desc, stock-desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories/{slug}/products [get]
func GetCategoryProducts(c *gin.Context) {
	slug := c.Param("slug")
	page, limit := parsePagination(c)

	query := services.BrowseQuery{
		Selection: parseSelection(c),
		Search:    c.Query("q"),
		MinPrice:  parsePrice(c, "minPrice"),
		MaxPrice:  parsePrice(c, "maxPrice"),
		Sort:      c.Query("sort"),
		Page:      page,
		Limit:     limit,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := catalog.Browse(ctx, slug, query)
	if errors.Is(err, services.ErrCategoryNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}
	if err != nil {
		config.Log.Error("failed to fetch category products", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", result,
		models.NewPagination(page, limit, result.Total)))
}
