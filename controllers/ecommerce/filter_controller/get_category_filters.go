package filter_controller

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

type categoryFilters struct {
	FilterGroups []models.FilterGroup `json:"filterGroups"`
	PriceRange   models.PriceRange    `json:"priceRange"`
}

// GetCategoryFilters godoc
// @Summary Get the filter panel of a category
// @Description Returns the facet groups and observed price range for a category page
// @Tags store
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories/{slug}/filters [get]
func GetCategoryFilters(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	groups, price, err := catalog.FilterGroups(ctx, slug)
	if errors.Is(err, services.ErrCategoryNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}
	if err != nil {
		config.Log.Error("failed to build category filters", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", categoryFilters{
		FilterGroups: groups,
		PriceRange:   price,
	}))
}
