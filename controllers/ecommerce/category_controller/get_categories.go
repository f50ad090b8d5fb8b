package category_controller

import (
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

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get all active categories with product counts for storefront
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := catalog.Categories(ctx)
	if err != nil {
		config.Log.Error("failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
