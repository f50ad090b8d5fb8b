package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_category "github.com/Modeva-Ecommerce/modeva-pc-storefront/controllers/ecommerce/category_controller"
	store_filter "github.com/Modeva-Ecommerce/modeva-pc-storefront/controllers/ecommerce/filter_controller"
	store_product "github.com/Modeva-Ecommerce/modeva-pc-storefront/controllers/ecommerce/product_controller"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/services"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, catalog *services.CatalogService, middleware ...gin.HandlerFunc) {
	store_category.Init(catalog)
	store_filter.Init(catalog)
	store_product.Init(catalog)

	// Storefront routes (public, no auth required)
	store := router.Group("/store")
	store.Use(middleware...)

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)                     // List all
		categories.GET("/:slug/filters", store_filter.GetCategoryFilters)    // Facet panel
		categories.GET("/:slug/products", store_product.GetCategoryProducts) // Filtered listing
	}
}
