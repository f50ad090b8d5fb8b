package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	catalog_cache "github.com/Modeva-Ecommerce/modeva-pc-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/facets"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	log := config.InitLogger()
	defer log.Sync()

	store := catalogStore(log)

	// Redis is optional: facet panels fall back to the in-process cache and
	// the rate limiter lets everything through.
	ctx, cancel := config.WithTimeout()
	redisClient, err := config.ConnectRedis(ctx)
	cancel()
	if err != nil {
		log.Warn("⚠️ Redis unavailable, using in-memory facet cache", zap.Error(err))
	}

	var facetCache catalog_cache.Store = catalog_cache.NewMemoryStore(config.FacetCacheTTL())
	if redisClient != nil {
		facetCache = catalog_cache.NewRedisStore(redisClient, config.FacetCacheTTL())
		defer redisClient.Close()
	}

	engine := facets.New(facets.WithLogger(config.FacetLogger()))
	catalog := services.NewCatalogService(store, engine, facetCache, log.Named("catalog"))

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	corsCfg := cors.Config{
		AllowOrigins:     config.CORSOrigins(),
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	limit, window := config.RateLimit()
	ecommerce_routes.SetupStorefrontRoutes(api, catalog,
		middleware.RateLimiter(redisClient, limit, window, log.Named("ratelimit")))
	log.Info("✅ Storefront routes registered")

	addr := ":" + config.Port()
	fmt.Printf("🚀 Server is running on http://localhost%s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("❌ Server stopped", zap.Error(err))
	}
}

// catalogStore serves CATALOG_FIXTURE when set, Postgres otherwise.
func catalogStore(log *zap.Logger) services.CatalogStore {
	if path := config.CatalogFixture(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal("❌ Failed to open catalog fixture", zap.String("path", path), zap.Error(err))
		}
		defer f.Close()

		store, err := services.LoadCatalogFixture(f)
		if err != nil {
			log.Fatal("❌ Failed to load catalog fixture", zap.String("path", path), zap.Error(err))
		}
		log.Info("✅ Catalog loaded from fixture", zap.String("path", path))
		return store
	}

	config.InitDB()
	return services.NewGormCatalogStore(config.DB)
}
