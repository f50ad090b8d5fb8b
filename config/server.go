package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort          = "8081"
	defaultFacetCacheTTL = 5 * time.Minute
)

var defaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

func Port() string {
	return getEnv("PORT", defaultPort)
}

// FacetCacheTTL reads FACET_CACHE_TTL as a Go duration or a number of
// seconds. Invalid and non-positive values fall back to five minutes.
func FacetCacheTTL() time.Duration {
	raw := strings.TrimSpace(os.Getenv("FACET_CACHE_TTL"))
	if raw == "" {
		return defaultFacetCacheTTL
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultFacetCacheTTL
}

// CORSOrigins splits CORS_ORIGINS on commas.
func CORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return defaultCORSOrigins
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return defaultCORSOrigins
	}
	return origins
}

// RateLimit is the per-IP request budget of the storefront group.
func RateLimit() (int, time.Duration) {
	limit, err := strconv.Atoi(getEnv("STORE_RATE_LIMIT", "120"))
	if err != nil || limit < 1 {
		limit = 120
	}
	return limit, time.Minute
}

// CatalogFixture is the optional JSON catalog served instead of Postgres.
func CatalogFixture() string {
	return os.Getenv("CATALOG_FIXTURE")
}
