package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/store")
	assert.Equal(t, "postgres://u:p@db:5432/store", DatabaseDSN())

	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_PORT", "6432")
	assert.Equal(t,
		"host=pg user=shop password=secret dbname=modeva_pc_storefront port=6432 sslmode=disable TimeZone=UTC",
		DatabaseDSN())
}

func TestFacetCacheTTL(t *testing.T) {
	tests := map[string]time.Duration{
		"":      5 * time.Minute,
		"90s":   90 * time.Second,
		"30":    30 * time.Second,
		"-1m":   5 * time.Minute,
		"later": 5 * time.Minute,
	}
	for raw, want := range tests {
		t.Setenv("FACET_CACHE_TTL", raw)
		assert.Equal(t, want, FacetCacheTTL(), raw)
	}
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	assert.Equal(t, defaultCORSOrigins, CORSOrigins())

	t.Setenv("CORS_ORIGINS", "https://shop.example, ,https://admin.example")
	assert.Equal(t, []string{"https://shop.example", "https://admin.example"}, CORSOrigins())
}

func TestPortAndRateLimit(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "8081", Port())

	t.Setenv("STORE_RATE_LIMIT", "nope")
	limit, window := RateLimit()
	assert.Equal(t, 120, limit)
	assert.Equal(t, time.Minute, window)

	t.Setenv("STORE_RATE_LIMIT", "30")
	limit, _ = RateLimit()
	assert.Equal(t, 30, limit)
}

func TestInitLogger(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "WARN")
	l := InitLogger()
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	t.Setenv("LOG_LEVEL", "loud")
	assert.True(t, InitLogger().Core().Enabled(zapcore.InfoLevel))
}

func TestFacetLogger(t *testing.T) {
	t.Setenv("FACET_DEBUG", "")
	assert.Nil(t, FacetLogger())

	t.Setenv("FACET_DEBUG", "true")
	l := FacetLogger()
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
