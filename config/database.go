package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the catalog database.
var DB *gorm.DB

// InitDB opens DB or exits the process.
func InitDB() {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(DatabaseDSN()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		Log.Fatal("❌ Failed to connect to catalog database", zap.Error(err))
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	Log.Info("✅ Catalog database connected (GORM)")
}

// DatabaseDSN prefers DATABASE_URL and falls back to a local DSN from DB_*.
func DatabaseDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	Log.Warn("⚠️ DATABASE_URL not set, using local default")
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "modeva_pc_storefront"),
		getEnv("DB_PORT", "5432"),
	)
}

func CloseDB() {
	if DB == nil {
		return
	}
	if sqlDB, _ := DB.DB(); sqlDB != nil {
		sqlDB.Close()
		Log.Info("✅ Catalog database connection closed")
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
